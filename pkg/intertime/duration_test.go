package intertime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_JSON(t *testing.T) {
	type status struct {
		TTL Duration `json:"ttl"`
	}

	b, err := json.Marshal(status{TTL: Duration(24 * time.Hour)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":"24h0m0s"}`, string(b))

	var got status
	require.NoError(t, json.Unmarshal([]byte(`{"ttl":"90m"}`), &got))
	assert.Equal(t, Duration(90*time.Minute), got.TTL)

	assert.Error(t, json.Unmarshal([]byte(`{"ttl":"soon"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"ttl":5}`), &got))
}
