package ctxlogger

import (
	"bytes"
	"context"
	"testing"

	"github.com/IsaacDSC/cinecritique/pkg/logs"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	assert.Same(t, logs.Default(), GetLogger(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), logs.New(logs.WithOutput(&buf)))

	ctx = With(ctx, "view", "home")
	GetLogger(ctx).Info("rendered")

	assert.Contains(t, buf.String(), `"view":"home"`)
}
