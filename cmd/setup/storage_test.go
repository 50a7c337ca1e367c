package setup

import (
	"context"
	"testing"

	"github.com/IsaacDSC/cinecritique/internal/cfg"
	"github.com/IsaacDSC/cinecritique/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Memory(t *testing.T) {
	ctx := context.Background()

	store, closeStore, err := NewStore(ctx, cfg.Cache{Driver: DriverMemory})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeStore(ctx) })

	assert.IsType(t, &kvstore.MemStore{}, store)
	require.NoError(t, store.Set(ctx, "movies", []byte(`{}`)))
}

func TestNewStore_UnknownDriver(t *testing.T) {
	_, closeStore, err := NewStore(context.Background(), cfg.Cache{Driver: "etcd"})
	assert.Error(t, err)
	assert.NotNil(t, closeStore)
}

func TestNewStore_UnreachableRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("dials a closed port")
	}

	_, _, err := NewStore(context.Background(), cfg.Cache{Driver: DriverRedis, CacheAddr: "127.0.0.1:1"})
	assert.Error(t, err)
}
