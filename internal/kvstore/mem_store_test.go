package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "movies", []byte(`{"data":[],"timestamp":1}`)))

		got, err := s.Get(ctx, "movies")
		require.NoError(t, err)
		assert.Equal(t, `{"data":[],"timestamp":1}`, string(got))
	})

	t.Run("overwrite is last writer wins", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "genres", []byte("first")))
		require.NoError(t, s.Set(ctx, "genres", []byte("second")))

		got, err := s.Get(ctx, "genres")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})
}

func TestMemStore(t *testing.T) {
	s, err := NewMemStore()
	require.NoError(t, err)

	runStoreContract(t, s)
}

func TestMemStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s, err := NewMemStore()
	require.NoError(t, err)

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
