// Package kvstore holds the persistent key/value backends behind the view cache.
// Every backend stores opaque bytes under a string key and overwrites on Set.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
