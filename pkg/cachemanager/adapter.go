package cachemanager

import (
	"context"
	"time"
)

type Cache interface {
	Key(params ...string) Key
	KeyFor(ctx context.Context, params ...string) Key
	Get(ctx context.Context, key Key) (*Entry, bool)
	Put(ctx context.Context, key Key, data any, now time.Time) error
	Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error
	Inspect(ctx context.Context, key Key) Status
	GetDefaultTTL() time.Duration
	Now() time.Time
}
