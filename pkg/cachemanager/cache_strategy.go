package cachemanager

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IsaacDSC/cinecritique/internal/kvstore"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/ctxlogger"
	"github.com/IsaacDSC/cinecritique/pkg/intertime"
)

// DefaultTTL is how long a cached view payload is trusted.
const DefaultTTL = 24 * time.Hour

// Fn defines a function type that takes a context and returns any value and an error.
type Fn func(ctx context.Context) (any, error)

// Key represents a cache key as a string.
type Key string

// String returns the string representation of the Key.
func (k Key) String() string {
	return string(k)
}

// Status describes a key for operators.
type Status struct {
	Key       string             `json:"key"`
	Present   bool               `json:"present"`
	Fresh     bool               `json:"fresh"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
	Age       intertime.Duration `json:"age"`
	TTL       intertime.Duration `json:"ttl"`
}

// Strategy is the stale-while-absent cache: entries are served while younger than
// the TTL and otherwise treated as missing. Entries are never deleted, only
// overwritten.
type Strategy struct {
	appPrefix string
	perUser   bool
	ttl       time.Duration
	store     kvstore.Store
	now       func() time.Time
}

var _ Cache = (*Strategy)(nil)

type Option func(*Strategy)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *Strategy) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithPerUserKeys makes KeyFor partition keys by the caller identity in context.
func WithPerUserKeys(enabled bool) Option {
	return func(s *Strategy) {
		s.perUser = enabled
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Strategy) {
		s.now = now
	}
}

// NewStrategy creates a Strategy over store. An empty appPrefix keeps bare keys.
func NewStrategy(appPrefix string, store kvstore.Store, opts ...Option) *Strategy {
	s := &Strategy{
		appPrefix: appPrefix,
		ttl:       DefaultTTL,
		store:     store,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key constructs a cache key by joining the prefix and params with a separator.
func (s *Strategy) Key(params ...string) Key {
	parts := make([]string, 0, len(params)+1)
	if s.appPrefix != "" {
		parts = append(parts, s.appPrefix)
	}
	for _, p := range params {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return Key(strings.Join(parts, ":"))
}

// KeyFor is Key, namespaced by the authenticated identity when per-user keys are on.
// Anonymous callers share the global keys.
func (s *Strategy) KeyFor(ctx context.Context, params ...string) Key {
	if s.perUser {
		if user, ok := auth.UserFromContext(ctx); ok && user != "" {
			return s.Key(append([]string{"user", userNamespace(user)}, params...)...)
		}
	}
	return s.Key(params...)
}

// userNamespace hashes the identity so a crafted subject can never inject the key
// separator or pick a readable namespace.
func userNamespace(user string) string {
	sum := sha256.Sum256([]byte(user))
	return hex.EncodeToString(sum[:16])
}

func (s *Strategy) GetDefaultTTL() time.Duration {
	return s.ttl
}

func (s *Strategy) Now() time.Time {
	return s.now()
}

// Get returns the entry stored under key. Missing keys, backend failures and
// malformed payloads all read as absent.
func (s *Strategy) Get(ctx context.Context, key Key) (*Entry, bool) {
	l := ctxlogger.GetLogger(ctx)

	b, err := s.store.Get(ctx, key.String())
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			l.Warn("cache read failed, treating as miss", "key", key.String(), "error", err)
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(b, &entry); err != nil || entry.Data == nil {
		l.Warn("malformed cache entry, treating as miss", "key", key.String(), "error", err)
		return nil, false
	}

	return &entry, true
}

// Put overwrites key with {data, timestamp: now}.
func (s *Strategy) Put(ctx context.Context, key Key, data any, now time.Time) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshalling value for key %s: %w", key.String(), err)
	}

	b, err := json.Marshal(Entry{Data: payload, Timestamp: now.UnixMilli()})
	if err != nil {
		return fmt.Errorf("error marshalling entry for key %s: %w", key.String(), err)
	}

	if err := s.store.Set(ctx, key.String(), b); err != nil {
		return fmt.Errorf("error setting value for key %s: %w", key.String(), err)
	}

	return nil
}

// Once decodes a fresh entry into value, otherwise executes fn, stores the result
// and decodes it into value. A failed store write is logged; the fetched value is
// still returned.
func (s *Strategy) Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	now := s.now()

	if entry, ok := s.Get(ctx, key); ok && IsFresh(entry, ttl, now) {
		if err := entry.Decode(value); err == nil {
			return nil
		}
	}

	res, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("error executing function for key %s: %w", key.String(), err)
	}

	if err := s.Put(ctx, key, res, now); err != nil {
		ctxlogger.GetLogger(ctx).Warn("cache write failed", "key", key.String(), "error", err)
	}

	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("error marshalling value for key %s: %w", key.String(), err)
	}

	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
	}

	return nil
}

// Inspect reports presence, freshness and age of key against the default TTL.
func (s *Strategy) Inspect(ctx context.Context, key Key) Status {
	now := s.now()
	status := Status{Key: key.String(), TTL: intertime.Duration(s.ttl)}

	entry, ok := s.Get(ctx, key)
	if !ok {
		return status
	}

	fetchedAt := entry.FetchedAt().UTC()
	status.Present = true
	status.Fresh = IsFresh(entry, s.ttl, now)
	status.FetchedAt = &fetchedAt
	status.Age = intertime.Duration(entry.Age(now))

	return status
}
