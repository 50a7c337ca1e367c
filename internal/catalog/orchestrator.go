package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/IsaacDSC/cinecritique/pkg/cachemanager"
	"github.com/IsaacDSC/cinecritique/pkg/ctxlogger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	KeyMovies    = "movies"
	KeyGenres    = "genres"
	KeyBestRated = "bestrated"

	DefaultConcurrency    = 8
	DefaultRefreshTimeout = 45 * time.Second
)

type Fetcher interface {
	AllMovies(ctx context.Context) (domain.Movies, error)
	AllGenres(ctx context.Context) ([]string, error)
	MoviesByGenre(ctx context.Context, genre string) (domain.Movies, error)
	BestRated(ctx context.Context) (domain.Movies, error)
}

// Catalog is the data behind the Home and Genres views.
type Catalog struct {
	Movies    domain.Movies
	Genres    domain.GenreMovies
	FetchedAt time.Time
}

// GenreNames returns the genres of the mapping, sorted.
func (c Catalog) GenreNames() []string {
	names := make([]string, 0, len(c.Genres))
	for name := range c.Genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Orchestrator serves the catalog from cache and refreshes it from the backend when
// either entry is missing or stale.
type Orchestrator struct {
	cache          cachemanager.Cache
	fetcher        Fetcher
	group          singleflight.Group
	concurrency    int
	refreshTimeout time.Duration
	pick           func(n int) int
}

type Option func(*Orchestrator)

// WithConcurrency bounds the number of in-flight per-genre requests.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func WithRefreshTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.refreshTimeout = d
		}
	}
}

// WithPicker replaces the random source used to choose the featured movie.
func WithPicker(pick func(n int) int) Option {
	return func(o *Orchestrator) {
		o.pick = pick
	}
}

func NewOrchestrator(cache cachemanager.Cache, fetcher Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cache:          cache,
		fetcher:        fetcher,
		concurrency:    DefaultConcurrency,
		refreshTimeout: DefaultRefreshTimeout,
		pick:           rand.IntN,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load returns the cached catalog when both entries are fresh. Otherwise it joins
// (or starts) the single in-flight refresh for the caller's key namespace.
func (o *Orchestrator) Load(ctx context.Context) (Catalog, error) {
	moviesKey := o.cache.KeyFor(ctx, KeyMovies)
	genresKey := o.cache.KeyFor(ctx, KeyGenres)

	if c, ok := o.cached(ctx, moviesKey, genresKey); ok {
		return c, nil
	}

	ch := o.group.DoChan(moviesKey.String(), func() (any, error) {
		// a refresh that finished between our read and this call already wrote fresh data
		if c, ok := o.cached(ctx, moviesKey, genresKey); ok {
			return c, nil
		}

		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.refreshTimeout)
		defer cancel()

		return o.refresh(rctx, moviesKey, genresKey)
	})

	select {
	case <-ctx.Done():
		return Catalog{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Catalog{}, res.Err
		}
		return res.Val.(Catalog), nil
	}
}

func (o *Orchestrator) cached(ctx context.Context, moviesKey, genresKey cachemanager.Key) (Catalog, bool) {
	now := o.cache.Now()
	ttl := o.cache.GetDefaultTTL()

	moviesEntry, ok := o.cache.Get(ctx, moviesKey)
	if !ok || !cachemanager.IsFresh(moviesEntry, ttl, now) {
		return Catalog{}, false
	}

	genresEntry, ok := o.cache.Get(ctx, genresKey)
	if !ok || !cachemanager.IsFresh(genresEntry, ttl, now) {
		return Catalog{}, false
	}

	var c Catalog
	if err := moviesEntry.Decode(&c.Movies); err != nil {
		ctxlogger.GetLogger(ctx).Warn("cached movies unreadable", "key", moviesKey.String(), "error", err)
		return Catalog{}, false
	}
	if err := genresEntry.Decode(&c.Genres); err != nil {
		ctxlogger.GetLogger(ctx).Warn("cached genres unreadable", "key", genresKey.String(), "error", err)
		return Catalog{}, false
	}

	c.FetchedAt = moviesEntry.FetchedAt()
	if g := genresEntry.FetchedAt(); g.Before(c.FetchedAt) {
		c.FetchedAt = g
	}

	return c, true
}

// refresh fetches the flat list and the genre list concurrently, then every genre's
// movies concurrently. Nothing is written unless every request succeeded.
func (o *Orchestrator) refresh(ctx context.Context, moviesKey, genresKey cachemanager.Key) (Catalog, error) {
	l := ctxlogger.GetLogger(ctx)
	started := o.cache.Now()

	var (
		movies domain.Movies
		names  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = o.fetcher.AllMovies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = o.fetcher.AllGenres(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.Error("catalog refresh failed", "stage", "catalog", "error", err)
		return Catalog{}, fmt.Errorf("refresh catalog: %w", err)
	}

	byGenre := make([]domain.Movies, len(names))

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, name := range names {
		g.Go(func() error {
			list, err := o.fetcher.MoviesByGenre(gctx, name)
			if err != nil {
				return err
			}
			byGenre[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.Error("catalog refresh failed", "stage", "genres", "error", err)
		return Catalog{}, fmt.Errorf("refresh genres: %w", err)
	}

	genres := make(domain.GenreMovies, len(names))
	for i, name := range names {
		if byGenre[i] == nil {
			byGenre[i] = domain.Movies{}
		}
		genres[name] = byGenre[i]
	}
	if movies == nil {
		movies = domain.Movies{}
	}

	c := Catalog{Movies: movies, Genres: genres, FetchedAt: started}

	if err := errors.Join(
		o.cache.Put(ctx, moviesKey, c.Movies, started),
		o.cache.Put(ctx, genresKey, c.Genres, started),
	); err != nil {
		l.Warn("catalog cache write failed", "error", err)
	}

	l.Info("catalog refreshed", "movies", len(c.Movies), "genres", len(c.Genres))

	return c, nil
}

// BestRated serves the best rated list through the same TTL policy.
func (o *Orchestrator) BestRated(ctx context.Context) (domain.Movies, error) {
	var movies domain.Movies
	key := o.cache.KeyFor(ctx, KeyBestRated)

	err := o.cache.Once(ctx, key, &movies, o.cache.GetDefaultTTL(), func(ctx context.Context) (any, error) {
		movies, err := o.fetcher.BestRated(ctx)
		if err != nil {
			return nil, err
		}
		if movies == nil {
			movies = domain.Movies{}
		}
		return movies, nil
	})
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// Status reports the cache state of every catalog key for the caller's namespace.
func (o *Orchestrator) Status(ctx context.Context) []cachemanager.Status {
	keys := []string{KeyMovies, KeyGenres, KeyBestRated}
	out := make([]cachemanager.Status, 0, len(keys))
	for _, k := range keys {
		out = append(out, o.cache.Inspect(ctx, o.cache.KeyFor(ctx, k)))
	}
	return out
}
