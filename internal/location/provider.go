package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ugaemi/geonerd-server/internal/game"
)

// DefaultCacheTTL is how long a fetched location list is reused.
const DefaultCacheTTL = 5 * time.Minute

var ErrNoLocations = errors.New("no locations available")

// Default is served by the controller when the provider cannot produce a location.
var Default = game.Location{
	ID:            1,
	Name:          "Chefchaouen Blue Streets",
	Category:      "Cultural",
	Country:       "Morocco",
	City:          "Chefchaouen",
	Continent:     "Africa",
	Climate:       "Mediterranean",
	Latitude:      35.1686,
	Longitude:     -5.2636,
	Description:   "A mountain town painted almost entirely blue, hidden in Morocco's Rif mountains.",
	WikipediaLink: "https://en.wikipedia.org/wiki/Chefchaouen",
}.Normalize()

// Provider hands out one location per round.
type Provider interface {
	Location(ctx context.Context, mode Mode) (game.Location, error)
}

// Source fetches the full location list from wherever it is kept.
type Source interface {
	Locations(ctx context.Context) ([]game.Location, error)
}

// StaticSource serves a fixed list.
type StaticSource []game.Location

// Locations returns the list itself.
func (s StaticSource) Locations(context.Context) ([]game.Location, error) {
	return s, nil
}

// cache is a fetched list and the time it was fetched.
type cache struct {
	value     []game.Location
	fetchedAt time.Time
	ttl       time.Duration
}

func (c *cache) fresh(now time.Time) bool {
	return c.value != nil && now.Sub(c.fetchedAt) < c.ttl
}

// CachedProvider picks random locations from a Source, reusing the fetched
// list for the cache TTL. On fetch failure it serves the fallback list.
type CachedProvider struct {
	source   Source
	fallback []game.Location
	cache    cache
	now      func() time.Time
	rng      *rand.Rand

	mu sync.Mutex
}

// Option configures a CachedProvider.
type Option func(*CachedProvider)

// WithClock replaces time.Now for cache freshness checks.
func WithClock(now func() time.Time) Option {
	return func(p *CachedProvider) { p.now = now }
}

// WithRand sets the random source used to pick locations.
func WithRand(rng *rand.Rand) Option {
	return func(p *CachedProvider) { p.rng = rng }
}

// WithFallback replaces the list served when the source fails.
func WithFallback(locations []game.Location) Option {
	return func(p *CachedProvider) { p.fallback = locations }
}

// NewCachedProvider creates a provider over source with the given TTL.
func NewCachedProvider(source Source, ttl time.Duration, opts ...Option) *CachedProvider {
	p := &CachedProvider{
		source:   source,
		fallback: Seed,
		cache:    cache{ttl: ttl},
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Location returns a random normalized location matching mode.
func (p *CachedProvider) Location(ctx context.Context, mode Mode) (game.Location, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	all := p.locations(ctx)
	candidates := Filter(all, mode)
	if len(candidates) == 0 {
		return game.Location{}, fmt.Errorf("mode %s: %w", mode, ErrNoLocations)
	}

	loc := candidates[p.rng.Intn(len(candidates))].Normalize()
	if err := loc.Validate(); err != nil {
		return game.Location{}, err
	}
	return loc, nil
}

// Invalidate drops the cached list so the next call refetches.
func (p *CachedProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.value = nil
}

// locations returns the cached list, refreshing it when stale.
// Caller must hold p.mu.
func (p *CachedProvider) locations(ctx context.Context) []game.Location {
	now := p.now()
	if p.cache.fresh(now) {
		return p.cache.value
	}

	list, err := p.source.Locations(ctx)
	if err == nil && len(list) == 0 {
		err = ErrNoLocations
	}
	if err != nil {
		slog.Warn("location source failed, using fallback list", "error", err, "fallback", len(p.fallback))
		list = p.fallback
	}

	p.cache.value = list
	p.cache.fetchedAt = now
	return list
}
