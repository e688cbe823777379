package store

import (
	"context"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/leaderboard"
	"github.com/ugaemi/geonerd-server/internal/location"
)

// Store is the persistent backing for the leaderboard and location catalog.
type Store interface {
	leaderboard.Store
	location.Source
	// SeedLocations inserts locations whose IDs are not stored yet.
	SeedLocations(ctx context.Context, locations []game.Location) error
	// Close releases database resources.
	Close() error
}

var _ Store = (*PostgresStore)(nil)
