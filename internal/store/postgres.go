package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/leaderboard"
	"github.com/ugaemi/geonerd-server/internal/location"
)

const schema = `
CREATE TABLE IF NOT EXISTS leaderboard (
    player_id TEXT PRIMARY KEY,
    total_points INTEGER NOT NULL,
    calculated_score NUMERIC NOT NULL,
    rounds_played INTEGER NOT NULL,
    average_distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
    mode TEXT NOT NULL DEFAULT 'tournament',
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_leaderboard_rank ON leaderboard(calculated_score DESC, submitted_at ASC);

CREATE TABLE IF NOT EXISTS locations (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    subcategory TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    continent TEXT NOT NULL DEFAULT '',
    climate TEXT NOT NULL DEFAULT '',
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    difficulty TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    wikipedia_link TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    cultural_context TEXT NOT NULL DEFAULT '',
    historical_significance TEXT NOT NULL DEFAULT '',
    best_visiting_time TEXT NOT NULL DEFAULT '',
    local_attractions TEXT NOT NULL DEFAULT ''
);
`

const entryColumns = `player_id, total_points, calculated_score::text, rounds_played,
	average_distance_km, mode, submitted_at`

const locationColumns = `id, name, category, subcategory, country, city, continent, climate,
	latitude, longitude, difficulty, description, wikipedia_link, image_url,
	cultural_context, historical_significance, best_visiting_time, local_attractions`

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Submit upserts the player's entry when it does not lower their best score,
// then trims the table to leaderboard.MaxEntries.
func (s *PostgresStore) Submit(ctx context.Context, e leaderboard.Entry) (bool, error) {
	if e.PlayerID == "" {
		return false, leaderboard.ErrEmptyPlayerID
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO leaderboard (player_id, total_points, calculated_score, rounds_played,
		     average_distance_km, mode, submitted_at)
		 VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
		 ON CONFLICT (player_id) DO UPDATE SET
		     total_points = EXCLUDED.total_points,
		     calculated_score = EXCLUDED.calculated_score,
		     rounds_played = EXCLUDED.rounds_played,
		     average_distance_km = EXCLUDED.average_distance_km,
		     mode = EXCLUDED.mode,
		     submitted_at = EXCLUDED.submitted_at
		 WHERE leaderboard.calculated_score <= EXCLUDED.calculated_score`,
		e.PlayerID, e.TotalPoints, e.CalculatedScore.String(), e.RoundsPlayed,
		e.AverageDistanceKm, string(e.Mode), e.SubmittedAt)
	if err != nil {
		return false, fmt.Errorf("upsert leaderboard entry: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM leaderboard WHERE player_id NOT IN (
		     SELECT player_id FROM leaderboard
		     ORDER BY calculated_score DESC, submitted_at ASC LIMIT $1)`,
		leaderboard.MaxEntries); err != nil {
		return false, fmt.Errorf("trim leaderboard: %w", err)
	}

	var kept bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leaderboard WHERE player_id = $1 AND submitted_at = $2)`,
		e.PlayerID, e.SubmittedAt).Scan(&kept); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1 && kept, nil
}

// Top returns the highest ranked entries.
func (s *PostgresStore) Top(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}
	limit = min(limit, leaderboard.MaxEntries)

	rows, err := s.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM leaderboard
		 ORDER BY calculated_score DESC, submitted_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []leaderboard.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Rank returns the 1-based position of playerID, or 0 when unranked.
func (s *PostgresStore) Rank(ctx context.Context, playerID string) (int, error) {
	var rank int
	err := s.pool.QueryRow(ctx,
		`SELECT position FROM (
		     SELECT player_id, ROW_NUMBER() OVER (ORDER BY calculated_score DESC, submitted_at ASC) AS position
		     FROM leaderboard) ranked
		 WHERE player_id = $1`, playerID).Scan(&rank)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return rank, err
}

// Locations returns the stored catalog ordered by ID.
func (s *PostgresStore) Locations(ctx context.Context) ([]game.Location, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []game.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, location.ErrNoLocations
	}
	return locations, nil
}

// SeedLocations inserts locations whose IDs are not stored yet.
func (s *PostgresStore) SeedLocations(ctx context.Context, locations []game.Location) error {
	batch := &pgx.Batch{}
	for _, l := range locations {
		batch.Queue(
			`INSERT INTO locations (`+locationColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			 ON CONFLICT (id) DO NOTHING`,
			l.ID, l.Name, l.Category, l.Subcategory, l.Country, l.City, l.Continent, l.Climate,
			l.Latitude, l.Longitude, l.Difficulty, l.Description, l.WikipediaLink, l.ImageURL,
			l.CulturalContext, l.HistoricalSignificance, l.BestVisitingTime, l.LocalAttractions)
	}
	return s.pool.SendBatch(ctx, batch).Close()
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanEntry(row pgx.Row) (leaderboard.Entry, error) {
	var (
		e     leaderboard.Entry
		score string
		mode  string
	)
	err := row.Scan(&e.PlayerID, &e.TotalPoints, &score, &e.RoundsPlayed,
		&e.AverageDistanceKm, &mode, &e.SubmittedAt)
	if err != nil {
		return leaderboard.Entry{}, err
	}
	e.CalculatedScore, err = decimal.NewFromString(score)
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("parse calculated score %q: %w", score, err)
	}
	e.Mode = location.Mode(mode)
	return e, nil
}

func scanLocation(row pgx.Row) (game.Location, error) {
	var l game.Location
	err := row.Scan(&l.ID, &l.Name, &l.Category, &l.Subcategory, &l.Country, &l.City,
		&l.Continent, &l.Climate, &l.Latitude, &l.Longitude, &l.Difficulty, &l.Description,
		&l.WikipediaLink, &l.ImageURL, &l.CulturalContext, &l.HistoricalSignificance,
		&l.BestVisitingTime, &l.LocalAttractions)
	return l, err
}
