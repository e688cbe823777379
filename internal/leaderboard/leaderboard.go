package leaderboard

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/location"
)

const (
	// MaxEntries is the number of ranked players retained.
	MaxEntries = 100
	// DefaultLimit is used by Top when limit is not positive.
	DefaultLimit = 10
	// PointsPerScore converts total tournament points into the ranked score.
	PointsPerScore = 50
)

var ErrEmptyPlayerID = errors.New("player id is required")

// Entry is a player's best recorded tournament.
type Entry struct {
	PlayerID          string          `json:"player_id"`
	TotalPoints       int             `json:"total_points"`
	CalculatedScore   decimal.Decimal `json:"calculated_score"`
	RoundsPlayed      int             `json:"rounds_played"`
	AverageDistanceKm float64         `json:"average_distance_km"`
	Mode              location.Mode   `json:"mode"`
	SubmittedAt       time.Time       `json:"submitted_at"`
}

// Store persists leaderboard entries.
type Store interface {
	// Submit records e and reports whether it became the player's entry.
	Submit(ctx context.Context, e Entry) (bool, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
	// Rank returns the 1-based position of playerID, or 0 when unranked.
	Rank(ctx context.Context, playerID string) (int, error)
}

// CalculateScore returns totalPoints / PointsPerScore without rounding.
func CalculateScore(totalPoints int) decimal.Decimal {
	return decimal.NewFromInt(int64(totalPoints)).Div(decimal.NewFromInt(PointsPerScore))
}

// NewEntry builds the entry for a finished tournament.
func NewEntry(playerID string, mode location.Mode, stats game.TournamentStats, at time.Time) Entry {
	return Entry{
		PlayerID:          playerID,
		TotalPoints:       stats.TotalScore,
		CalculatedScore:   CalculateScore(stats.TotalScore),
		RoundsPlayed:      stats.RoundsPlayed,
		AverageDistanceKm: stats.AverageDistance,
		Mode:              mode,
		SubmittedAt:       at,
	}
}

// ranksAbove reports whether a sorts before b.
func ranksAbove(a, b Entry) bool {
	if c := a.CalculatedScore.Cmp(b.CalculatedScore); c != 0 {
		return c > 0
	}
	return a.SubmittedAt.Before(b.SubmittedAt)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxEntries)
}
