package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTournamentStats_Record(t *testing.T) {
	var s TournamentStats
	scores := []int{100, 80, 60, 40, 20}
	distances := []float64{0, 5000, 10000, 15000, 20000}
	streaks := []int{1, 2, 3, 0, 0}

	for i, score := range scores {
		s.Record(score, distances[i], StreakThreshold)
		assert.Equal(t, i+1, s.RoundsPlayed)
		assert.Equal(t, streaks[i], s.Streak, "round %d", i+1)
	}

	assert.Equal(t, 300, s.TotalScore)
	assert.Equal(t, 100, s.BestScore)
	assert.InDelta(t, 50000.0, s.TotalDistance, 0.001)
	assert.InDelta(t, 10000.0, s.AverageDistance, 0.001)
	assert.Equal(t, 3, s.BestStreak)
}

func TestTournamentStats_StreakRestarts(t *testing.T) {
	var s TournamentStats
	for _, score := range []int{90, 90, 10, 50, 50} {
		s.Record(score, 0, StreakThreshold)
	}

	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, 2, s.BestStreak)
}

func TestTournamentStats_AverageFromTotals(t *testing.T) {
	var s TournamentStats
	s.Record(99, 250.5, StreakThreshold)
	s.Record(98, 500.25, StreakThreshold)
	s.Record(97, 750.125, StreakThreshold)

	assert.InDelta(t, s.TotalDistance/3, s.AverageDistance, 1e-12)
}
