package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreForDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     int
	}{
		{"zero", 0, 100},
		{"just under one step", 249.9, 100},
		{"one step", 250, 99},
		{"equator 2.25 degrees", 250.6, 99},
		{"halfway", 12500, 50},
		{"at zero boundary", 25000, 0},
		{"beyond boundary", 30000, 0},
		{"negative clamps to zero", -10, 100},
		{"NaN", math.NaN(), 0},
		{"infinite", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreForDistance(tt.distance))
		})
	}
}

func TestScoreForDistance_NonIncreasing(t *testing.T) {
	prev := ScoreForDistance(0)
	for d := 0.0; d <= 26000; d += 37 {
		s := ScoreForDistance(d)
		assert.LessOrEqual(t, s, prev, "distance %v", d)
		prev = s
	}
}

func TestComputeRoundScore(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		params   ScoreParams
		want     int
	}{
		{"perfect", 0, ScoreParams{StreakMultiplier: 1}, 100},
		{"one hint", 0, ScoreParams{HintLevel: 1, StreakMultiplier: 1}, 90},
		{"all hints", 0, ScoreParams{HintLevel: 4, StreakMultiplier: 1}, 60},
		{"hint level above max clamps", 0, ScoreParams{HintLevel: 9, StreakMultiplier: 1}, 60},
		{"negative hint level clamps", 0, ScoreParams{HintLevel: -3, StreakMultiplier: 1}, 100},
		{"time bonus", 5000, ScoreParams{TimeBonus: 10, StreakMultiplier: 1}, 90},
		{"bonus capped", 0, ScoreParams{TimeBonus: 1000, CulturalBonus: 1000, ExplorationBonus: 1000, StreakMultiplier: 5}, 100},
		{"penalty floors at zero", 24000, ScoreParams{HintLevel: 4, StreakMultiplier: 1}, 0},
		{"multiplier", 15000, ScoreParams{StreakMultiplier: 1.5}, 60},
		{"multiplier rounds", 15250, ScoreParams{StreakMultiplier: 1.5}, 59},
		{"zero multiplier counts as one", 0, ScoreParams{}, 100},
		{"zero value with hint", 0, ScoreParams{HintLevel: 1}, 90},
		{"negative multiplier", 0, ScoreParams{StreakMultiplier: -2}, 0},
		{"NaN multiplier", 0, ScoreParams{StreakMultiplier: math.NaN()}, 0},
		{"negative distance", -50, ScoreParams{StreakMultiplier: 1}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRoundScore(tt.distance, tt.params))
		})
	}
}

func TestComputeRoundScore_AlwaysInRange(t *testing.T) {
	multipliers := []float64{0, 0.5, 1, 2, 5, 100}
	bonuses := []int{-500, 0, 10, 1000}
	for d := 0.0; d <= 26000; d += 1300 {
		for h := -1; h <= 5; h++ {
			for _, b := range bonuses {
				for _, m := range multipliers {
					s := ComputeRoundScore(d, ScoreParams{HintLevel: h, TimeBonus: b, CulturalBonus: b, ExplorationBonus: b, StreakMultiplier: m})
					assert.GreaterOrEqual(t, s, 0)
					assert.LessOrEqual(t, s, MaxScorePerRound)
				}
			}
		}
	}
}

func TestComputeRoundScore_ZeroValueMatchesDefault(t *testing.T) {
	for d := 0.0; d <= 26000; d += 650 {
		zero := ComputeRoundScore(d, ScoreParams{HintLevel: 2, TimeBonus: 10})
		def := DefaultScoreParams()
		def.HintLevel, def.TimeBonus = 2, 10
		assert.Equal(t, ComputeRoundScore(d, def), zero, "distance %v", d)
	}
}

func TestComputeRoundScore_Deterministic(t *testing.T) {
	p := ScoreParams{HintLevel: 2, TimeBonus: 10, CulturalBonus: 3, ExplorationBonus: 4, StreakMultiplier: 1.2}
	assert.Equal(t, ComputeRoundScore(3210.5, p), ComputeRoundScore(3210.5, p))
}

func TestComputeRoundScore_HintPenaltyMonotonic(t *testing.T) {
	for d := 0.0; d <= 26000; d += 500 {
		one := ComputeRoundScore(d, ScoreParams{HintLevel: 1, StreakMultiplier: 1})
		four := ComputeRoundScore(d, ScoreParams{HintLevel: 4, StreakMultiplier: 1})
		assert.GreaterOrEqual(t, one, four, "distance %v", d)
	}
}

func TestQuickGuess(t *testing.T) {
	rule := QuickGuess(QuickGuessWindow, QuickGuessBonus)

	assert.Equal(t, QuickGuessBonus, rule(0))
	assert.Equal(t, QuickGuessBonus, rule(9*time.Second))
	assert.Equal(t, 0, rule(10*time.Second))
	assert.Equal(t, 0, rule(-time.Second))
	assert.Equal(t, 0, NoTimeBonus(time.Second))
}
