package game

import (
	"math"
	"time"
)

// ScoreForDistance returns the base score before hints and bonuses:
// 100 at 0 km, losing one point per KmPerPoint, never below 0.
// Negative distances count as 0 km; NaN and +Inf score nothing.
func ScoreForDistance(distanceKm float64) int {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 1) {
		return 0
	}
	if distanceKm < 0 {
		distanceKm = 0
	}
	if distanceKm >= KmPerPoint*MaxScorePerRound {
		return 0
	}
	return max(0, MaxScorePerRound-int(math.Floor(distanceKm/KmPerPoint)))
}

// ScoreParams are the inputs to ComputeRoundScore beyond distance. A zero
// StreakMultiplier counts as 1, so the zero value scores a plain round.
type ScoreParams struct {
	HintLevel        int
	TimeBonus        int
	CulturalBonus    int
	ExplorationBonus int
	StreakMultiplier float64
}

func (p ScoreParams) multiplier() float64 {
	if p.StreakMultiplier == 0 {
		return 1
	}
	return p.StreakMultiplier
}

// DefaultScoreParams returns params with a neutral streak multiplier.
func DefaultScoreParams() ScoreParams {
	return ScoreParams{StreakMultiplier: 1}
}

// ComputeRoundScore composes base score, hint penalty and bonuses into the
// awarded round score, always within [0, MaxScorePerRound].
func ComputeRoundScore(distanceKm float64, p ScoreParams) int {
	base := ScoreForDistance(distanceKm)
	penalty := ClampHintLevel(p.HintLevel) * HintPenaltyStep

	raw := base - penalty + p.TimeBonus + p.CulturalBonus + p.ExplorationBonus
	final := math.Round(float64(max(0, raw)) * p.multiplier())

	switch {
	case math.IsNaN(final) || final < 0:
		return 0
	case final > MaxScorePerRound:
		return MaxScorePerRound
	}
	return int(final)
}

// ClampHintLevel bounds a hint level to [0, MaxHintLevel].
func ClampHintLevel(level int) int {
	return min(MaxHintLevel, max(0, level))
}

// BonusRule derives the time bonus from the time taken to guess.
type BonusRule func(elapsed time.Duration) int

// QuickGuess grants bonus points when the guess lands within window.
func QuickGuess(window time.Duration, bonus int) BonusRule {
	return func(elapsed time.Duration) int {
		if elapsed >= 0 && elapsed < window {
			return bonus
		}
		return 0
	}
}

// NoTimeBonus never grants a time bonus.
func NoTimeBonus(time.Duration) int { return 0 }
