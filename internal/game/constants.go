package game

import "time"

// Tournament shape
const (
	MaxRounds        = 5
	CountdownSeconds = 5
	StreakThreshold  = 50 // minimum round score that extends a streak
)

// Scoring
const (
	MaxScorePerRound = 100
	KmPerPoint       = 250.0 // base score drops one point per 250 km
	MaxHintLevel     = 4
	HintPenaltyStep  = 10 // points per hint level
)

// Geodesy
const (
	EarthRadiusKm    = 6371.0
	MaxGreatCircleKm = 20037.0 // half the Earth's circumference
)

// Quick guess bonus
const (
	QuickGuessWindow = 10 * time.Second
	QuickGuessBonus  = 10
)

// Countdown timing
const (
	CountdownTick = time.Second
)
