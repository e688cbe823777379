package game

import "time"

// Guess is the single scored guess of a round. It is never modified after
// creation.
type Guess struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
	HintLevel  int     `json:"hint_level"`
	TimeBonus  int     `json:"time_bonus"`
	Score      int     `json:"score"`
}

// NewGuess scores a guess against the round's location.
func NewGuess(loc Location, lat, lng float64, hintLevel, timeBonus int) Guess {
	distance := DistanceKm(loc.Latitude, loc.Longitude, lat, lng)
	params := DefaultScoreParams()
	params.HintLevel = hintLevel
	params.TimeBonus = timeBonus

	return Guess{
		Lat:        lat,
		Lng:        lng,
		DistanceKm: distance,
		HintLevel:  ClampHintLevel(hintLevel),
		TimeBonus:  timeBonus,
		Score:      ComputeRoundScore(distance, params),
	}
}

// Round is one location shown to the player.
type Round struct {
	Number    int       `json:"round_number"`
	Location  Location  `json:"location"`
	HintLevel int       `json:"hint_level"`
	Guess     *Guess    `json:"guess,omitempty"`
	Revealed  bool      `json:"revealed"`
	Countdown *int      `json:"countdown,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

// NewRound creates a fresh round awaiting its guess.
func NewRound(number int, loc Location, startedAt time.Time) *Round {
	return &Round{
		Number:    number,
		Location:  loc,
		StartedAt: startedAt,
	}
}

// RoundResult is emitted when a round is revealed.
type RoundResult struct {
	Location    Location `json:"location"`
	Guess       Guess    `json:"guess"`
	Score       int      `json:"score"`
	DistanceKm  float64  `json:"distance_km"`
	RoundNumber int      `json:"round_number"`
	MaxRounds   int      `json:"max_rounds"`
}
