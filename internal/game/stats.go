package game

// TournamentStats aggregates completed rounds.
type TournamentStats struct {
	TotalScore      int     `json:"total_score"`
	BestScore       int     `json:"best_score"`
	RoundsPlayed    int     `json:"rounds_played"`
	TotalDistance   float64 `json:"total_distance_km"`
	AverageDistance float64 `json:"average_distance_km"`
	Streak          int     `json:"streak"`
	BestStreak      int     `json:"best_streak"`
}

// Record folds one completed round into the aggregates. A score at or above
// threshold extends the streak, anything lower resets it.
func (s *TournamentStats) Record(score int, distanceKm float64, threshold int) {
	s.TotalScore += score
	s.BestScore = max(s.BestScore, score)
	s.RoundsPlayed++
	s.TotalDistance += distanceKm
	s.AverageDistance = s.TotalDistance / float64(s.RoundsPlayed)

	if score >= threshold {
		s.Streak++
	} else {
		s.Streak = 0
	}
	s.BestStreak = max(s.BestStreak, s.Streak)
}
