package game

import "encoding/json"

// RoundState is the lifecycle position of the current round.
type RoundState int

const (
	StateAwaitingGuess RoundState = iota
	StateGuessed
	StateRevealed
	StateAdvancing
	StateComplete
)

func (s RoundState) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateGuessed:
		return "guessed"
	case StateRevealed:
		return "revealed"
	case StateAdvancing:
		return "advancing"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes RoundState as a string.
func (s RoundState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes RoundState from a string.
func (s *RoundState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "guessed":
		*s = StateGuessed
	case "revealed":
		*s = StateRevealed
	case "advancing":
		*s = StateAdvancing
	case "complete":
		*s = StateComplete
	default:
		*s = StateAwaitingGuess
	}
	return nil
}
