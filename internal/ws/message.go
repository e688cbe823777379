package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - Tournament
const (
	TypeStartTournament = "start_tournament"
	TypeSubmitGuess     = "submit_guess"
	TypeRequestHint     = "request_hint"
	TypeNextRound       = "next_round"
	TypeLeaveTournament = "leave_tournament"
)

// Message types - Round events
const (
	TypeRoundStart         = "round_start"
	TypeHint               = "hint"
	TypeRoundResult        = "round_result"
	TypeCountdown          = "countdown"
	TypeTournamentComplete = "tournament_complete"
)

// Message types - Leaderboard
const (
	TypeGetLeaderboard = "get_leaderboard"
	TypeLeaderboard    = "leaderboard"
)

// Message types - System
const (
	TypeError = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
