package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/geonerd-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	tournament  *TournamentHandler
	leaderboard *LeaderboardHandler
}

// NewRouter creates a new message router.
func NewRouter(tournament *TournamentHandler, leaderboard *LeaderboardHandler) *Router {
	return &Router{
		tournament:  tournament,
		leaderboard: leaderboard,
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Tournament messages
	case ws.TypeStartTournament:
		r.tournament.HandleStart(cm.Client, msg)
	case ws.TypeSubmitGuess:
		r.tournament.HandleGuess(cm.Client, msg)
	case ws.TypeRequestHint:
		r.tournament.HandleHint(cm.Client, msg)
	case ws.TypeNextRound:
		r.tournament.HandleNext(cm.Client, msg)
	case ws.TypeLeaveTournament:
		r.tournament.HandleLeave(cm.Client, msg)

	// Leaderboard messages
	case ws.TypeGetLeaderboard:
		r.leaderboard.HandleGetLeaderboard(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.tournament.HandleDisconnect(client)
}
