package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/location"
	"github.com/ugaemi/geonerd-server/internal/session"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

// TournamentHandler handles round lifecycle messages.
type TournamentHandler struct {
	ctx context.Context
	sm  *session.Manager
}

// NewTournamentHandler creates a new tournament handler. ctx bounds location
// loading for every session it starts.
func NewTournamentHandler(ctx context.Context, sm *session.Manager) *TournamentHandler {
	return &TournamentHandler{ctx: ctx, sm: sm}
}

type startTournamentRequest struct {
	PlayerID string `json:"player_id"`
	Mode     string `json:"mode"`
}

// HandleStart starts a new tournament for the client.
func (h *TournamentHandler) HandleStart(client *ws.Client, msg ws.Message) {
	var req startTournamentRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.PlayerID == "" {
		client.SendMessage(ws.NewErrorMessage("player_id is required"))
		return
	}

	h.sm.Create(h.ctx, client, req.PlayerID, location.ParseMode(req.Mode))
}

type submitGuessRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// HandleGuess scores the client's guess for the current round.
func (h *TournamentHandler) HandleGuess(client *ws.Client, msg ws.Message) {
	var req submitGuessRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Lat == nil || req.Lng == nil {
		client.SendMessage(ws.NewErrorMessage("lat and lng are required"))
		return
	}

	s := h.findSession(client)
	if s == nil {
		return
	}

	_, err := s.Controller().SubmitGuess(*req.Lat, *req.Lng)
	h.reportError(client, s, "guess", err)
}

type requestHintRequest struct {
	Level int `json:"level"`
}

// HandleHint reveals the requested hint level.
func (h *TournamentHandler) HandleHint(client *ws.Client, msg ws.Message) {
	var req requestHintRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid hint request"))
		return
	}

	s := h.findSession(client)
	if s == nil {
		return
	}

	_, err := s.Controller().RequestHint(req.Level)
	h.reportError(client, s, "hint", err)
}

// HandleNext advances past a revealed round without waiting for the countdown.
func (h *TournamentHandler) HandleNext(client *ws.Client, _ ws.Message) {
	s := h.findSession(client)
	if s == nil {
		return
	}

	err := s.Controller().Advance(h.ctx)
	h.reportError(client, s, "next round", err)
}

// HandleLeave ends the client's tournament.
func (h *TournamentHandler) HandleLeave(client *ws.Client, _ ws.Message) {
	h.removeSession(client)
}

// HandleDisconnect handles client disconnection.
func (h *TournamentHandler) HandleDisconnect(client *ws.Client) {
	h.removeSession(client)
}

func (h *TournamentHandler) removeSession(client *ws.Client) {
	if h.sm.RemoveByClient(client.ID) {
		slog.Info("player left tournament", "client", client.ID)
	}
}

func (h *TournamentHandler) findSession(client *ws.Client) *session.Session {
	s := h.sm.FindByClient(client.ID)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("no active tournament"))
	}
	return s
}

// reportError maps controller errors to client replies. Out-of-sequence
// input is dropped silently.
func (h *TournamentHandler) reportError(client *ws.Client, s *session.Session, action string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, tournament.ErrOutOfSequence):
		slog.Debug("out of sequence input ignored", "session", s.ID, "action", action)
	case errors.Is(err, game.ErrInvalidCoordinate):
		client.SendMessage(ws.NewErrorMessage("invalid coordinates"))
	default:
		slog.Warn("tournament action failed", "session", s.ID, "action", action, "error", err)
		client.SendMessage(ws.NewErrorMessage(action + " failed"))
	}
}
