package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ugaemi/geonerd-server/internal/leaderboard"
	"github.com/ugaemi/geonerd-server/internal/session"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

const storeTimeout = 5 * time.Second

// Broadcaster fans a raw message out to every connected client.
type Broadcaster interface {
	Broadcast(data []byte)
}

// LeaderboardHandler serves rankings over WebSocket and HTTP and records
// finished tournaments.
type LeaderboardHandler struct {
	board leaderboard.Store
	hub   Broadcaster
	now   func() time.Time
}

// NewLeaderboardHandler creates a new leaderboard handler. hub may be nil.
func NewLeaderboardHandler(board leaderboard.Store, hub Broadcaster) *LeaderboardHandler {
	return &LeaderboardHandler{board: board, hub: hub, now: time.Now}
}

type getLeaderboardRequest struct {
	Limit    int    `json:"limit"`
	PlayerID string `json:"player_id"`
}

type leaderboardResponse struct {
	Entries  []leaderboard.Entry `json:"entries"`
	PlayerID string              `json:"player_id,omitempty"`
	Rank     int                 `json:"rank,omitempty"`
}

// HandleGetLeaderboard replies with the top entries and, when a player is
// named, that player's rank.
func (h *LeaderboardHandler) HandleGetLeaderboard(client *ws.Client, msg ws.Message) {
	var req getLeaderboardRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			client.SendMessage(ws.NewErrorMessage("invalid leaderboard request"))
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	resp, err := h.snapshot(ctx, req.Limit, req.PlayerID)
	if err != nil {
		slog.Error("leaderboard read failed", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("leaderboard unavailable"))
		return
	}

	out, _ := ws.NewMessage(ws.TypeLeaderboard, resp)
	client.SendMessage(out)
}

// RecordTournament submits a finished tournament. It is a session.CompleteFunc.
func (h *LeaderboardHandler) RecordTournament(s *session.Session, summary tournament.Summary) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entry := leaderboard.NewEntry(s.PlayerID, summary.Mode, summary.Stats, h.now())
	accepted, err := h.board.Submit(ctx, entry)
	if err != nil {
		slog.Error("leaderboard submission failed", "session", s.ID, "player", s.PlayerID, "error", err)
		return
	}

	rank, _ := h.board.Rank(ctx, s.PlayerID)
	slog.Info("leaderboard submission", "player", s.PlayerID, "score", entry.CalculatedScore.String(),
		"accepted", accepted, "rank", rank)

	resp, err := h.snapshot(ctx, leaderboard.DefaultLimit, s.PlayerID)
	if err != nil {
		slog.Error("leaderboard read failed", "session", s.ID, "error", err)
		return
	}
	msg, _ := ws.NewMessage(ws.TypeLeaderboard, resp)
	s.Client().SendMessage(msg)

	if accepted && h.hub != nil {
		top, _ := ws.NewMessage(ws.TypeLeaderboard, leaderboardResponse{Entries: resp.Entries})
		data, err := json.Marshal(top)
		if err == nil {
			h.hub.Broadcast(data)
		}
	}
}

func (h *LeaderboardHandler) snapshot(ctx context.Context, limit int, playerID string) (leaderboardResponse, error) {
	entries, err := h.board.Top(ctx, limit)
	if err != nil {
		return leaderboardResponse{}, err
	}
	if entries == nil {
		entries = []leaderboard.Entry{}
	}

	resp := leaderboardResponse{Entries: entries}
	if playerID != "" {
		rank, err := h.board.Rank(ctx, playerID)
		if err != nil {
			return leaderboardResponse{}, err
		}
		resp.PlayerID, resp.Rank = playerID, rank
	}
	return resp, nil
}

// Routes mounts the HTTP leaderboard endpoints.
func (h *LeaderboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleTop)
	r.Get("/{playerID}", h.handleRank)
	return r
}

func (h *LeaderboardHandler) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	resp, err := h.snapshot(r.Context(), limit, "")
	if err != nil {
		slog.Error("leaderboard read failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "leaderboard unavailable")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type rankResponse struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
}

func (h *LeaderboardHandler) handleRank(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	rank, err := h.board.Rank(r.Context(), playerID)
	if err != nil {
		slog.Error("leaderboard rank failed", "player", playerID, "error", err)
		writeError(w, http.StatusServiceUnavailable, "leaderboard unavailable")
		return
	}
	if rank == 0 {
		writeError(w, http.StatusNotFound, "player not ranked")
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{PlayerID: playerID, Rank: rank})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
