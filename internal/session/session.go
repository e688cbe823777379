package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/location"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

// CompleteFunc is called once when a session's tournament completes. It runs
// on its own goroutine, so it may block on storage.
type CompleteFunc func(s *Session, summary tournament.Summary)

// Session binds one player's tournament to their WebSocket client and
// relays controller events to it.
type Session struct {
	ID        string        `json:"id"`
	PlayerID  string        `json:"player_id"`
	Mode      location.Mode `json:"mode"`
	StartedAt time.Time     `json:"started_at"`

	client     *ws.Client
	controller *tournament.Controller
	onComplete CompleteFunc

	completed bool
	mu        sync.RWMutex
}

// New creates a session and its controller. The tournament is not started
// until Start is called.
func New(client *ws.Client, playerID string, cfg tournament.Config, provider location.Provider, onComplete CompleteFunc) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		PlayerID:   playerID,
		Mode:       cfg.Mode,
		StartedAt:  time.Now(),
		client:     client,
		onComplete: onComplete,
	}
	s.controller = tournament.New(cfg, provider, s)
	return s
}

// Start opens the first round.
func (s *Session) Start(ctx context.Context) {
	s.controller.Start(ctx)
}

// Stop cancels pending timers. No events reach the client afterwards.
func (s *Session) Stop() {
	s.controller.Stop()
}

// Controller returns the session's round lifecycle controller.
func (s *Session) Controller() *tournament.Controller {
	return s.controller
}

// Client returns the WebSocket client the session reports to.
func (s *Session) Client() *ws.Client {
	return s.client
}

// Completed reports whether the tournament has finished.
func (s *Session) Completed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

func (s *Session) send(msgType string, payload any) {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		slog.Error("failed to build message", "session", s.ID, "type", msgType, "error", err)
		return
	}
	s.client.SendMessage(msg)
}

// RoundStarted implements tournament.Listener.
func (s *Session) RoundStarted(round game.Round, maxRounds int) {
	s.send(ws.TypeRoundStart, roundStartMessage{
		RoundNumber: round.Number,
		MaxRounds:   maxRounds,
		Location:    publicLocationOf(round.Location),
	})
}

// HintRevealed implements tournament.Listener.
func (s *Session) HintRevealed(hint game.Hint) {
	s.send(ws.TypeHint, hint)
}

// RoundRevealed implements tournament.Listener.
func (s *Session) RoundRevealed(result game.RoundResult, stats game.TournamentStats) {
	s.send(ws.TypeRoundResult, roundResultMessage{RoundResult: result, Stats: stats})
}

// CountdownTicked implements tournament.Listener.
func (s *Session) CountdownTicked(round, remaining int) {
	s.send(ws.TypeCountdown, countdownMessage{RoundNumber: round, Remaining: remaining})
}

// TournamentCompleted implements tournament.Listener.
func (s *Session) TournamentCompleted(summary tournament.Summary) {
	s.mu.Lock()
	if s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	s.mu.Unlock()

	s.send(ws.TypeTournamentComplete, summary)
	slog.Info("session complete", "session", s.ID, "player", s.PlayerID, "total", summary.Stats.TotalScore)

	if s.onComplete != nil {
		go s.onComplete(s, summary)
	}
}

// publicLocation is what a player may see before guessing. Truth
// coordinates and hint metadata are withheld until the round is revealed.
type publicLocation struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

func publicLocationOf(l game.Location) publicLocation {
	return publicLocation{
		ID:         l.ID,
		Name:       l.Name,
		ImageURL:   l.ImageURL,
		Category:   l.Category,
		Difficulty: l.Difficulty,
	}
}

type roundStartMessage struct {
	RoundNumber int            `json:"round_number"`
	MaxRounds   int            `json:"max_rounds"`
	Location    publicLocation `json:"location"`
}

type roundResultMessage struct {
	game.RoundResult
	Stats game.TournamentStats `json:"stats"`
}

type countdownMessage struct {
	RoundNumber int `json:"round_number"`
	Remaining   int `json:"remaining"`
}
