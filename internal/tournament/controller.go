package tournament

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/location"
)

var (
	// ErrOutOfSequence is returned for input that does not apply to the
	// current state. State is left untouched.
	ErrOutOfSequence = errors.New("out of sequence")
	ErrNotStarted    = errors.New("tournament not started")
)

// Config holds tournament tunables. Start from DefaultConfig; unset fields
// other than CountdownSeconds fall back to its values.
type Config struct {
	Mode             location.Mode
	MaxRounds        int
	CountdownSeconds int // 0 disables auto-advance
	TickInterval     time.Duration
	StreakThreshold  int
	TimeBonus        game.BonusRule
	LoadTimeout      time.Duration
	Now              func() time.Time
}

// DefaultConfig returns the standard five-round tournament.
func DefaultConfig() Config {
	return Config{
		Mode:             location.ModeTournament,
		MaxRounds:        game.MaxRounds,
		CountdownSeconds: game.CountdownSeconds,
		TickInterval:     game.CountdownTick,
		StreakThreshold:  game.StreakThreshold,
		TimeBonus:        game.QuickGuess(game.QuickGuessWindow, game.QuickGuessBonus),
		LoadTimeout:      5 * time.Second,
		Now:              time.Now,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = d.MaxRounds
	}
	if c.CountdownSeconds < 0 {
		c.CountdownSeconds = 0
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.StreakThreshold <= 0 {
		c.StreakThreshold = d.StreakThreshold
	}
	if c.TimeBonus == nil {
		c.TimeBonus = d.TimeBonus
	}
	if c.LoadTimeout <= 0 {
		c.LoadTimeout = d.LoadTimeout
	}
	if c.Now == nil {
		c.Now = d.Now
	}
	return c
}

// Summary is emitted once the last round has been advanced past.
type Summary struct {
	Mode      location.Mode        `json:"mode"`
	MaxRounds int                  `json:"max_rounds"`
	Stats     game.TournamentStats `json:"stats"`
	Rounds    []game.RoundResult   `json:"rounds"`
}

// Listener receives controller events in order. Callbacks run on the
// goroutine that caused the transition and must not call back into the
// Controller.
type Listener interface {
	RoundStarted(round game.Round, maxRounds int)
	HintRevealed(hint game.Hint)
	RoundRevealed(result game.RoundResult, stats game.TournamentStats)
	CountdownTicked(round, remaining int)
	TournamentCompleted(summary Summary)
}

type event func(Listener)

// Controller runs the round lifecycle of a single tournament:
// awaiting guess -> guessed -> revealed -> advancing -> next round or complete.
type Controller struct {
	cfg      Config
	provider location.Provider
	listener Listener

	state     game.RoundState
	started   bool
	stopped   bool
	round     *game.Round
	stats     game.TournamentStats
	results   []game.RoundResult
	countdown *Countdown

	mu     sync.Mutex
	emitMu sync.Mutex
}

// New creates a controller. listener may be nil.
func New(cfg Config, provider location.Provider, listener Listener) *Controller {
	return &Controller{
		cfg:      cfg.withDefaults(),
		provider: provider,
		listener: listener,
		state:    game.StateAwaitingGuess,
	}
}

// Start loads the first round. Calling it again is a no-op.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.state = game.StateAdvancing
	c.mu.Unlock()

	c.openRound(ctx, 1)
}

// SubmitGuess scores the round's single guess and reveals the location.
// Invalid coordinates are discarded and the round keeps waiting.
func (c *Controller) SubmitGuess(lat, lng float64) (game.RoundResult, error) {
	c.mu.Lock()

	if !c.started {
		c.mu.Unlock()
		return game.RoundResult{}, ErrNotStarted
	}
	if c.state != game.StateAwaitingGuess {
		state := c.state
		c.mu.Unlock()
		slog.Debug("guess ignored", "state", state.String())
		return game.RoundResult{}, ErrOutOfSequence
	}
	if err := game.ValidateCoordinates(lat, lng); err != nil {
		round := c.round.Number
		c.mu.Unlock()
		slog.Warn("guess discarded", "round", round, "lat", lat, "lng", lng, "error", err)
		return game.RoundResult{}, err
	}

	r := c.round
	bonus := c.cfg.TimeBonus(c.cfg.Now().Sub(r.StartedAt))
	guess := game.NewGuess(r.Location, lat, lng, r.HintLevel, bonus)
	r.Guess = &guess
	c.state = game.StateGuessed

	result := game.RoundResult{
		Location:    r.Location,
		Guess:       guess,
		Score:       guess.Score,
		DistanceKm:  guess.DistanceKm,
		RoundNumber: r.Number,
		MaxRounds:   c.cfg.MaxRounds,
	}
	events := c.reveal(result)
	c.unlockAndEmit(events)

	return result, nil
}

// RequestHint raises the round's hint level. Only levels above the current
// one and at most MaxHintLevel are accepted, and only while awaiting a guess.
func (c *Controller) RequestHint(level int) (game.Hint, error) {
	c.mu.Lock()

	if !c.started {
		c.mu.Unlock()
		return game.Hint{}, ErrNotStarted
	}
	if c.state != game.StateAwaitingGuess {
		state := c.state
		c.mu.Unlock()
		slog.Debug("hint ignored", "requested", level, "state", state.String())
		return game.Hint{}, ErrOutOfSequence
	}
	if level <= c.round.HintLevel || level > game.MaxHintLevel {
		current := c.round.HintLevel
		c.mu.Unlock()
		slog.Debug("hint ignored", "requested", level, "current", current)
		return game.Hint{}, ErrOutOfSequence
	}

	c.round.HintLevel = level
	hint := *game.HintForLevel(c.round.Location, level)
	c.unlockAndEmit([]event{func(l Listener) { l.HintRevealed(hint) }})

	return hint, nil
}

// Advance moves past a revealed round before its countdown expires.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	if c.state != game.StateRevealed {
		c.mu.Unlock()
		return ErrOutOfSequence
	}
	events, next := c.advance()
	c.unlockAndEmit(events)

	if next > 0 {
		c.openRound(ctx, next)
	}
	return nil
}

// Stop cancels any pending countdown and waits for events already being
// delivered. A round still loading is never opened. The controller keeps
// its state.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.cancelCountdown()
	c.unlockAndEmit(nil)
}

// State returns the current lifecycle state.
func (c *Controller) State() game.RoundState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Round returns a copy of the current round, or false before Start.
func (c *Controller) Round() (game.Round, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.round == nil {
		return game.Round{}, false
	}
	return *c.round, true
}

// Stats returns the running aggregates.
func (c *Controller) Stats() game.TournamentStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Results returns the completed rounds in order.
func (c *Controller) Results() []game.RoundResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]game.RoundResult, len(c.results))
	copy(out, c.results)
	return out
}

// reveal records the result and starts the auto-advance countdown.
// Caller must hold c.mu.
func (c *Controller) reveal(result game.RoundResult) []event {
	c.round.Revealed = true
	c.state = game.StateRevealed
	c.stats.Record(result.Score, result.DistanceKm, c.cfg.StreakThreshold)
	c.results = append(c.results, result)
	stats := c.stats

	slog.Info("round revealed", "round", result.RoundNumber, "score", result.Score,
		"distance_km", result.DistanceKm, "total", stats.TotalScore)

	events := []event{func(l Listener) { l.RoundRevealed(result, stats) }}

	if c.cfg.CountdownSeconds > 0 {
		remaining := c.cfg.CountdownSeconds
		c.round.Countdown = &remaining
		c.startCountdown(c.round.Number)
	}
	return events
}

// startCountdown schedules the auto-advance for round. Caller must hold c.mu.
func (c *Controller) startCountdown(round int) {
	cd := NewCountdown(c.cfg.CountdownSeconds, c.cfg.TickInterval)
	c.countdown = cd
	cd.Start(
		func(remaining int) { c.onTick(cd, round, remaining) },
		func() { c.onExpire(cd) },
	)
}

func (c *Controller) onTick(cd *Countdown, round, remaining int) {
	c.mu.Lock()
	if c.countdown != cd || c.state != game.StateRevealed {
		c.mu.Unlock()
		return
	}
	c.round.Countdown = &remaining
	c.unlockAndEmit([]event{func(l Listener) { l.CountdownTicked(round, remaining) }})
}

func (c *Controller) onExpire(cd *Countdown) {
	c.mu.Lock()
	if c.countdown != cd || c.state != game.StateRevealed {
		c.mu.Unlock()
		return
	}
	events, next := c.advance()
	c.unlockAndEmit(events)

	if next > 0 {
		c.openRound(context.Background(), next)
	}
}

// cancelCountdown stops and forgets the pending countdown. Caller must hold c.mu.
func (c *Controller) cancelCountdown() {
	if c.countdown != nil {
		c.countdown.Cancel()
		c.countdown = nil
	}
}

// advance leaves a revealed round. It returns the number of the round to
// open next, or 0 once the tournament is complete. Caller must hold c.mu.
func (c *Controller) advance() ([]event, int) {
	c.cancelCountdown()
	c.state = game.StateAdvancing

	if c.round.Number < c.cfg.MaxRounds {
		return nil, c.round.Number + 1
	}

	c.state = game.StateComplete
	summary := Summary{
		Mode:      c.cfg.Mode,
		MaxRounds: c.cfg.MaxRounds,
		Stats:     c.stats,
		Rounds:    append([]game.RoundResult(nil), c.results...),
	}
	slog.Info("tournament complete", "mode", string(c.cfg.Mode), "total", summary.Stats.TotalScore,
		"best_streak", summary.Stats.BestStreak)

	return []event{func(l Listener) { l.TournamentCompleted(summary) }}, 0
}

// openRound fetches a location without holding c.mu, then opens round
// number. Input arriving meanwhile sees StateAdvancing and is rejected.
func (c *Controller) openRound(ctx context.Context, number int) {
	loc := c.fetchLocation(ctx, number)

	c.mu.Lock()
	if c.stopped || c.state != game.StateAdvancing {
		c.mu.Unlock()
		return
	}
	c.round = game.NewRound(number, loc, c.cfg.Now())
	c.state = game.StateAwaitingGuess

	round := *c.round
	maxRounds := c.cfg.MaxRounds
	c.unlockAndEmit([]event{func(l Listener) { l.RoundStarted(round, maxRounds) }})
}

// fetchLocation asks the provider for a location, falling back to
// location.Default on any failure.
func (c *Controller) fetchLocation(ctx context.Context, round int) game.Location {
	if c.provider == nil {
		slog.Warn("no location provider, using default location", "round", round)
		return location.Default
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.LoadTimeout)
	defer cancel()

	loc, err := c.provider.Location(ctx, c.cfg.Mode)
	if err == nil {
		err = loc.Validate()
	}
	if err != nil {
		slog.Warn("location load failed, using default location", "round", round, "mode", string(c.cfg.Mode), "error", err)
		return location.Default
	}
	return loc.Normalize()
}

// unlockAndEmit releases c.mu and delivers events in order. Caller must hold c.mu.
func (c *Controller) unlockAndEmit(events []event) {
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()

	if c.listener == nil {
		return
	}
	for _, e := range events {
		e(c.listener)
	}
}
