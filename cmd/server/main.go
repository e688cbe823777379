package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ugaemi/geonerd-server/internal/config"
	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/handler"
	"github.com/ugaemi/geonerd-server/internal/leaderboard"
	"github.com/ugaemi/geonerd-server/internal/location"
	"github.com/ugaemi/geonerd-server/internal/server"
	"github.com/ugaemi/geonerd-server/internal/session"
	"github.com/ugaemi/geonerd-server/internal/store"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogger(cfg)

	var (
		board  leaderboard.Store = leaderboard.NewMemoryStore()
		source location.Source   = location.StaticSource(location.Seed)
	)
	if cfg.DatabaseURL != "" {
		db, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer db.Close()

		if err := db.SeedLocations(ctx, location.Seed); err != nil {
			return fmt.Errorf("seeding locations: %w", err)
		}
		board, source = db, db
		slog.Info("connected to postgres")
	} else {
		slog.Info("no DATABASE_URL, using in-memory stores")
	}

	provider := location.NewCachedProvider(source, cfg.LocationCacheTTL)

	hub := ws.NewHub()
	lh := handler.NewLeaderboardHandler(board, hub)
	sm := session.NewManager(tournamentConfig(cfg), provider, lh.RecordTournament)
	router := handler.NewRouter(handler.NewTournamentHandler(ctx, sm), lh)

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	srv := server.New(fmt.Sprintf(":%d", cfg.Port), func(r chi.Router) {
		r.Mount("/leaderboard", lh.Routes())
		r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			handleWebSocket(hub, cfg, w, r)
		})
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("server starting", "port", cfg.Port)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func tournamentConfig(cfg *config.Config) tournament.Config {
	tc := tournament.DefaultConfig()
	tc.MaxRounds = cfg.MaxRounds
	tc.CountdownSeconds = cfg.CountdownSeconds
	tc.StreakThreshold = cfg.StreakThreshold
	tc.TimeBonus = game.QuickGuess(cfg.QuickGuessWindow, cfg.QuickGuessBonus)
	return tc
}

func handleWebSocket(hub *ws.Hub, cfg *config.Config, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(uuid.NewString(), hub, conn, rate.Limit(cfg.ClientMessageRate), cfg.ClientMessageBurst)
	select {
	case hub.Register <- client:
	case <-hub.Done():
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
