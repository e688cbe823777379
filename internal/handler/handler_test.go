package handler

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/leaderboard"
	"github.com/ugaemi/geonerd-server/internal/location"
	"github.com/ugaemi/geonerd-server/internal/session"
	"github.com/ugaemi/geonerd-server/internal/tournament"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

type sentMessage struct {
	Type string
	Data json.RawMessage
}

func newTestClient(id string) (*ws.Client, chan sentMessage) {
	ch := make(chan sentMessage, 32)
	client := &ws.Client{
		ID:   id,
		Send: make(chan []byte, 256),
	}

	// Read sent messages in background
	go func() {
		for data := range client.Send {
			var msg sentMessage
			json.Unmarshal(data, &msg)
			ch <- msg
		}
	}()

	return client, ch
}

func readResponse(t *testing.T, ch chan sentMessage) sentMessage {
	t.Helper()
	return readResponseWithTimeout(t, ch, time.Second)
}

func readResponseWithTimeout(t *testing.T, ch chan sentMessage, timeout time.Duration) sentMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatal("timeout waiting for response")
		return sentMessage{}
	}
}

func assertNoResponse(t *testing.T, ch chan sentMessage) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message %s: %s", msg.Type, msg.Data)
	case <-time.After(50 * time.Millisecond):
	}
}

func errorText(t *testing.T, msg sentMessage) string {
	t.Helper()
	require.Equal(t, ws.TypeError, msg.Type)
	var body ws.ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &body))
	return body.Message
}

// mockBroadcaster records broadcast payloads.
type mockBroadcaster struct {
	mu   sync.Mutex
	sent [][]byte
}

func (b *mockBroadcaster) Broadcast(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, data)
}

func (b *mockBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

var eiffel = game.Location{
	ID: 7, Name: "Eiffel Tower", Category: "Architecture", Subcategory: "Landmarks",
	Country: "France", City: "Paris", Continent: "Europe", Climate: "Temperate",
	Latitude: 48.8584, Longitude: 2.2945, Difficulty: "Easy",
}

type testEnv struct {
	router *Router
	sm     *session.Manager
	board  *leaderboard.MemoryStore
	hub    *mockBroadcaster
}

func setupTest(maxRounds int) *testEnv {
	cfg := tournament.DefaultConfig()
	cfg.MaxRounds = maxRounds
	cfg.CountdownSeconds = 0
	cfg.TimeBonus = game.NoTimeBonus

	board := leaderboard.NewMemoryStore()
	hub := &mockBroadcaster{}
	lh := NewLeaderboardHandler(board, hub)
	provider := location.NewCachedProvider(location.StaticSource{eiffel}, time.Minute)
	sm := session.NewManager(cfg, provider, lh.RecordTournament)
	th := NewTournamentHandler(context.Background(), sm)

	return &testEnv{
		router: NewRouter(th, lh),
		sm:     sm,
		board:  board,
		hub:    hub,
	}
}

func (e *testEnv) send(client *ws.Client, msgType string, payload any) {
	var data json.RawMessage
	if payload != nil {
		data, _ = json.Marshal(payload)
	}
	raw, _ := json.Marshal(ws.Message{Type: msgType, Data: data})
	e.router.HandleMessage(&ws.ClientMessage{Client: client, Data: raw})
}

func (e *testEnv) start(t *testing.T, client *ws.Client, ch chan sentMessage) {
	t.Helper()
	e.send(client, ws.TypeStartTournament, startTournamentRequest{PlayerID: "player1", Mode: "tournament"})
	require.Equal(t, ws.TypeRoundStart, readResponse(t, ch).Type)
	t.Cleanup(func() { e.sm.RemoveByClient(client.ID) })
}
