package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/geonerd-server/internal/game"
	"github.com/ugaemi/geonerd-server/internal/ws"
)

func TestHandleMessage_InvalidFormat(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")

	env.router.HandleMessage(&ws.ClientMessage{Client: client, Data: []byte("not json")})

	assert.Equal(t, "invalid message format", errorText(t, readResponse(t, ch)))
}

func TestHandleMessage_UnknownType(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")

	env.send(client, "teleport", nil)

	assert.Equal(t, "unknown message type: teleport", errorText(t, readResponse(t, ch)))
}

func TestHandleStart_RequiresPlayerID(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")

	env.send(client, ws.TypeStartTournament, startTournamentRequest{})

	assert.Equal(t, "player_id is required", errorText(t, readResponse(t, ch)))
	assert.Equal(t, 0, env.sm.Count())
}

func TestHandleStart_SendsFirstRound(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")

	env.start(t, client, ch)

	s := env.sm.FindByClient(client.ID)
	require.NotNil(t, s)
	assert.Equal(t, "player1", s.PlayerID)
	assert.Equal(t, game.StateAwaitingGuess, s.Controller().State())
}

func TestHandleGuess_NoSession(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")

	env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 1, "lng": 2})

	assert.Equal(t, "no active tournament", errorText(t, readResponse(t, ch)))
}

func TestHandleGuess_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"missing lng", map[string]float64{"lat": 1}, "lat and lng are required"},
		{"missing both", map[string]any{}, "lat and lng are required"},
		{"latitude out of range", map[string]float64{"lat": 91, "lng": 0}, "invalid coordinates"},
		{"longitude out of range", map[string]float64{"lat": 0, "lng": -181}, "invalid coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(5)
			client, ch := newTestClient("client1")
			env.start(t, client, ch)

			env.send(client, ws.TypeSubmitGuess, tt.payload)

			assert.Equal(t, tt.want, errorText(t, readResponse(t, ch)))
			assert.Equal(t, game.StateAwaitingGuess, env.sm.FindByClient(client.ID).Controller().State())
		})
	}
}

func TestHandleGuess_ScoresOnce(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 48.8584, "lng": 2.2945})

	resp := readResponse(t, ch)
	require.Equal(t, ws.TypeRoundResult, resp.Type)
	var result game.RoundResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 1, result.RoundNumber)

	env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 0, "lng": 0})
	assertNoResponse(t, ch)
	assert.Equal(t, 1, env.sm.FindByClient(client.ID).Controller().Stats().RoundsPlayed)
}

func TestHandleHint(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	env.send(client, ws.TypeRequestHint, requestHintRequest{Level: 2})
	resp := readResponse(t, ch)
	require.Equal(t, ws.TypeHint, resp.Type)
	assert.JSONEq(t, `{"level":2,"kind":"continent","text":"Continent: Europe","penalty":20}`, string(resp.Data))

	env.send(client, ws.TypeRequestHint, requestHintRequest{Level: 1})
	assertNoResponse(t, ch)

	env.send(client, ws.TypeRequestHint, requestHintRequest{Level: 9})
	assertNoResponse(t, ch)
}

func TestHandleNext(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	env.send(client, ws.TypeNextRound, nil)
	assertNoResponse(t, ch)

	env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 0, "lng": 0})
	require.Equal(t, ws.TypeRoundResult, readResponse(t, ch).Type)

	env.send(client, ws.TypeNextRound, nil)
	resp := readResponse(t, ch)
	require.Equal(t, ws.TypeRoundStart, resp.Type)

	var start struct {
		RoundNumber int `json:"round_number"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &start))
	assert.Equal(t, 2, start.RoundNumber)
}

func TestHandleLeave(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	env.send(client, ws.TypeLeaveTournament, nil)
	assert.Equal(t, 0, env.sm.Count())

	env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 0, "lng": 0})
	assert.Equal(t, "no active tournament", errorText(t, readResponse(t, ch)))
}

func TestHandleDisconnect_RemovesSession(t *testing.T) {
	env := setupTest(5)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	env.router.HandleDisconnect(client)

	assert.Equal(t, 0, env.sm.Count())
}

func TestTournament_CompletionSubmitsToLeaderboard(t *testing.T) {
	env := setupTest(2)
	client, ch := newTestClient("client1")
	env.start(t, client, ch)

	for round := 1; round <= 2; round++ {
		env.send(client, ws.TypeSubmitGuess, map[string]float64{"lat": 48.8584, "lng": 2.2945})
		require.Equal(t, ws.TypeRoundResult, readResponse(t, ch).Type)
		env.send(client, ws.TypeNextRound, nil)
		if round < 2 {
			require.Equal(t, ws.TypeRoundStart, readResponse(t, ch).Type)
		}
	}

	complete := readResponse(t, ch)
	require.Equal(t, ws.TypeTournamentComplete, complete.Type)

	board := readResponse(t, ch)
	require.Equal(t, ws.TypeLeaderboard, board.Type)
	var resp leaderboardResponse
	require.NoError(t, json.Unmarshal(board.Data, &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "player1", resp.Entries[0].PlayerID)
	assert.Equal(t, 200, resp.Entries[0].TotalPoints)
	assert.Equal(t, "4", resp.Entries[0].CalculatedScore.String())
	assert.Equal(t, 1, resp.Rank)

	require.Eventually(t, func() bool { return env.hub.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHub_MessagesAfterDisconnectAreDropped(t *testing.T) {
	env := setupTest(5)
	hub := ws.NewHub()
	hub.OnMessage = env.router.HandleMessage
	hub.OnDisconnect = env.router.HandleDisconnect

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	raw := func(msgType string, payload any) []byte {
		data, _ := json.Marshal(payload)
		msg, _ := json.Marshal(ws.Message{Type: msgType, Data: data})
		return msg
	}

	client, ch := newTestClient("client1")
	hub.Register <- client
	hub.Incoming <- &ws.ClientMessage{Client: client, Data: raw(ws.TypeStartTournament, startTournamentRequest{PlayerID: "player1"})}
	require.Equal(t, ws.TypeRoundStart, readResponse(t, ch).Type)

	// Queued after the disconnect; handling them would write to a closed channel.
	hub.Unregister <- client
	hub.Incoming <- &ws.ClientMessage{Client: client, Data: raw(ws.TypeNextRound, struct{}{})}
	hub.Incoming <- &ws.ClientMessage{Client: client, Data: raw(ws.TypeStartTournament, startTournamentRequest{PlayerID: "player1"})}

	other, otherCh := newTestClient("client2")
	hub.Register <- other
	hub.Incoming <- &ws.ClientMessage{Client: other, Data: raw(ws.TypeNextRound, struct{}{})}

	assert.Equal(t, "no active tournament", errorText(t, readResponse(t, otherCh)))
	assert.Equal(t, 0, env.sm.Count())
}
