package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/room"
)

func readEnvelope(t *testing.T, conn *websocket.Conn) config.Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var env config.Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	return env
}

func TestHandler_EndToEnd(t *testing.T) {
	cfg := config.Config{
		AllowedOrigins: []string{"*"},
		DefaultRoom:    "lobby",
	}
	h := NewHandler(cfg, NewHub(), room.NewRegistry())

	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?roomId=e2e"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	err = conn.WriteMessage(websocket.TextMessage, frame(t, config.EvJoin, config.JoinPayload{Name: "Ann"}))
	require.NoError(t, err)

	env := readEnvelope(t, conn)
	require.Equal(t, config.EvRestoreHistory, env.Event)
	var history []config.Stroke
	require.NoError(t, json.Unmarshal(env.Payload, &history))
	assert.Empty(t, history)

	env = readEnvelope(t, conn)
	require.Equal(t, config.EvUserList, env.Event)
	var users map[string]config.User
	require.NoError(t, json.Unmarshal(env.Payload, &users))
	require.Len(t, users, 1)
	for _, u := range users {
		assert.Equal(t, "Ann", u.Name)
	}

	// commit then undo; the commit is not echoed, the undo resync is
	err = conn.WriteMessage(websocket.TextMessage, frame(t, config.EvDrawStroke, testStroke("s1")))
	require.NoError(t, err)
	err = conn.WriteMessage(websocket.TextMessage, frame(t, config.EvUndo, nil))
	require.NoError(t, err)

	env = readEnvelope(t, conn)
	require.Equal(t, config.EvCanvasState, env.Event)
	require.NoError(t, json.Unmarshal(env.Payload, &history))
	assert.Empty(t, history)
}
