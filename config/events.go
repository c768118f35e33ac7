package config

import "encoding/json"

// Inbound events.
const (
	EvJoin        = "join"
	EvDrawStroke  = "draw_stroke"
	EvDrawingLive = "drawing_live"
	EvUndo        = "undo"
	EvRedo        = "redo"
	EvClear       = "clear"
	EvCursorMove  = "cursor_move"
	EvChatMessage = "chat_message"
)

// Outbound events. EvStrokeCommitted keeps the historical wire spelling
// that deployed clients listen for.
const (
	EvRestoreHistory  = "restore_history"
	EvStrokeCommitted = "stroke_commited"
	EvCanvasState     = "canvas_state"
	EvUserList        = "user_list"
	EvCursorUpdate    = "cursor_update"
)

var clientEvents = map[string]bool{
	EvJoin:        true,
	EvDrawStroke:  true,
	EvDrawingLive: true,
	EvUndo:        true,
	EvRedo:        true,
	EvClear:       true,
	EvCursorMove:  true,
	EvChatMessage: true,
}

// IsClientEvent reports whether name is an event clients are allowed to
// send. Anything else is client-controlled input and must not be used
// as a metric label or similar unbounded key.
func IsClientEvent(name string) bool {
	return clientEvents[name]
}

// Envelope is the frame for every message on the wire, one envelope per
// websocket text message.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinPayload struct {
	Name string `json:"name"`
}

// LiveSegment is one in-progress (uncommitted) stroke segment. It is
// relayed without touching room state and may be dropped freely; the
// commit that follows reconciles any gap.
type LiveSegment struct {
	P1    Point   `json:"p1"`
	P2    Point   `json:"p2"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type CursorMovePayload struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// CursorState is one entry of a cursor_update broadcast.
type CursorState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Name  string  `json:"name"`
	Color string  `json:"color,omitempty"`
}
