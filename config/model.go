package config

// Point is a vertex of a stroke in virtual canvas coordinates (1920x1080).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const (
	ToolPencil = "pencil"
	ToolEraser = "eraser"
)

// Stroke is one committed drawing action. Once appended to a room's
// history it is never mutated, only moved between history and the redo
// stack as a whole.
type Stroke struct {
	ID     string  `json:"id"`
	UserID string  `json:"userId"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Tool   string  `json:"tool"`
	Points []Point `json:"points"`
}

// Cursor is a normalized position in [0,1]x[0,1]; renderers scale it to
// their own viewport.
type Cursor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// User is the presence record for one connection. Cursor stays nil
// until the first cursor_move report.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Cursor *Cursor `json:"cursor,omitempty"`
}

// ChatMessage is relayed between clients and never buffered server
// side; late joiners do not see chat history. ID is the sender id,
// stamped by the server regardless of what the client sent.
type ChatMessage struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Time  int64  `json:"time"`
}
