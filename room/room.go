package room

import "sync"

// Room pairs one State with the room's serialization point. Every
// mutation and every read used for a broadcast runs inside Do, so
// operations from different connections apply in a total order and
// their outbound events are enqueued in that same order.
type Room struct {
	id string

	mu    sync.Mutex
	state *State
}

func newRoom(id string) *Room {
	return &Room{id: id, state: NewState()}
}

func (r *Room) ID() string { return r.id }

// Do runs fn with exclusive access to the room's state. fn must not
// block on I/O; broadcasting from inside fn is fine because dispatch
// only enqueues to per-connection buffers.
func (r *Room) Do(fn func(st *State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.state)
}

// Counts reports committed strokes and present users without exposing
// the state itself.
func (r *Room) Counts() (strokes, users int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.StrokeCount(), r.state.UserCount()
}
