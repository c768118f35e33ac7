package room

import (
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
)

// State holds one room's authoritative drawing history, redo stack and
// user roster. It is a plain data structure and is not safe for
// concurrent use; all access goes through Room.Do, which serializes
// every operation on the room.
type State struct {
	history []config.Stroke
	redo    []config.Stroke
	users   map[string]*config.User
}

func NewState() *State {
	return &State{
		users: make(map[string]*config.User),
	}
}

// AddStroke commits a stroke to history. Any commit invalidates the
// redo chain. Stroke geometry is not validated here; a degenerate
// stroke is simply rendered as such by observers.
func (s *State) AddStroke(st config.Stroke) {
	s.history = append(s.history, st)
	s.redo = nil
}

// Undo moves the most recent stroke from history to the redo stack and
// returns the resulting history. ok is false when there is nothing to
// undo, in which case state is untouched.
func (s *State) Undo() (history []config.Stroke, ok bool) {
	n := len(s.history)
	if n == 0 {
		return nil, false
	}
	last := s.history[n-1]
	s.history = s.history[:n-1]
	s.redo = append(s.redo, last)
	return s.History(), true
}

// Redo moves the most recently undone stroke back onto history and
// returns the resulting history. ok is false when the redo stack is
// empty.
func (s *State) Redo() (history []config.Stroke, ok bool) {
	n := len(s.redo)
	if n == 0 {
		return nil, false
	}
	st := s.redo[n-1]
	s.redo = s.redo[:n-1]
	s.history = append(s.history, st)
	return s.History(), true
}

// Clear empties both history and the redo stack. Always succeeds.
func (s *State) Clear() {
	s.history = nil
	s.redo = nil
}

// AddUser creates the presence entry for a joining user. Re-joining
// with an existing id refreshes the name and keeps the cursor.
func (s *State) AddUser(id, name, color string) {
	if u, ok := s.users[id]; ok {
		u.Name = name
		return
	}
	s.users[id] = &config.User{ID: id, Name: name, Color: color}
}

// UpsertCursor records a cursor report, creating the presence entry on
// first sight of the user id.
func (s *State) UpsertCursor(id string, x, y float64, name, color string) {
	u, ok := s.users[id]
	if !ok {
		u = &config.User{ID: id, Name: name, Color: color}
		s.users[id] = u
	}
	if name != "" {
		u.Name = name
	}
	u.Cursor = &config.Cursor{X: x, Y: y}
}

// RemoveUser deletes the presence entry. Idempotent.
func (s *State) RemoveUser(id string) {
	delete(s.users, id)
}

// History returns a copy of the committed stroke list, oldest first.
// Strokes themselves are immutable once committed, so sharing them
// across the copy is safe.
func (s *State) History() []config.Stroke {
	out := make([]config.Stroke, len(s.history))
	copy(out, s.history)
	return out
}

// Users returns a value snapshot of the roster keyed by user id.
func (s *State) Users() map[string]config.User {
	out := make(map[string]config.User, len(s.users))
	for id, u := range s.users {
		out[id] = *u
	}
	return out
}

func (s *State) StrokeCount() int { return len(s.history) }
func (s *State) RedoCount() int   { return len(s.redo) }
func (s *State) UserCount() int   { return len(s.users) }
