package room

import (
	"sync"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/metrics"
)

// Registry maps room ids to live rooms. Rooms are created lazily on
// first join and retired when the last holder releases them; operations
// on different rooms never contend with each other.
//
// Reference counts are only touched under the registry lock, so a
// concurrent first join and last leave can never strand a session on a
// retired room.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
	refs  map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		refs:  make(map[string]int),
	}
}

// GetOrCreate returns the room for id, constructing it if needed, and
// takes a reference on it. At most one Room ever exists per id, even
// under concurrent first joins. Each call is balanced by one Release.
func (g *Registry) GetOrCreate(id string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	r, ok := g.rooms[id]
	if !ok {
		r = newRoom(id)
		g.rooms[id] = r
		metrics.ActiveRooms.Inc()
	}
	g.refs[id]++
	return r
}

// Release drops one reference. The room is retired when the last
// holder lets go; its history does not survive that.
func (g *Registry) Release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.refs[id] == 0 {
		return
	}
	g.refs[id]--
	if g.refs[id] == 0 {
		delete(g.refs, id)
		delete(g.rooms, id)
		metrics.ActiveRooms.Dec()
	}
}

// Get returns the room for id if it exists.
func (g *Registry) Get(id string) (*Room, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.rooms[id]
	return r, ok
}

// Remove retires a room unconditionally, references or not. Never
// reached from protocol handling; Release covers the normal lifecycle.
func (g *Registry) Remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rooms[id]; ok {
		delete(g.rooms, id)
		delete(g.refs, id)
		metrics.ActiveRooms.Dec()
	}
}

// Rooms returns the live rooms in no particular order.
func (g *Registry) Rooms() []*Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		out = append(out, r)
	}
	return out
}

func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rooms)
}
