package room

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreateReturnsSameRoom(t *testing.T) {
	g := NewRegistry()

	a := g.GetOrCreate("room1")
	b := g.GetOrCreate("room1")
	assert.Same(t, a, b)

	c := g.GetOrCreate("room2")
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, g.Len())
}

func TestRegistry_ConcurrentFirstJoinCreatesOneRoom(t *testing.T) {
	g := NewRegistry()

	const n = 64
	rooms := make([]*Room, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rooms[i] = g.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, g.Len())
	for _, r := range rooms {
		assert.Same(t, rooms[0], r)
	}
}

func TestRegistry_ReleaseRetiresOnLastReference(t *testing.T) {
	g := NewRegistry()

	a := g.GetOrCreate("room1")
	b := g.GetOrCreate("room1")
	require.Same(t, a, b)

	g.Release("room1")
	_, ok := g.Get("room1")
	assert.True(t, ok, "one holder left, room stays")

	g.Release("room1")
	_, ok = g.Get("room1")
	assert.False(t, ok, "last release retires the room")

	g.Release("room1") // over-release is harmless

	// a fresh acquire builds a fresh room, history gone with the old one
	c := g.GetOrCreate("room1")
	assert.NotSame(t, a, c)
}

func TestRegistry_Remove(t *testing.T) {
	g := NewRegistry()
	g.GetOrCreate("room1")

	g.Remove("room1")
	_, ok := g.Get("room1")
	assert.False(t, ok)
	assert.Equal(t, 0, g.Len())

	g.Remove("room1") // removing twice is fine
}

func TestRegistry_Rooms(t *testing.T) {
	g := NewRegistry()
	g.GetOrCreate("a")
	g.GetOrCreate("b")

	ids := make(map[string]bool)
	for _, r := range g.Rooms() {
		ids[r.ID()] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, ids)
}

func TestRoom_DoSerializesOperations(t *testing.T) {
	g := NewRegistry()
	r := g.GetOrCreate("room1")

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Do(func(st *State) {
				st.AddStroke(stroke("x"))
			})
		}()
	}
	wg.Wait()

	strokes, _ := r.Counts()
	assert.Equal(t, n, strokes)
}
