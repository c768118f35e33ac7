package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/room"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/ws"
)

// Handler serves the small read-only surface next to the websocket:
// liveness, hub totals and the per-room roster.
type Handler struct {
	hub      *ws.Hub
	registry *room.Registry
}

func NewHandler(hub *ws.Hub, registry *room.Registry) *Handler {
	return &Handler{hub: hub, registry: registry}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/stats", h.Stats)
	r.Get("/rooms", h.Rooms)
	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rooms, clients := h.hub.Stats()
	writeJSON(w, http.StatusOK, map[string]int{
		"rooms":   rooms,
		"clients": clients,
	})
}

type roomInfo struct {
	ID      string `json:"id"`
	Users   int    `json:"users"`
	Strokes int    `json:"strokes"`
}

func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	live := h.registry.Rooms()

	out := make([]roomInfo, 0, len(live))
	for _, rm := range live {
		strokes, users := rm.Counts()
		out = append(out, roomInfo{ID: rm.ID(), Users: users, Strokes: strokes})
	}

	writeJSON(w, http.StatusOK, out)
}
