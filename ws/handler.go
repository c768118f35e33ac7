package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/internal/logx"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/room"
)

// Handler upgrades /ws requests and runs one client/session pair per
// connection until the transport drops.
type Handler struct {
	cfg      config.Config
	hub      *Hub
	registry *room.Registry
	upgrader websocket.Upgrader
}

func NewHandler(cfg config.Config, hub *Hub, registry *room.Registry) *Handler {
	return &Handler{
		cfg:      cfg,
		hub:      hub,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || cfg.AllowsOrigin(origin)
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	if roomID == "" {
		roomID = h.cfg.DefaultRoom
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.From(r.Context()).Warn("upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(uuid.NewString(), conn)
	session := NewSession(client, h.hub, h.registry, roomID)

	logx.From(r.Context()).Info("ws connected",
		zap.String("room", roomID),
		zap.String("user", client.ID()),
	)

	client.Run(session)
}
