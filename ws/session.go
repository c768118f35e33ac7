package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/internal/logx"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/metrics"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/middleware"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/room"
)

type sessionState int

const (
	stateConnected sessionState = iota // transport open, no identity yet
	stateJoined
	stateClosed
)

// Session binds one connection to a user identity inside a room and
// translates protocol events into room operations. All methods are
// called from the connection's read goroutine only, so the fields need
// no locking. Malformed or out-of-state events are dropped without a
// reply; the sender is never disconnected for them.
type Session struct {
	conn     Conn
	hub      *Hub
	registry *room.Registry

	userID string
	roomID string
	name   string
	color  string

	state sessionState
	room  *room.Room

	log *zap.Logger
}

func NewSession(conn Conn, hub *Hub, registry *room.Registry, roomID string) *Session {
	userID := conn.ID()
	return &Session{
		conn:     conn,
		hub:      hub,
		registry: registry,
		userID:   userID,
		roomID:   roomID,
		color:    middleware.ColorFromUserID(userID),
		state:    stateConnected,
		log: logx.Default().With(
			zap.String("room", roomID),
			zap.String("user", userID),
		),
	}
}

func (s *Session) UserID() string { return s.userID }

// unmarshalPayload decodes the envelope payload into v. A missing
// payload leaves v at its zero value.
func unmarshalPayload(env config.Envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(env.Payload, v)
}

// HandleMessage dispatches one inbound frame.
func (s *Session) HandleMessage(msg []byte) {
	if s.state == stateClosed {
		return
	}

	env, err := middleware.DecodeEnvelope(msg)
	if err != nil {
		s.log.Debug("bad frame", zap.Error(err))
		return
	}

	// fold unrecognized names into one label so clients cannot grow
	// the counter vector without bound
	label := env.Event
	if !config.IsClientEvent(label) {
		label = "unknown"
	}
	metrics.EventsTotal.WithLabelValues(label).Inc()

	// before join only the join event means anything
	if s.state == stateConnected {
		if env.Event == config.EvJoin {
			s.handleJoin(env)
		}
		return
	}

	switch env.Event {
	case config.EvJoin:
		// already joined; the identity is fixed for the connection
	case config.EvDrawStroke:
		s.handleDrawStroke(env)
	case config.EvDrawingLive:
		// pure relay, no state change; losing one only leaves a
		// visual gap until the commit reconciles it
		s.hub.BroadcastExcept(s.roomID, s.conn, msg)
	case config.EvUndo:
		s.handleUndo()
	case config.EvRedo:
		s.handleRedo()
	case config.EvClear:
		s.handleClear()
	case config.EvCursorMove:
		s.handleCursorMove(env)
	case config.EvChatMessage:
		s.handleChat(env)
	default:
		s.log.Debug("unknown event", zap.String("event", env.Event))
	}
}

func (s *Session) handleJoin(env config.Envelope) {
	var p config.JoinPayload
	if err := unmarshalPayload(env, &p); err != nil {
		s.log.Debug("bad join payload", zap.Error(err))
		return
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "anonymous"
	}
	s.name = name

	s.room = s.registry.GetOrCreate(s.roomID)
	s.hub.Join(s.roomID, s.conn)

	s.room.Do(func(st *room.State) {
		st.AddUser(s.userID, name, s.color)

		// replay only committed history; the redo stack is never
		// exposed to clients
		s.hub.SendTo(s.conn, middleware.EncodeEvent(config.EvRestoreHistory, st.History()))
		s.hub.BroadcastAll(s.roomID, middleware.EncodeEvent(config.EvUserList, st.Users()))
	})

	s.state = stateJoined
	s.log.Info("joined", zap.String("name", name))
}

func (s *Session) handleDrawStroke(env config.Envelope) {
	var stroke config.Stroke
	if err := unmarshalPayload(env, &stroke); err != nil {
		s.log.Debug("bad stroke payload", zap.Error(err))
		return
	}

	// the server is authoritative for authorship
	stroke.UserID = s.userID
	if stroke.ID == "" {
		stroke.ID = uuid.NewString()
	}

	s.room.Do(func(st *room.State) {
		st.AddStroke(stroke)
		// the sender already rendered its own stroke locally
		s.hub.BroadcastExcept(s.roomID, s.conn, middleware.EncodeEvent(config.EvStrokeCommitted, stroke))
	})
	metrics.StrokesCommitted.Inc()
}

func (s *Session) handleUndo() {
	s.room.Do(func(st *room.State) {
		history, ok := st.Undo()
		if !ok {
			return // nothing to undo, no broadcast
		}
		// full resync to everyone, sender included: its optimistic
		// state may already be wrong
		s.hub.BroadcastAll(s.roomID, middleware.EncodeEvent(config.EvCanvasState, history))
	})
}

func (s *Session) handleRedo() {
	s.room.Do(func(st *room.State) {
		history, ok := st.Redo()
		if !ok {
			return
		}
		s.hub.BroadcastAll(s.roomID, middleware.EncodeEvent(config.EvCanvasState, history))
	})
}

func (s *Session) handleClear() {
	s.room.Do(func(st *room.State) {
		st.Clear()
		s.hub.BroadcastAll(s.roomID, middleware.EncodeEvent(config.EvCanvasState, []config.Stroke{}))
	})
}

func (s *Session) handleCursorMove(env config.Envelope) {
	var p config.CursorMovePayload
	if err := unmarshalPayload(env, &p); err != nil {
		s.log.Debug("bad cursor payload", zap.Error(err))
		return
	}

	s.room.Do(func(st *room.State) {
		st.UpsertCursor(s.userID, p.X, p.Y, p.Name, s.color)

		cursors := make(map[string]config.CursorState)
		for id, u := range st.Users() {
			if u.Cursor == nil {
				continue
			}
			cursors[id] = config.CursorState{
				X:     u.Cursor.X,
				Y:     u.Cursor.Y,
				Name:  u.Name,
				Color: u.Color,
			}
		}
		s.hub.BroadcastExcept(s.roomID, s.conn, middleware.EncodeEvent(config.EvCursorUpdate, cursors))
	})
}

func (s *Session) handleChat(env config.Envelope) {
	var msg config.ChatMessage
	if err := unmarshalPayload(env, &msg); err != nil {
		s.log.Debug("bad chat payload", zap.Error(err))
		return
	}

	// sender identity is stamped server side, whatever the client sent
	msg.ID = s.userID
	if msg.Name == "" {
		msg.Name = s.name
	}
	if msg.Color == "" {
		msg.Color = s.color
	}
	if msg.Time == 0 {
		msg.Time = time.Now().UnixMilli()
	}

	// relay only, never retained
	s.hub.BroadcastExcept(s.roomID, s.conn, middleware.EncodeEvent(config.EvChatMessage, msg))
}

// HandleDisconnect releases everything the session holds. Safe to call
// for a session that never joined, and idempotent.
func (s *Session) HandleDisconnect() {
	if s.state == stateClosed {
		return
	}
	wasJoined := s.state == stateJoined
	s.state = stateClosed

	if !wasJoined {
		return
	}

	s.hub.Leave(s.roomID, s.conn)

	s.room.Do(func(st *room.State) {
		st.RemoveUser(s.userID)
		if st.UserCount() == 0 {
			return
		}
		s.hub.BroadcastAll(s.roomID, middleware.EncodeEvent(config.EvUserList, st.Users()))
	})

	// drops the join's reference; the last one out retires the room
	s.registry.Release(s.roomID)

	s.log.Info("left")
}
