package ws

import (
	"chat-presence/auth"
	"chat-presence/contract"
	"chat-presence/domain"
	"chat-presence/observability"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var validate = validator.New()

type Config struct {
	RequireToken  bool
	SendBuffer    int
	WriteTimeout  time.Duration
	PongTimeout   time.Duration
	MaxFrameBytes int64
}

func (c Config) withDefaults() Config {
	if c.SendBuffer <= 0 {
		c.SendBuffer = 64
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.PongTimeout <= 0 {
		c.PongTimeout = 60 * time.Second
	}
	return c
}

// Pings go out before the peer's pong deadline expires.
func (c Config) pingInterval() time.Duration {
	return c.PongTimeout * 9 / 10
}

// Server upgrades HTTP requests to websocket connections and translates
// inbound frames into lifecycle and relay calls.
type Server struct {
	cfg       Config
	log       *slog.Logger
	hub       *Hub
	lifecycle contract.ILifecycle
	relay     contract.NotificationRelay
	verifier  contract.TokenVerifier
	metrics   *observability.Metrics
	upgrader  websocket.Upgrader
}

func NewServer(cfg Config, log *slog.Logger, hub *Hub, lifecycle contract.ILifecycle,
	relay contract.NotificationRelay, verifier contract.TokenVerifier, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:       cfg.withDefaults(),
		log:       log,
		hub:       hub,
		lifecycle: lifecycle,
		relay:     relay,
		verifier:  verifier,
		metrics:   metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(r)
	if !ok {
		http.Error(w, "invalid or missing token", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Websocket upgrade failed", "error", err)
		return
	}

	c := newConnection(domain.ConnectionID(uuid.NewString()), conn, s.cfg.SendBuffer)
	s.hub.add(c)
	s.lifecycle.OnConnect(c.id, principal)

	go s.writeLoop(c)
	s.readLoop(r.Context(), c)

	s.hub.remove(c.id)
	c.close()
	s.lifecycle.OnDisconnect(c.id)
}

// authenticate resolves the handshake principal. Without a token the
// connection is accepted anonymously unless tokens are required.
func (s *Server) authenticate(r *http.Request) (domain.UserID, bool) {
	token := auth.BearerToken(r)
	if token == "" {
		return "", !s.cfg.RequireToken
	}
	if s.verifier == nil {
		return "", false
	}
	userID, err := s.verifier.Verify(token)
	if err != nil {
		s.log.Debug("Websocket token rejected", "error", err)
		return "", false
	}
	return userID, true
}

func (s *Server) readLoop(ctx context.Context, c *Connection) {
	if s.cfg.MaxFrameBytes > 0 {
		c.conn.SetReadLimit(s.cfg.MaxFrameBytes)
	}
	_ = c.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
	})

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !c.closed() {
				s.log.Debug("Websocket read failed", "conn_id", c.id, "error", err)
			}
			return
		}
		// Any traffic proves the peer is alive
		_ = c.conn.SetReadDeadline(time.Now().Add(s.cfg.PongTimeout))
		if messageType != websocket.TextMessage {
			continue
		}
		s.handleFrame(ctx, c, data)
	}
}

func (s *Server) writeLoop(c *Connection) {
	ticker := time.NewTicker(s.cfg.pingInterval())
	defer ticker.Stop()
	defer c.close()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.log.Debug("Websocket write failed", "conn_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleFrame(ctx context.Context, c *Connection, data []byte) {
	frame, err := decodeFrame(data)
	if err != nil {
		s.metrics.Rejected("", "malformed")
		s.sendError(c, "", "malformed frame")
		return
	}

	switch frame.Event {
	case domain.EventUserConnected:
		s.handleUserConnected(c, frame)
	case domain.EventSendNotification:
		s.handleSendNotification(ctx, c, frame)
	default:
		s.metrics.Rejected("unknown", "unknown_event")
		s.sendError(c, frame.Event, "unknown event")
	}
}

func (s *Server) handleUserConnected(c *Connection, frame Frame) {
	raw, err := identityFromData(frame.Data)
	if err != nil {
		s.log.Warn("userConnected ignored", "conn_id", c.id, "error", err)
		s.metrics.Rejected(frame.Event, "malformed")
		return
	}
	if !s.lifecycle.OnIdentify(c.id, raw) {
		s.metrics.Rejected(frame.Event, "refused")
	}
}

func (s *Server) handleSendNotification(ctx context.Context, c *Connection, frame Frame) {
	sender, ok := s.lifecycle.Identity(c.id)
	if !ok {
		s.metrics.Rejected(frame.Event, "anonymous")
		s.sendError(c, frame.Event, "identify with userConnected first")
		return
	}

	var cmd domain.RelayCommand
	if err := json.Unmarshal(frame.Data, &cmd); err != nil {
		s.metrics.Rejected(frame.Event, "malformed")
		s.sendError(c, frame.Event, "malformed payload")
		return
	}

	if _, err := s.relay.Relay(ctx, sender, cmd); err != nil {
		s.log.Info("sendNotification refused", "conn_id", c.id, "sender", sender, "error", err)
		s.metrics.Rejected(frame.Event, "refused")
		s.sendError(c, frame.Event, err.Error())
	}
}

func (s *Server) sendError(c *Connection, request, message string) {
	evt := domain.NewOutboundEvent(domain.EventError, ErrorPayload{Request: request, Message: message})
	if err := s.hub.Send(c.id, evt); err != nil {
		s.log.Debug("Error frame dropped", "conn_id", c.id, "error", err)
	}
}
