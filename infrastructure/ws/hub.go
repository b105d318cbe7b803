package ws

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"fmt"
	"log/slog"
	"sync"
)

// Hub keeps every open connection, anonymous ones included, and implements
// contract.Transport on top of their send queues.
type Hub struct {
	mu    sync.RWMutex
	conns map[domain.ConnectionID]*Connection
	log   *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		conns: make(map[domain.ConnectionID]*Connection),
		log:   log,
	}
}

func (h *Hub) add(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

func (h *Hub) remove(id domain.ConnectionID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

func (h *Hub) get(id domain.ConnectionID) (*Connection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.conns[id]
	return c, ok
}

// Send enqueues evt on a single connection.
func (h *Hub) Send(connID domain.ConnectionID, evt domain.OutboundEvent) error {
	c, ok := h.get(connID)
	if !ok {
		return errors.ErrUnknownConn
	}
	msg, err := encodeEvent(evt)
	if err != nil {
		return fmt.Errorf("encode %s: %w", evt.Name, err)
	}
	return c.enqueue(msg)
}

// Broadcast enqueues evt on every open connection and returns how many accepted it.
// The frame is encoded once for all of them.
func (h *Hub) Broadcast(evt domain.OutboundEvent) int {
	msg, err := encodeEvent(evt)
	if err != nil {
		h.log.Error("Unable to encode broadcast", "event", evt.Name, "error", err)
		return 0
	}

	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range conns {
		if err := c.enqueue(msg); err != nil {
			h.log.Debug("Broadcast dropped", "event", evt.Name, "conn_id", c.id, "error", err)
			continue
		}
		sent++
	}
	return sent
}

// Close terminates the connection. Its read loop then reports the disconnect.
func (h *Hub) Close(connID domain.ConnectionID) error {
	c, ok := h.get(connID)
	if !ok {
		return errors.ErrUnknownConn
	}
	c.close()
	return nil
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Shutdown closes every connection.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[domain.ConnectionID]*Connection)
	h.mu.Unlock()

	for _, c := range conns {
		c.close()
	}
	h.log.Info("Websocket hub stopped", "closed", len(conns))
}
