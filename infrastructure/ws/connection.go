package ws

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Connection is one upgraded socket with its bounded outbound queue.
// The queue is drained by a single writer goroutine, which keeps
// per-connection delivery order.
type Connection struct {
	id        domain.ConnectionID
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(id domain.ConnectionID, conn *websocket.Conn, buffer int) *Connection {
	if buffer <= 0 {
		buffer = 1
	}
	return &Connection{
		id:   id,
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

func (c *Connection) ID() domain.ConnectionID {
	return c.id
}

// enqueue never blocks: a full queue drops the message for this connection only.
func (c *Connection) enqueue(msg []byte) error {
	select {
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return errors.ErrConnectionClosed
	default:
		return errors.ErrBackpressure
	}
}

const closeGrace = time.Second

// close says goodbye to the peer then drops the socket, which unblocks the read loop.
// WriteControl may run concurrently with the writer goroutine.
func (c *Connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(closeGrace))
		_ = c.conn.Close()
	})
}

func (c *Connection) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
