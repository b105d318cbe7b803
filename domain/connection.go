package domain

import "time"

// ConnState is the lifecycle state of a single transport connection.
// CLOSED is terminal.
type ConnState int

const (
	Connecting ConnState = iota
	Open
	Closed
)

func (s ConnState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	}
	return "UNKNOWN"
}

// CanTransition reports whether the state machine allows moving from s to next.
func (s ConnState) CanTransition(next ConnState) bool {
	switch s {
	case Connecting:
		return next == Open || next == Closed
	case Open:
		return next == Closed
	}
	return false
}

// Session is what the lifecycle handler knows about one connection.
// UserID stays empty while the connection is anonymous.
type Session struct {
	ConnID    ConnectionID
	State     ConnState
	Principal UserID
	UserID    UserID
	OpenedAt  time.Time
}

func (s Session) IsAnonymous() bool { return s.UserID == "" }
