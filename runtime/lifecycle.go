package runtime

import (
	"chat-presence/contract"
	"chat-presence/domain"
	"log/slog"
	"sync"
	"time"
)

// Lifecycle follows every transport connection through CONNECTING -> OPEN -> CLOSED
// and mirrors identified connections into the presence registry.
//
// A connection is anonymous until the client announces its identity with userConnected.
// Presence broadcasts are emitted only on real online/offline transitions.
type Lifecycle struct {
	mu       sync.Mutex
	sessions map[domain.ConnectionID]*domain.Session
	registry contract.IRegistry
	router   contract.IRouter
	log      *slog.Logger
	now      func() time.Time
}

func NewLifecycle(log *slog.Logger, registry contract.IRegistry, router contract.IRouter) *Lifecycle {
	return &Lifecycle{
		sessions: make(map[domain.ConnectionID]*domain.Session),
		registry: registry,
		router:   router,
		log:      log,
		now:      time.Now,
	}
}

// OnConnect opens an anonymous session. principal is the user authenticated during
// the transport handshake, empty when the handshake carried no token.
func (l *Lifecycle) OnConnect(connID domain.ConnectionID, principal domain.UserID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.sessions[connID]; exists {
		l.log.Warn("Connection id announced twice, ignored", "conn_id", connID)
		return
	}
	// CONNECTING is the handshake phase, owned by the transport
	l.sessions[connID] = &domain.Session{
		ConnID:    connID,
		State:     domain.Open,
		Principal: principal,
		OpenedAt:  l.now(),
	}
	l.log.Debug("Connection opened", "conn_id", connID)
}

// OnIdentify binds the connection to the announced user.
// Malformed ids, ids contradicting the handshake principal and re-identification
// as somebody else are ignored: the connection stays open and unchanged.
func (l *Lifecycle) OnIdentify(connID domain.ConnectionID, rawUserID string) bool {
	first, ok := l.identify(connID, rawUserID)
	if first {
		l.router.BroadcastPresence()
	}
	return ok
}

func (l *Lifecycle) identify(connID domain.ConnectionID, rawUserID string) (first bool, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, exists := l.sessions[connID]
	if !exists || session.State != domain.Open {
		l.log.Debug("Identity for unknown or closed connection ignored", "conn_id", connID)
		return false, false
	}
	userID, err := domain.ParseUserID(rawUserID)
	if err != nil {
		l.log.Warn("Malformed identity announcement ignored", "conn_id", connID, "error", err)
		return false, false
	}
	if session.Principal != "" && session.Principal != userID {
		l.log.Warn("Identity does not match authenticated user, ignored",
			"conn_id", connID,
			"announced", userID,
			"principal", session.Principal)
		return false, false
	}
	if session.UserID != "" {
		if session.UserID == userID {
			return false, true
		}
		l.log.Warn("Connection already identified, ignored", "conn_id", connID, "user_id", session.UserID)
		return false, false
	}

	session.UserID = userID
	first = l.registry.RegisterConnection(userID, connID)
	l.log.Info("User connected", "user_id", userID, "conn_id", connID, "first", first)
	return first, true
}

// OnDisconnect closes the session whatever the cause. Unknown or repeated
// disconnects are no-ops.
func (l *Lifecycle) OnDisconnect(connID domain.ConnectionID) {
	if l.disconnect(connID) {
		l.router.BroadcastPresence()
	}
}

func (l *Lifecycle) disconnect(connID domain.ConnectionID) (offline bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, exists := l.sessions[connID]
	if !exists {
		return false
	}
	session.State = domain.Closed
	delete(l.sessions, connID)

	userID, offline := l.registry.UnregisterConnection(connID)
	if userID != "" {
		l.log.Info("User connection closed", "user_id", userID, "conn_id", connID, "offline", offline)
	}
	return offline
}

// Identity returns the user bound to an open connection.
func (l *Lifecycle) Identity(connID domain.ConnectionID) (domain.UserID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, exists := l.sessions[connID]
	if !exists || session.UserID == "" {
		return "", false
	}
	return session.UserID, true
}

// AnonymousSince lists open connections that never identified and were opened before cutoff.
func (l *Lifecycle) AnonymousSince(cutoff time.Time) []domain.ConnectionID {
	l.mu.Lock()
	defer l.mu.Unlock()

	var idle []domain.ConnectionID
	for connID, session := range l.sessions {
		if session.State == domain.Open && session.IsAnonymous() && session.OpenedAt.Before(cutoff) {
			idle = append(idle, connID)
		}
	}
	return idle
}

// ClaimAnonymous closes the session if it is still open, anonymous and opened before cutoff.
// A claimed connection can no longer identify, so the caller may tear down the
// transport without racing a late userConnected. The session is dropped on OnDisconnect.
func (l *Lifecycle) ClaimAnonymous(connID domain.ConnectionID, cutoff time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	session, exists := l.sessions[connID]
	if !exists || session.State != domain.Open || !session.IsAnonymous() || !session.OpenedAt.Before(cutoff) {
		return false
	}
	session.State = domain.Closed
	return true
}

func (l *Lifecycle) Stats() domain.PresenceStats {
	l.mu.Lock()
	open := len(l.sessions)
	l.mu.Unlock()

	users, identified := l.registry.Count()
	return domain.PresenceStats{
		OnlineUsers:           users,
		IdentifiedConnections: identified,
		OpenConnections:       open,
	}
}

// Shutdown closes every session and empties the registry.
func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, session := range l.sessions {
		session.State = domain.Closed
	}
	l.sessions = make(map[domain.ConnectionID]*domain.Session)
	l.registry.Clear()
}
