package runtime

import (
	"chat-presence/domain"
	"sync"

	"github.com/samber/lo"
)

type Set map[domain.ConnectionID]struct{}

// Registry maps every online user to the set of connections currently open for them.
// A reverse index (connection -> user) is kept alongside so that a disconnect
// resolves its owner without scanning all users.
//
// Both maps are mutated under the same write lock: a user entry exists
// if and only if its connection set is non-empty.
type Registry struct {
	mu          sync.RWMutex
	connections map[domain.UserID]Set
	owners      map[domain.ConnectionID]domain.UserID
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[domain.UserID]Set),
		owners:      make(map[domain.ConnectionID]domain.UserID),
	}
}

// RegisterConnection adds connID to the user's connection set, creating the entry if absent.
// It returns true when this is the user's first connection (offline -> online).
// A connection already owned by another user is left untouched.
func (r *Registry) RegisterConnection(userID domain.UserID, connID domain.ConnectionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Same pair registered twice or a connection claimed by someone else
	if _, ok := r.owners[connID]; ok {
		return false
	}

	set, online := r.connections[userID]
	if !online {
		set = make(Set)
		r.connections[userID] = set
	}
	set[connID] = struct{}{}
	r.owners[connID] = userID
	return !online
}

// UnregisterConnection removes connID from whichever user owns it.
// It returns the owner and true when that user has no connection left (online -> offline).
// Unknown connections are a no-op: disconnect events may be duplicated or race.
func (r *Registry) UnregisterConnection(connID domain.ConnectionID) (domain.UserID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.owners[connID]
	if !ok {
		return "", false
	}
	delete(r.owners, connID)

	set := r.connections[userID]
	delete(set, connID)
	if len(set) == 0 {
		delete(r.connections, userID)
		return userID, true
	}
	return userID, false
}

// ListConnections returns a copy of the user's connection set, empty when offline.
func (r *Registry) ListConnections(userID domain.UserID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.connections[userID]
	if !ok {
		return []domain.ConnectionID{}
	}
	return lo.Keys(set)
}

// ListOnlineUsers returns every user with at least one open connection, in no particular order.
func (r *Registry) ListOnlineUsers() []domain.UserID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.connections)
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.connections[userID]
	return ok
}

// Owner resolves the user bound to a connection.
func (r *Registry) Owner(connID domain.ConnectionID) (domain.UserID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.owners[connID]
	return userID, ok
}

// Count returns the number of online users and open identified connections.
func (r *Registry) Count() (users int, connections int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections), len(r.owners)
}

// Clear drops every entry. Called on shutdown.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections = make(map[domain.UserID]Set)
	r.owners = make(map[domain.ConnectionID]domain.UserID)
}
