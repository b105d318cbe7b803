//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-presence/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is the per-connection send primitive offered by the connection layer.
// Send and Broadcast only enqueue: they never wait for the network write.
type Transport interface {
	Send(connID domain.ConnectionID, evt domain.OutboundEvent) error
	Broadcast(evt domain.OutboundEvent) int
	Close(connID domain.ConnectionID) error
}

// IRegistry is the presence registry, the only owner of the user -> connections mapping.
type IRegistry interface {
	RegisterConnection(userID domain.UserID, connID domain.ConnectionID) bool
	UnregisterConnection(connID domain.ConnectionID) (domain.UserID, bool)
	ListConnections(userID domain.UserID) []domain.ConnectionID
	ListOnlineUsers() []domain.UserID
	IsOnline(userID domain.UserID) bool
	Count() (users int, connections int)
	Clear()
}

// IRouter pushes events to every live connection of the addressed users.
type IRouter interface {
	EmitToUser(userID domain.UserID, eventName string, payload any) int
	EmitToUsers(userIDs []domain.UserID, eventName string, payload any)
	BroadcastPresence()
}

// Authorizer decides whether a user may push an ad hoc notification to another one.
type Authorizer interface {
	CanNotify(ctx context.Context, from, to domain.UserID) (bool, error)
}

// ILifecycle reacts to transport events and keeps the registry in sync with them.
type ILifecycle interface {
	OnConnect(connID domain.ConnectionID, principal domain.UserID)
	OnIdentify(connID domain.ConnectionID, rawUserID string) bool
	OnDisconnect(connID domain.ConnectionID)
	Identity(connID domain.ConnectionID) (domain.UserID, bool)
	AnonymousSince(cutoff time.Time) []domain.ConnectionID
	ClaimAnonymous(connID domain.ConnectionID, cutoff time.Time) bool
	Stats() domain.PresenceStats
}

// NotificationRelay forwards a client-initiated sendNotification after authorization.
type NotificationRelay interface {
	Relay(ctx context.Context, senderID domain.UserID, cmd domain.RelayCommand) (int, error)
}

// TokenVerifier turns a bearer token into the authenticated user.
type TokenVerifier interface {
	Verify(token string) (domain.UserID, error)
}

// ContentFilter masks banned words in user supplied text.
// The boolean reports whether anything was replaced.
type ContentFilter interface {
	Clean(text string) (string, bool)
}
