package runtime

import (
	"chat-presence/contract"
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/observability"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Router resolves users to their live connections and pushes events to each of them.
//
// It only reads the registry. Every push is handed to the transport, which enqueues it
// on the connection's own send queue: a slow or dead socket never delays the others.
// Offline users are skipped silently, the durable notification record is the
// caller's responsibility.
type Router struct {
	log        *slog.Logger
	registry   contract.IRegistry
	transport  contract.Transport
	metrics    *observability.Metrics
	presenceMu sync.Mutex
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, transport contract.Transport, metrics *observability.Metrics) *Router {
	return &Router{log: log, registry: registry, transport: transport, metrics: metrics}
}

// EmitToUser pushes the event to every connection of userID.
// It returns how many connections accepted it.
func (r *Router) EmitToUser(userID domain.UserID, eventName string, payload any) int {
	connIDs := r.registry.ListConnections(userID)
	if len(connIDs) == 0 {
		r.log.Debug("User offline, event not pushed", "user_id", userID, "event", eventName)
		r.metrics.Dropped(eventName, "offline")
		return 0
	}

	evt := domain.NewOutboundEvent(eventName, payload)
	delivered := 0
	for _, connID := range connIDs {
		if err := r.send(connID, evt); err != nil {
			r.log.Warn("Failed to push event to connection",
				"user_id", userID,
				"conn_id", connID,
				"event", eventName,
				"error", err)
			r.metrics.Dropped(eventName, dropReason(err))
			continue
		}
		r.metrics.Delivered(eventName)
		delivered++
	}
	return delivered
}

// EmitToUsers applies EmitToUser to each distinct id.
// A partial fan-out is an accepted outcome.
func (r *Router) EmitToUsers(userIDs []domain.UserID, eventName string, payload any) {
	for _, userID := range lo.Uniq(userIDs) {
		r.EmitToUser(userID, eventName, payload)
	}
}

// BroadcastPresence sends the current online-user snapshot to every open connection.
// Broadcasts are serialized so the last one sent reflects the latest transition.
func (r *Router) BroadcastPresence() {
	r.presenceMu.Lock()
	defer r.presenceMu.Unlock()

	online := r.registry.ListOnlineUsers()
	slices.Sort(online)
	reached := r.transport.Broadcast(domain.NewOutboundEvent(domain.EventUpdateOnlineUsers, online))
	r.metrics.Broadcast()
	r.log.Debug("Presence broadcast", "online_users", len(online), "connections", reached)
}

// send isolates a single push: a panicking transport must not abort the fan-out.
func (r *Router) send(connID domain.ConnectionID, evt domain.OutboundEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("transport panic: %v", rec)
		}
	}()
	return r.transport.Send(connID, evt)
}

func dropReason(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrBackpressure):
		return "backpressure"
	case stderrors.Is(err, errors.ErrConnectionClosed), stderrors.Is(err, errors.ErrUnknownConn):
		return "closed"
	default:
		return "error"
	}
}
