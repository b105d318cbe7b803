package runtime

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_EmitToUser_Offline_User(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), NewRegistry(), transport, nil)

	// Then the transport is never touched
	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	delivered := router.EmitToUser("offline", domain.EventReceiveNotification, "payload")
	req.Zero(delivered)
}

func TestRouter_EmitToUser_N_Connections(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	registry := NewRegistry()
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), registry, transport, nil)

	// Given a user with three tabs open
	conns := []domain.ConnectionID{newConnID(), newConnID(), newConnID()}
	for _, c := range conns {
		registry.RegisterConnection("erin", c)
	}
	payload := map[string]any{"type": "like"}
	expected := domain.NewOutboundEvent(domain.EventReceiveNotification, payload)

	// Then exactly one push per connection, each with the same payload
	for _, c := range conns {
		transport.EXPECT().Send(c, expected).Return(nil).Times(1)
	}

	delivered := router.EmitToUser("erin", domain.EventReceiveNotification, payload)
	req.Equal(3, delivered)
}

func TestRouter_EmitToUser_One_Failing_Connection_Does_Not_Block_Others(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	registry := NewRegistry()
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), registry, transport, nil)

	dead, full, alive := newConnID(), newConnID(), newConnID()
	for _, c := range []domain.ConnectionID{dead, full, alive} {
		registry.RegisterConnection("erin", c)
	}

	transport.EXPECT().Send(dead, gomock.Any()).Return(errors.ErrConnectionClosed)
	transport.EXPECT().Send(full, gomock.Any()).Return(errors.ErrBackpressure)
	transport.EXPECT().Send(alive, gomock.Any()).Return(nil)

	req.Equal(1, router.EmitToUser("erin", domain.EventReceiveMessage, "hello"))
}

func TestRouter_EmitToUser_Recovers_From_Transport_Panic(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	registry := NewRegistry()
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), registry, transport, nil)

	broken, alive := newConnID(), newConnID()
	registry.RegisterConnection("erin", broken)
	registry.RegisterConnection("erin", alive)

	transport.EXPECT().Send(broken, gomock.Any()).DoAndReturn(
		func(domain.ConnectionID, domain.OutboundEvent) error { panic("socket exploded") })
	transport.EXPECT().Send(alive, gomock.Any()).Return(nil)

	req.NotPanics(func() {
		req.Equal(1, router.EmitToUser("erin", domain.EventReceiveMessage, "hello"))
	})
}

func TestRouter_EmitToUsers_Deduplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	registry := NewRegistry()
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), registry, transport, nil)

	a, b := newConnID(), newConnID()
	registry.RegisterConnection("alice", a)
	registry.RegisterConnection("bob", b)

	transport.EXPECT().Send(a, gomock.Any()).Return(nil).Times(1)
	transport.EXPECT().Send(b, gomock.Any()).Return(errors.ErrBackpressure).Times(1)

	// Partial fan-out is fine, offline user is skipped
	router.EmitToUsers([]domain.UserID{"alice", "bob", "alice", "offline"}, domain.EventReceiveNotification, "x")
}

func TestRouter_BroadcastPresence_Sends_Sorted_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	registry := NewRegistry()
	router := NewRouter(logs.GetLoggerFromLevel(slog.LevelDebug), registry, transport, nil)

	registry.RegisterConnection("bob", newConnID())
	registry.RegisterConnection("alice", newConnID())

	transport.EXPECT().
		Broadcast(domain.NewOutboundEvent(domain.EventUpdateOnlineUsers, []domain.UserID{"alice", "bob"})).
		Return(2).
		Times(1)

	router.BroadcastPresence()
}
