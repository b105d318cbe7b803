package ws

import (
	"chat-presence/domain"
	"chat-presence/errors"
	"chat-presence/mocks"
	"chat-presence/runtime"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	url       string
	hub       *Hub
	registry  *runtime.Registry
	router    *runtime.Router
	lifecycle *runtime.Lifecycle
	relay     *mocks.MockNotificationRelay
	verifier  *mocks.MockTokenVerifier
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	hub := NewHub(log)
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(log, registry, hub, nil)
	lifecycle := runtime.NewLifecycle(log, registry, router)
	relay := mocks.NewMockNotificationRelay(ctrl)
	verifier := mocks.NewMockTokenVerifier(ctrl)

	srv := httptest.NewServer(NewServer(cfg, log, hub, lifecycle, relay, verifier, nil))
	t.Cleanup(func() {
		hub.Shutdown()
		srv.Close()
	})

	return &testEnv{
		url:       "ws" + strings.TrimPrefix(srv.URL, "http"),
		hub:       hub,
		registry:  registry,
		router:    router,
		lifecycle: lifecycle,
		relay:     relay,
		verifier:  verifier,
	}
}

func (e *testEnv) dial(t *testing.T, query string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(e.url+query, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data any) {
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Frame{Event: event, Data: raw}))
}

type received struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func next(t *testing.T, conn *websocket.Conn) received {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame received
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func onlineUsers(t *testing.T, frame received) []string {
	require.Equal(t, domain.EventUpdateOnlineUsers, frame.Event)
	var users []string
	require.NoError(t, json.Unmarshal(frame.Data, &users))
	return users
}

func TestServer_Identify_Broadcasts_Presence_Once_Per_User(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	// Given alice opens a first tab
	tab1 := env.dial(t, "")
	send(t, tab1, domain.EventUserConnected, "alice")
	req.Equal([]string{"alice"}, onlineUsers(t, next(t, tab1)))

	// When she opens a second tab
	tab2 := env.dial(t, "")
	send(t, tab2, domain.EventUserConnected, map[string]string{"userId": "alice"})
	req.Eventually(func() bool {
		return len(env.registry.ListConnections("alice")) == 2
	}, time.Second, 5*time.Millisecond)

	// Then a notification reaches both tabs with an identical payload
	req.Equal(2, env.router.EmitToUser("alice", domain.EventReceiveNotification, map[string]string{"message": "hi"}))
	first, second := next(t, tab1), next(t, tab2)
	req.Equal(domain.EventReceiveNotification, first.Event)
	req.Equal(first, second)
}

func TestServer_Disconnect_Broadcasts_When_User_Goes_Offline(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	alice := env.dial(t, "")
	send(t, alice, domain.EventUserConnected, "alice")
	req.Equal([]string{"alice"}, onlineUsers(t, next(t, alice)))

	bob := env.dial(t, "")
	send(t, bob, domain.EventUserConnected, "bob")
	req.ElementsMatch([]string{"alice", "bob"}, onlineUsers(t, next(t, alice)))
	req.ElementsMatch([]string{"alice", "bob"}, onlineUsers(t, next(t, bob)))

	// When bob closes his only tab
	req.NoError(bob.Close())

	// Then alice sees him leave
	req.Equal([]string{"alice"}, onlineUsers(t, next(t, alice)))
	req.False(env.registry.IsOnline("bob"))
}

func TestServer_Malformed_Identity_Keeps_Connection_Anonymous(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	conn := env.dial(t, "")
	send(t, conn, domain.EventUserConnected, "   ")
	send(t, conn, "ping", nil)

	// The unknown event answers, proving the connection survived the bad identity
	frame := next(t, conn)
	req.Equal(domain.EventError, frame.Event)
	req.Empty(env.registry.ListOnlineUsers())
}

func TestServer_SendNotification_Requires_Identity(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	conn := env.dial(t, "")
	send(t, conn, domain.EventSendNotification, map[string]any{"receiverId": "bob", "notification": map[string]any{"type": "like"}})

	frame := next(t, conn)
	req.Equal(domain.EventError, frame.Event)
	var payload ErrorPayload
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal(domain.EventSendNotification, payload.Request)
}

func TestServer_SendNotification_Relays_As_Identified_User(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	conn := env.dial(t, "")
	send(t, conn, domain.EventUserConnected, "alice")
	onlineUsers(t, next(t, conn))

	relayed := make(chan domain.RelayCommand, 1)
	env.relay.EXPECT().
		Relay(gomock.Any(), domain.UserID("alice"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.UserID, cmd domain.RelayCommand) (int, error) {
			relayed <- cmd
			return 1, nil
		})

	send(t, conn, domain.EventSendNotification, map[string]any{"receiverId": "bob", "notification": map[string]any{"type": "like"}})

	select {
	case cmd := <-relayed:
		req.Equal("bob", cmd.ReceiverID)
		req.Equal("like", cmd.Notification["type"])
	case <-time.After(2 * time.Second):
		req.Fail("relay not called")
	}
}

func TestServer_SendNotification_Refused_Returns_Error_Frame(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	conn := env.dial(t, "")
	send(t, conn, domain.EventUserConnected, "alice")
	onlineUsers(t, next(t, conn))

	env.relay.EXPECT().
		Relay(gomock.Any(), domain.UserID("alice"), gomock.Any()).
		Return(0, errors.ErrForbidden)

	send(t, conn, domain.EventSendNotification, map[string]any{"receiverId": "mallory", "notification": map[string]any{}})

	frame := next(t, conn)
	req.Equal(domain.EventError, frame.Event)
	req.Contains(string(frame.Data), errors.ErrForbidden.Error())
}

func TestServer_Token_Handshake(t *testing.T) {
	t.Run("missing token is refused when required", func(t *testing.T) {
		req := require.New(t)
		env := newTestEnv(t, Config{RequireToken: true})

		_, resp, err := websocket.DefaultDialer.Dial(env.url, nil)
		req.Error(err)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid token is refused", func(t *testing.T) {
		req := require.New(t)
		env := newTestEnv(t, Config{})
		env.verifier.EXPECT().Verify("bad").Return(domain.UserID(""), errors.ErrInvalidToken)

		_, resp, err := websocket.DefaultDialer.Dial(env.url+"?token=bad", nil)
		req.Error(err)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("identity must match the token", func(t *testing.T) {
		req := require.New(t)
		env := newTestEnv(t, Config{RequireToken: true})
		env.verifier.EXPECT().Verify("good").Return(domain.UserID("alice"), nil)

		conn := env.dial(t, "?token=good")
		send(t, conn, domain.EventUserConnected, "mallory")
		send(t, conn, domain.EventUserConnected, "alice")

		req.Equal([]string{"alice"}, onlineUsers(t, next(t, conn)))
		req.False(env.registry.IsOnline("mallory"))
	})
}

func TestHub_Close_Disconnects_Client(t *testing.T) {
	req := require.New(t)
	env := newTestEnv(t, Config{})

	conn := env.dial(t, "")
	req.Eventually(func() bool { return env.hub.Len() == 1 }, time.Second, 5*time.Millisecond)

	stale := env.lifecycle.AnonymousSince(time.Now().Add(time.Second))
	req.Len(stale, 1)
	req.NoError(env.hub.Close(stale[0]))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	req.Error(err)
	req.Eventually(func() bool {
		return env.hub.Len() == 0 && env.lifecycle.Stats().OpenConnections == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHub_Send_Unknown_Connection(t *testing.T) {
	hub := NewHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	err := hub.Send("nope", domain.NewOutboundEvent(domain.EventReceiveMessage, nil))
	require.ErrorIs(t, err, errors.ErrUnknownConn)
	require.ErrorIs(t, hub.Close("nope"), errors.ErrUnknownConn)
}
