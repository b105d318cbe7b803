package httpapi

import (
	"bytes"
	"chat-presence/auth"
	"chat-presence/domain"
	"chat-presence/moderation"
	"chat-presence/repositories"
	"chat-presence/runtime"
	"chat-presence/services"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// recordingTransport keeps every event pushed per connection.
type recordingTransport struct {
	mu   sync.Mutex
	sent map[domain.ConnectionID][]domain.OutboundEvent
}

func (t *recordingTransport) Send(connID domain.ConnectionID, evt domain.OutboundEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent[connID] = append(t.sent[connID], evt)
	return nil
}

func (t *recordingTransport) Broadcast(domain.OutboundEvent) int { return 0 }

func (t *recordingTransport) Close(domain.ConnectionID) error { return nil }

func (t *recordingTransport) events(connID domain.ConnectionID, name string) []domain.OutboundEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []domain.OutboundEvent
	for _, evt := range t.sent[connID] {
		if evt.Name == name {
			out = append(out, evt)
		}
	}
	return out
}

type apiEnv struct {
	server    *httptest.Server
	tokens    *auth.Tokens
	transport *recordingTransport
	lifecycle *runtime.Lifecycle
	friends   repositories.FriendRepository
	spans     *tracetest.SpanRecorder
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport := &recordingTransport{sent: make(map[domain.ConnectionID][]domain.OutboundEvent)}
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(log, registry, transport, nil)
	lifecycle := runtime.NewLifecycle(log, registry, router)

	filter, err := moderation.NewFilter([]string{"darn"}, '*')
	require.NoError(t, err)

	friendRepository := repositories.NewFriendRepository(db)
	notifications := services.NewNotificationService(log, repositories.NewNotificationRepository(db, log), router, friendRepository).
		WithFilter(filter)
	messages := services.NewMessageService(log, repositories.NewMessageRepository(db, log, nil), notifications, router).
		WithFilter(filter)
	friends := services.NewFriendService(log, friendRepository, notifications)
	tokens := auth.NewTokens("test_secret", time.Hour)
	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	server := httptest.NewServer(NewRouter(Dependencies{
		Log:           log,
		Verifier:      tokens,
		Notifications: notifications,
		Messages:      messages,
		Friends:       friends,
		Registry:      registry,
		Gatherer:      prometheus.NewRegistry(),
		Tracer:        provider.Tracer("test"),
	}))
	t.Cleanup(server.Close)

	return &apiEnv{server: server, tokens: tokens, transport: transport, lifecycle: lifecycle, friends: friendRepository, spans: spans}
}

// connect opens and identifies a connection for userID.
func (e *apiEnv) connect(t *testing.T, connID domain.ConnectionID, userID string) {
	e.lifecycle.OnConnect(connID, "")
	require.True(t, e.lifecycle.OnIdentify(connID, userID))
}

func (e *apiEnv) call(t *testing.T, method, path string, as domain.UserID, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	request, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if as != "" {
		token, err := e.tokens.Generate(as)
		require.NoError(t, err)
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := e.server.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, payload
}

func (e *apiEnv) notifications(t *testing.T, as domain.UserID) []domain.Notification {
	status, payload := e.call(t, http.MethodGet, "/api/notifications", as, nil)
	require.Equal(t, http.StatusOK, status)
	var notifications []domain.Notification
	require.NoError(t, json.Unmarshal(payload, &notifications))
	return notifications
}

func TestAPI_Requires_Token(t *testing.T) {
	env := newAPIEnv(t)
	status, _ := env.call(t, http.MethodGet, "/api/presence", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

// The receiver is offline: nothing is pushed, the notification waits for the pull API.
func TestAPI_Offline_Receiver_Pulls_Message_Notification(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, payload := env.call(t, http.MethodPost, "/api/messages", "alice", map[string]string{
		"receiverId": "carol",
		"message":    "hello",
	})
	req.Equal(http.StatusCreated, status, string(payload))
	var message domain.DirectMessage
	req.NoError(json.Unmarshal(payload, &message))

	notifications := env.notifications(t, "carol")
	req.Len(notifications, 1)
	req.Equal(domain.KindMessage, notifications[0].Kind)
	req.Equal(`New message from alice: "hello..."`, notifications[0].Text)
	req.Equal(&domain.Reference{ID: message.ID.String(), Model: domain.RefMessage}, notifications[0].Reference)
	req.False(notifications[0].IsRead)

	status, payload = env.call(t, http.MethodGet, "/api/messages/alice", "carol", nil)
	req.Equal(http.StatusOK, status)
	var conversation []domain.DirectMessage
	req.NoError(json.Unmarshal(payload, &conversation))
	req.Len(conversation, 1)
	req.Equal("hello", conversation[0].Content)
}

func TestAPI_Message_Is_Censored_Before_Storage(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, payload := env.call(t, http.MethodPost, "/api/messages", "alice", map[string]string{
		"receiverId": "carol",
		"message":    "D4RN it",
	})
	req.Equal(http.StatusCreated, status, string(payload))

	status, payload = env.call(t, http.MethodGet, "/api/messages/alice", "carol", nil)
	req.Equal(http.StatusOK, status)
	var conversation []domain.DirectMessage
	req.NoError(json.Unmarshal(payload, &conversation))
	req.Len(conversation, 1)
	req.Equal("**** it", conversation[0].Content)
	req.Equal(`New message from alice: "**** it..."`, env.notifications(t, "carol")[0].Text)
}

func TestAPI_Online_Receiver_Gets_Message_On_Every_Tab(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)
	env.connect(t, "b1", "bob")
	env.connect(t, "b2", "bob")

	status, _ := env.call(t, http.MethodPost, "/api/messages", "alice", map[string]string{
		"receiverId": "bob",
		"message":    "are you there?",
	})
	req.Equal(http.StatusCreated, status)

	for _, connID := range []domain.ConnectionID{"b1", "b2"} {
		req.Len(env.transport.events(connID, domain.EventReceiveMessage), 1)
		req.Len(env.transport.events(connID, domain.EventReceiveNotification), 1)
	}
}

func TestAPI_Create_Notification_Reaches_Both_Tabs_Identically(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)
	env.connect(t, "e1", "erin")
	env.connect(t, "e2", "erin")

	status, payload := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients":  []string{"erin", "alice", "erin"},
		"type":        "like",
		"message":     "alice liked your post",
		"referenceId": "post-1",
		"refModel":    "Post",
	})
	req.Equal(http.StatusCreated, status, string(payload))
	var created []domain.Notification
	req.NoError(json.Unmarshal(payload, &created))
	req.Len(created, 1)
	req.Equal(domain.UserID("erin"), created[0].Recipient)

	first := env.transport.events("e1", domain.EventReceiveNotification)
	second := env.transport.events("e2", domain.EventReceiveNotification)
	req.Len(first, 1)
	req.Equal(first, second)
	req.Empty(env.notifications(t, "alice"))
}

func TestAPI_Create_Notification_Rejects_Unknown_Kind(t *testing.T) {
	env := newAPIEnv(t)
	status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients": []string{"bob"},
		"type":       "poke",
		"message":    "hey",
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_Notification_Ownership(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients": []string{"bob"},
		"type":       "mention",
		"message":    "alice mentioned you",
	})
	req.Equal(http.StatusCreated, status)
	id := env.notifications(t, "bob")[0].ID

	// Somebody else cannot touch it
	status, _ = env.call(t, http.MethodPatch, fmt.Sprintf("/api/notifications/%s/read", id), "mallory", nil)
	req.Equal(http.StatusForbidden, status)
	status, _ = env.call(t, http.MethodDelete, fmt.Sprintf("/api/notifications/%s", id), "mallory", nil)
	req.Equal(http.StatusForbidden, status)

	// The recipient can
	status, payload := env.call(t, http.MethodPatch, fmt.Sprintf("/api/notifications/%s/read", id), "bob", nil)
	req.Equal(http.StatusOK, status)
	var read domain.Notification
	req.NoError(json.Unmarshal(payload, &read))
	req.True(read.IsRead)
	req.NotNil(read.ReadAt)

	status, _ = env.call(t, http.MethodDelete, fmt.Sprintf("/api/notifications/%s", id), "bob", nil)
	req.Equal(http.StatusNoContent, status)
	status, _ = env.call(t, http.MethodPatch, fmt.Sprintf("/api/notifications/%s/read", id), "bob", nil)
	req.Equal(http.StatusNotFound, status)

	status, _ = env.call(t, http.MethodPatch, "/api/notifications/not-a-uuid/read", "bob", nil)
	req.Equal(http.StatusBadRequest, status)
}

func TestAPI_Mark_All_Read_And_Delete_All(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	for _, text := range []string{"one", "two", "three"} {
		status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
			"recipients": []string{"bob"},
			"type":       "forum_post",
			"message":    text,
		})
		req.Equal(http.StatusCreated, status)
	}

	status, payload := env.call(t, http.MethodPatch, "/api/notifications/read-all", "bob", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"count":3}`, string(payload))
	for _, notification := range env.notifications(t, "bob") {
		req.True(notification.IsRead)
	}

	status, payload = env.call(t, http.MethodDelete, "/api/notifications", "bob", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"count":3}`, string(payload))
	req.Empty(env.notifications(t, "bob"))
}

func TestAPI_Delete_By_Reference_Cascades(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients":  []string{"bob", "carol"},
		"type":        "forum_join",
		"message":     "alice joined your forum",
		"referenceId": "forum-9",
		"refModel":    "Forum",
	})
	req.Equal(http.StatusCreated, status)

	status, payload := env.call(t, http.MethodDelete, "/api/notifications/reference/Forum/forum-9", "alice", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"count":2}`, string(payload))
	req.Empty(env.notifications(t, "bob"))
	req.Empty(env.notifications(t, "carol"))

	status, _ = env.call(t, http.MethodDelete, "/api/notifications/reference/Thread/x", "alice", nil)
	req.Equal(http.StatusBadRequest, status)
}

func TestAPI_Delete_By_Reference_Leaves_Other_Users_Records(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients":  []string{"bob"},
		"type":        "forum_post",
		"message":     "alice posted in your forum",
		"referenceId": "forum-3",
		"refModel":    "Forum",
	})
	req.Equal(http.StatusCreated, status)

	// mallory is a stranger to the forum notifications
	status, payload := env.call(t, http.MethodDelete, "/api/notifications/reference/Forum/forum-3", "mallory", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"count":0}`, string(payload))
	req.Len(env.notifications(t, "bob"), 1)

	status, payload = env.call(t, http.MethodDelete, "/api/notifications/reference/Forum/forum-3", "bob", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"count":1}`, string(payload))
	req.Empty(env.notifications(t, "bob"))
}

func TestAPI_Create_Notification_Rejects_Malformed_Reference(t *testing.T) {
	env := newAPIEnv(t)
	status, _ := env.call(t, http.MethodPost, "/api/notifications", "alice", map[string]any{
		"recipients":  []string{"bob"},
		"type":        "forum_post",
		"message":     "hey",
		"referenceId": "1:x",
		"refModel":    "Forum",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Empty(t, env.notifications(t, "bob"))
}

func TestAPI_Friend_Request_Flow(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)
	env.connect(t, "a1", "alice")

	status, _ := env.call(t, http.MethodPost, "/api/friends/bob", "alice", nil)
	req.Equal(http.StatusAccepted, status)
	status, _ = env.call(t, http.MethodPost, "/api/friends/bob", "alice", nil)
	req.Equal(http.StatusConflict, status)

	requests := env.notifications(t, "bob")
	req.Len(requests, 1)
	req.Equal(domain.KindFriendRequest, requests[0].Kind)

	status, _ = env.call(t, http.MethodPost, "/api/friends/alice/accept", "bob", nil)
	req.Equal(http.StatusNoContent, status)

	// alice was online and is told right away
	req.Len(env.transport.events("a1", domain.EventReceiveNotification), 1)
	accepted := env.notifications(t, "alice")
	req.Len(accepted, 1)
	req.Equal(domain.KindFriendAccept, accepted[0].Kind)

	status, payload := env.call(t, http.MethodGet, "/api/friends", "alice", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`["bob"]`, string(payload))
	allowed, err := env.friends.CanNotify(context.Background(), "bob", "alice")
	req.NoError(err)
	req.True(allowed)

	status, _ = env.call(t, http.MethodPost, "/api/friends/alice/accept", "bob", nil)
	req.Equal(http.StatusNotFound, status)

	status, _ = env.call(t, http.MethodDelete, "/api/friends/alice", "bob", nil)
	req.Equal(http.StatusNoContent, status)
	status, payload = env.call(t, http.MethodGet, "/api/friends", "alice", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`[]`, string(payload))
}

func TestAPI_Presence_Snapshot(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)
	env.connect(t, "c1", "zoe")
	env.connect(t, "c2", "adam")
	env.connect(t, "c3", "adam")

	status, payload := env.call(t, http.MethodGet, "/api/presence", "zoe", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"onlineUsers":["adam","zoe"],"count":2}`, string(payload))
}

func TestAPI_Metrics_Is_Public(t *testing.T) {
	env := newAPIEnv(t)
	status, _ := env.call(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, status)
}

func TestAPI_Request_Span_Is_Named_After_Route(t *testing.T) {
	req := require.New(t)
	env := newAPIEnv(t)

	status, _ := env.call(t, http.MethodPatch, "/api/notifications/"+uuid.NewString()+"/read", "alice", nil)
	req.Equal(http.StatusNotFound, status)

	var span sdktrace.ReadOnlySpan
	req.Eventually(func() bool {
		ended := env.spans.Ended()
		if len(ended) == 0 {
			return false
		}
		span = ended[len(ended)-1]
		return true
	}, time.Second, 10*time.Millisecond)

	req.Equal("PATCH /api/notifications/{id}/read", span.Name())
	req.Contains(span.Attributes(), attribute.String("presence.user_id", "alice"))
	req.Contains(span.Attributes(), attribute.Int("http.response.status_code", http.StatusNotFound))
}
