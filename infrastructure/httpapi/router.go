package httpapi

import (
	"chat-presence/auth"
	"chat-presence/contract"
	"chat-presence/services"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type Dependencies struct {
	Log           *slog.Logger
	Verifier      contract.TokenVerifier
	Notifications services.INotificationService
	Messages      services.IMessageService
	Friends       services.IFriendService
	Registry      contract.IRegistry
	Websocket     http.Handler
	Gatherer      prometheus.Gatherer
	Tracer        trace.Tracer
}

// NewRouter wires every REST route behind the JWT middleware, plus the
// unauthenticated metrics endpoint and the websocket upgrade.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}
	if deps.Websocket != nil {
		// The websocket authenticates its own handshake and must not be timed out
		r.Handle("/ws", deps.Websocket)
	}

	notifications := &NotificationHandler{log: deps.Log, service: deps.Notifications}
	messages := &MessageHandler{log: deps.Log, service: deps.Messages}
	friends := &FriendHandler{log: deps.Log, service: deps.Friends}
	presence := &PresenceHandler{registry: deps.Registry}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		r.Use(tracing(tracer))
		r.Use(auth.Middleware(deps.Verifier))
		r.Use(tagUser)
		notifications.RegisterRoutes(r)
		messages.RegisterRoutes(r)
		friends.RegisterRoutes(r)
		presence.RegisterRoutes(r)
	})
	return r
}
