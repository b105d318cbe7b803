package main

import (
	"chat-presence/auth"
	grpcserver "chat-presence/infrastructure/grpc/server"
	"chat-presence/infrastructure/httpapi"
	"chat-presence/infrastructure/ws"
	"chat-presence/internal"
	"chat-presence/moderation"
	"chat-presence/observability"
	"chat-presence/repositories"
	"chat-presence/runtime"
	"chat-presence/runtime/workers"
	"chat-presence/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func buildServeCmd(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the presence node (websocket, REST API, gRPC health)",
		Long: `Start the presence node. Configuration is read from the environment,
optionally seeded by a local .env file.

Graceful shutdown is handled on SIGINT/SIGTERM signals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			*code, err = run(cmd.Context())
			return err
		},
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Every defer (database cleanup first of all) runs before the process exits.
func run(ctx context.Context) (int, error) {
	// 1. Configuration & Logger
	// A local .env is optional, real environment variables always win
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	filter, err := moderation.NewFilter(config.CensoredWordList(), charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("censored words: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, repositories.InspectMapper)
	}

	// 3. Metrics & traces
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(promRegistry)

	tracerProvider, shutdownTracing, err := observability.NewTracerProvider(ctx, observability.TraceConfig{
		Endpoint:     config.OtelEndpoint,
		SamplingRate: config.OtelSamplingRate,
		Insecure:     config.OtelInsecure,
		Version:      version,
	})
	if err != nil {
		return exitConfig, err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Trace exporter shutdown incomplete", "error", err)
		}
	}()

	// 4. Presence core
	hub := ws.NewHub(logger)
	registry := runtime.NewRegistry()
	router := runtime.NewRouter(logger, registry, hub, metrics)
	lifecycle := runtime.NewLifecycle(logger, registry, router)

	// 5. Storage & services
	notificationRepository := repositories.NewNotificationRepository(db, logger)
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	friendRepository := repositories.NewFriendRepository(db)

	notificationService := services.NewNotificationService(logger, notificationRepository, router, friendRepository).
		WithFilter(filter)
	messageService := services.NewMessageService(logger, messageRepository, notificationService, router).
		WithFilter(filter)
	friendService := services.NewFriendService(logger, friendRepository, notificationService)

	// 6. Transports
	tokens := auth.NewTokens(config.JWTSecret, config.AuthTokenDuration)
	wsServer := ws.NewServer(ws.Config{
		RequireToken:  config.RequireToken,
		SendBuffer:    config.ConnectionBufferSize,
		WriteTimeout:  config.WriteTimeout,
		PongTimeout:   config.PongTimeout,
		MaxFrameBytes: int64(config.MaxFrameBytes),
	}, logger, hub, lifecycle, notificationService, tokens, metrics)

	httpServer := &http.Server{
		Addr: config.HTTPAddress(),
		Handler: httpapi.NewRouter(httpapi.Dependencies{
			Log:           logger,
			Verifier:      tokens,
			Notifications: notificationService,
			Messages:      messageService,
			Friends:       friendService,
			Registry:      registry,
			Websocket:     wsServer,
			Gatherer:      promRegistry,
			Tracer:        tracerProvider.Tracer(observability.ServiceName),
		}),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	healthServer := grpcserver.NewHealthServer(logger)
	listener, err := net.Listen("tcp", config.GRPCAddress())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.GRPCAddress(), err)
	}

	// 7. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	// 8. Background workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewIdleReaper(logger, lifecycle, hub, metrics, config.AnonymousTimeout, config.ReaperInterval),
		workers.NewPresenceSampler(lifecycle, metrics, config.MetricInterval),
		workers.NewHealthSampler(logger, metrics, config.MetricInterval),
	)
	supDone := make(chan struct{})
	go func() {
		defer close(supDone)
		sup.Run(ctx)
	}()

	go func() {
		if err := healthServer.Serve(listener); err != nil {
			errChan <- err
		}
	}()

	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	healthServer.SetServing(true)

	// 9. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		code = exitRuntime
	}

	// 10. Final Cleanup (Graceful Shutdown)
	// Orchestrators stop routing first, then sockets are closed and the registry emptied.
	logger.Info("Shutting down gracefully...")
	healthServer.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}
	hub.Shutdown()
	lifecycle.Shutdown()
	sup.Stop()
	<-supDone
	healthServer.Stop()
	logger.Info("Program stopped cleanly")

	return code, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}
