// Le Guide - cross-cultural business consulting chat server
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/maisondeculture/leguide/internal/api"
	"github.com/maisondeculture/leguide/internal/chatlog"
	"github.com/maisondeculture/leguide/internal/config"
	"github.com/maisondeculture/leguide/internal/generator"
	"github.com/maisondeculture/leguide/internal/middleware"
	"github.com/maisondeculture/leguide/internal/ratelimit"
	"github.com/maisondeculture/leguide/internal/telemetry"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var logFile io.Closer
	logger, logFile, err = telemetry.InitLogger(cfg.LogPath, true, slog.LevelInfo)
	if err != nil {
		slog.Error("Failed to initialize log file", "error", err)
		os.Exit(1)
	}
	defer func() { _ = logFile.Close() }()

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Missing credentials do not stop the server; chat requests fail until they are set.
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		slog.Warn("Required environment variables are not set, chat requests will fail", "missing", missing)
	}

	tracer, meter := telemetry.Noop()
	if cfg.Telemetry.Enabled {
		var cleanup func()
		tracer, meter, cleanup, err = telemetry.InitTelemetry(context.Background(), cfg.Telemetry.Dir)
		if err != nil {
			slog.Error("Failed to initialize telemetry", "error", err)
			os.Exit(1)
		}
		defer cleanup()
		slog.Info("Telemetry initialized", "dir", cfg.Telemetry.Dir)
	}
	metrics, err := telemetry.NewChatMetrics(meter)
	if err != nil {
		slog.Error("Failed to create chat metrics", "error", err)
		os.Exit(1)
	}

	conversationLog, err := chatlog.New(chatlog.Config{
		Enabled:   cfg.ConversationLog.Enabled,
		Path:      cfg.ConversationLog.Path,
		QueueSize: cfg.ConversationLog.QueueSize,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize conversation logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := conversationLog.Close(); closeErr != nil {
			slog.Error("Failed to close conversation log", "error", closeErr)
		}
	}()

	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	defer limiter.Close()

	// Initialize handlers.
	chatHandler := api.NewChatHandler(api.ChatOptions{
		Guard:          cfg,
		Limiter:        limiter,
		Responder:      generator.New(logger),
		Log:            conversationLog,
		Tracer:         tracer,
		Metrics:        metrics,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins(),
	})
	healthHandler := api.NewHealthHandler(cfg)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS(cfg.AllowedOrigins()))

	healthHandler.RegisterHealth(r)
	chatHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // WebSocket connections are long-lived
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server stopped successfully")
}
