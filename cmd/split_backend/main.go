package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/event_split_app/internal/core/services"
	"github.com/SscSPs/event_split_app/internal/handlers"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/SscSPs/event_split_app/internal/notify"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/platform/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Event Split API
// @version 1.0
// @description Shared-event expense ledger: participants, join requests, transactions and settlements.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg, logger, true)
	if err != nil {
		logger.Error("Failed to open state store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if repos.Close != nil {
		defer func() {
			if err := repos.Close(context.Background()); err != nil {
				logger.Error("Error closing state store", slog.String("error", err.Error()))
			}
		}()
	}

	// Change notifications: always logged, optionally published to RabbitMQ.
	sinks := notify.Fanout{notify.LogSink{Logger: logger}}
	if cfg.RabbitMQURL != "" {
		publisher, err := notify.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			logger.Error("Failed to initialize RabbitMQ publisher", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer publisher.Close()
		sinks = append(sinks, publisher)
		logger.Info("Publishing change events", slog.String("queue", cfg.RabbitMQQueue))
	}
	worker := notify.NewWorker(sinks, cfg.EventBufferSize)
	worker.Start()
	defer worker.Shutdown()

	container := services.NewServiceContainer(cfg, repos, services.WithChangeListener(worker))
	if err := container.State.Load(middleware.WithLogger(ctx, logger)); err != nil {
		logger.Error("Failed to load state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StateBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	if dirty, err := container.State.Sync(middleware.WithLogger(shutdownCtx, logger), false); err != nil {
		logger.Error("Final state sync failed", slog.String("error", err.Error()))
	} else if len(dirty) > 0 {
		logger.Info("Synced stale stores on shutdown", slog.Any("stores", dirty))
	}
}
