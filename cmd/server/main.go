package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/cache"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/config"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/handlers"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/services"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/utils"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/validator"
	"github.com/SAP-F-2025/adaptive-tutor-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)
	if err := run(cfg, logger, slogger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger utils.Logger, slogger *slog.Logger) error {
	ctx := context.Background()
	v := validator.New()
	importer := services.NewImportExportService(slogger, v)

	// ── Question bank ───────────────────────────────────────────────
	repo, err := loadQuestions(ctx, cfg, importer, slogger)
	if err != nil {
		return err
	}

	// ── Side channels ───────────────────────────────────────────────
	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	var insightsCache cache.CacheService = cache.NoopCache{}
	if cfg.RedisURL != "" {
		client, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
		insightsCache = cache.NewRedisCache(client, slogger)
		logger.Info("Insights cache enabled", "ttl", cfg.InsightsCacheTTL.String())
	}

	// ── Tutor ───────────────────────────────────────────────────────
	seed := uint64(time.Now().UnixNano())
	tutor := services.NewTutorService(repo, rand.New(rand.NewPCG(seed, seed>>1)), slogger, v, services.TutorOptions{
		SessionID: cfg.SessionID,
		Publisher: publisher,
		Cache:     insightsCache,
		CacheTTL:  cfg.InsightsCacheTTL,
		Exporter:  importer,
	})

	router := handlers.NewRouter(handlers.NewHandlerManager(tutor, logger), handlers.RouterConfig{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
