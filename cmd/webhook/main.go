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

	"github.com/joho/godotenv"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/config"
	apphttp "github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/handlers"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/notify"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/outbox"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/webhook"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()
	if err := cfg.RequireWebhook(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DB.DSN)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	svc := webhook.NewService(db, profiles.NewRepo(db), logger)
	r := apphttp.NewWebhookRouter(logger, &handlers.Webhooks{
		Secret: cfg.Webhook.SharedSecret,
		Svc:    svc,
		Logger: logger,
	})

	// the poller drains the email outbox the ingest transaction fills
	poller := outbox.NewPoller(
		db,
		notify.NewClient(cfg.Webhook.NotifyURL, cfg.Webhook.NotifyToken),
		logger,
		cfg.Webhook.OutboxTick,
		cfg.Webhook.OutboxBatch,
		cfg.Webhook.OutboxRetries,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go poller.Run(ctx)

	srv := &http.Server{Addr: cfg.Webhook.Addr, Handler: r}
	go func() {
		logger.Info("listening", "addr", cfg.Webhook.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
