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
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/mailer"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/notify"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()
	if err := cfg.RequireNotify(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var mail mailer.Service
	switch cfg.Email.Provider {
	case "api":
		mail = mailer.NewAPIMailer(cfg.Email.APIURL, cfg.Email.APIKey)
	default:
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	}

	svc := notify.NewService(mail, cfg.Email.FromAddr, cfg.Email.FromName, logger)
	r := apphttp.NewNotifyRouter(logger, &handlers.Notify{
		Token: cfg.Notify.BearerToken,
		Svc:   svc,
	})

	srv := &http.Server{Addr: cfg.Notify.Addr, Handler: r}
	go func() {
		logger.Info("listening", "addr", cfg.Notify.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
