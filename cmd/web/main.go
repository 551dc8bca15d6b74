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
	"github.com/redis/go-redis/v9"

	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/config"
	apphttp "github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/cartcookie"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/http/handlers"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/addresses"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/cart"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/orders"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/profiles"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/reviews"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/modules/wishlist"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/shopify"
	"github.com/maryamfaizan53/pixel-perfect-commerce-sub000/internal/storage"
)

func main() {
	// .env is optional; prod sets real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()
	if err := cfg.RequireWeb(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DB.DSN)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	shop := shopify.NewClient(cfg.Shopify)
	cartSvc := cart.NewService(cart.NewRedisStore(rdb), shop, logger)
	cookie := cartcookie.New(cfg.Web.CartSecret, "cart_id", cfg.Web.SecureCookie)

	r := apphttp.NewWebRouter(apphttp.WebDeps{
		Logger:    logger,
		Cookie:    cookie,
		Catalog:   &handlers.Catalog{Shop: shop},
		Cart:      &handlers.CartHandler{Svc: cartSvc, Cookie: cookie},
		Checkout:  &handlers.Checkout{Svc: cartSvc, Cookie: cookie},
		Orders:    &handlers.Orders{Repo: orders.NewRepo(db)},
		Profile:   &handlers.Profile{Repo: profiles.NewRepo(db)},
		Reviews:   &handlers.Reviews{Repo: reviews.NewRepo(db)},
		Wishlist:  &handlers.Wishlist{Repo: wishlist.NewRepo(db)},
		Addresses: &handlers.Addresses{Repo: addresses.NewRepo(db)},
	})

	serve(logger, cfg.Web.Addr, r)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 10 seconds.
func serve(logger *slog.Logger, addr string, handler http.Handler) {
	srv := &http.Server{Addr: addr, Handler: handler}

	go func() {
		logger.Info("listening", "addr", addr)
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
