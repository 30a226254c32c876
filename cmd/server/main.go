package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/minhvu/storefront-cart/internal/adapter/catalog"
	"github.com/minhvu/storefront-cart/internal/adapter/handler"
	"github.com/minhvu/storefront-cart/internal/adapter/notify"
	"github.com/minhvu/storefront-cart/internal/adapter/storage"
	"github.com/minhvu/storefront-cart/internal/config"
	"github.com/minhvu/storefront-cart/internal/core/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis", "addr", cfg.RedisAddr)

	// Initialize adapters
	cartRepo := storage.NewRedisAdapter(rdb, cfg.CartKey)
	catalogGateway := catalog.NewHTTPGateway(cfg.CatalogURL, cfg.CatalogTimeout)
	notifier := notify.NewChannelNotifier(cfg.NotifyBuffer, logger)

	// Initialize service and restore the persisted cart
	cartService := service.NewCartService(catalogGateway, cartRepo, notifier, logger)
	cartService.Restore(ctx)
	logger.Info("cart restored", "entries", len(cartService.Items()))

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(cartService, notifier)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/cart", httpHandler.GetCart)
	mux.HandleFunc("/api/cart/items", httpHandler.AddItem)
	mux.HandleFunc("/api/cart/items/", httpHandler.CartItem)
	mux.HandleFunc("/api/notifications", httpHandler.Notifications)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("HTTP server stopped")

	rdb.Close()
	logger.Info("connections closed")
}
