// Command catalogd is a local stand-in for the remote catalog/stock service.
// It serves the two endpoints the cart gateway consumes from MySQL-backed
// products and stock tables, and can seed development data.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/minhvu/storefront-cart/internal/adapter/handler"
	"github.com/minhvu/storefront-cart/internal/adapter/storage"
	"github.com/minhvu/storefront-cart/internal/config"
	"github.com/minhvu/storefront-cart/internal/core/domain"
)

func main() {
	seed := flag.Bool("seed", false, "seed development products before serving")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("failed to connect mysql", "error", err)
		os.Exit(1)
	}
	db.SetMaxOpenConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping mysql", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to mysql")

	store := storage.NewMySQLAdapter(db)

	if *seed {
		if err := seedProducts(ctx, store); err != nil {
			logger.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		logger.Info("seeded development products")
	}

	catalogHandler := handler.NewCatalogHandler(store, logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/products/", catalogHandler.GetProduct)
	mux.HandleFunc("/stock/", catalogHandler.GetStock)

	httpServer := &http.Server{
		Addr:    cfg.CatalogAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("catalog server listening", "addr", cfg.CatalogAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("catalog server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)

	db.Close()
	logger.Info("stopped")
}

func seedProducts(ctx context.Context, store *storage.MySQLAdapter) error {
	products := []struct {
		product domain.Product
		stock   int
	}{
		{domain.Product{ID: 1, Title: "Trail Running Shoes", Price: 179.9, Image: "https://cdn.example.com/img/trail-running.jpg"}, 5},
		{domain.Product{ID: 2, Title: "Canvas Sneakers", Price: 139.9, Image: "https://cdn.example.com/img/canvas-sneakers.jpg"}, 8},
		{domain.Product{ID: 3, Title: "Leather Boots", Price: 219.9, Image: "https://cdn.example.com/img/leather-boots.jpg"}, 3},
		{domain.Product{ID: 4, Title: "Slip-on Loafers", Price: 159.9, Image: "https://cdn.example.com/img/slip-on.jpg"}, 0},
	}

	for _, p := range products {
		if err := store.UpsertProduct(ctx, p.product, p.stock); err != nil {
			return err
		}
	}
	return nil
}
