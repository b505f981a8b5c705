package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"pharmacy-storefront/internal/cart"
	"pharmacy-storefront/internal/catalog"
	"pharmacy-storefront/internal/checkout"
	"pharmacy-storefront/internal/config"
	"pharmacy-storefront/internal/geo"
	"pharmacy-storefront/internal/httpserver"
	"pharmacy-storefront/internal/order"
	"pharmacy-storefront/internal/storage"
	"pharmacy-storefront/internal/submit"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded with %d products", cat.Len())

	store, cleanup, err := newCartStorage(ctx, cfg)
	if err != nil {
		logger.Fatalf("init cart storage (%s): %v", cfg.CartStorage, err)
	}
	defer cleanup()

	cartStore := cart.New(ctx, cat, store, logger)

	var locator geo.Locator = geo.NoLocation{}
	if cfg.LocationURL != "" {
		locator = geo.NewAgent(cfg.LocationURL, cfg.LocationTimeout, logger)
	}

	builder := order.NewBuilder(cfg.DeliveryFee)
	sender := submit.New(cfg.OrdersURL, cfg.SubmitTimeout, logger)
	checkoutSvc := checkout.New(cartStore, builder, locator, sender, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  cat,
		Cart:     cartStore,
		Checkout: checkoutSvc,
		Storage:  store,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func newCartStorage(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.CartStorage {
	case "memory":
		return storage.NewMemory(), func() {}, nil
	case "file":
		return storage.NewFile(cfg.CartFile), func() {}, nil
	case "postgres":
		pool, err := storage.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgres(pool, storage.CartKey), pool.Close, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return storage.NewRedis(client, storage.CartKey), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart storage %q", cfg.CartStorage)
	}
}
