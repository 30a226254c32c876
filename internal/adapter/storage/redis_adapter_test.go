package storage

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestCartRoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:cart:roundtrip")
	client.Del(ctx, "test:cart:roundtrip")

	cart := domain.Cart{
		{Product: domain.Product{ID: 1, Title: "Trail Running Shoes", Price: 179.9, Image: "img/1.jpg"}, Amount: 2},
		{Product: domain.Product{ID: 3, Title: "Leather Boots", Price: 219.9, Image: "img/3.jpg"}, Amount: 1},
	}

	if err := adapter.Save(ctx, cart); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cart) {
		t.Errorf("round-trip mismatch:\n saved  %v\n loaded %v", cart, loaded)
	}
}

func TestLoad_MissingSlot(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:cart:missing")
	client.Del(ctx, "test:cart:missing")

	cart, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(cart))
	}
}

func TestLoad_CorruptData(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:cart:corrupt")
	client.Set(ctx, "test:cart:corrupt", "{not json[", 0)

	cart, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("corrupt data must load as empty, got error: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(cart))
	}
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client, "test:cart:overwrite")
	client.Del(ctx, "test:cart:overwrite")

	first := domain.Cart{{Product: domain.Product{ID: 1}, Amount: 1}}
	second := domain.Cart{{Product: domain.Product{ID: 2}, Amount: 4}}

	if err := adapter.Save(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := adapter.Save(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded, second) {
		t.Errorf("expected latest cart %v, got %v", second, loaded)
	}
}
