package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

// RedisAdapter stores the serialized cart in a single named slot.
type RedisAdapter struct {
	client *redis.Client
	key    string
}

func NewRedisAdapter(client *redis.Client, key string) *RedisAdapter {
	return &RedisAdapter{client: client, key: key}
}

// Load reads the slot. A missing key or a value that fails to parse is
// treated as no data and yields an empty cart.
func (r *RedisAdapter) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return domain.Cart{}, nil
	}
	return cart, nil
}

// Save overwrites the slot with the JSON-serialized full cart.
func (r *RedisAdapter) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, raw, 0).Err()
}
