package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Axocidue/SportsStore/internal/domains/cart/model"
)

const cartKeyPrefix = "cart:"

// RedisStore persists carts as JSON under cart:<session> with a TTL, so
// abandoned carts expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) StoreInterface {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewCart(), nil
		}
		return nil, fmt.Errorf("get cart %s: %w", sessionID, err)
	}

	cart := model.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}

	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", sessionID, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart %s: %w", sessionID, err)
	}
	return nil
}
