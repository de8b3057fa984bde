package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pantrychef/backend/internal/model"
)

const (
	kitchenKey      = "pantrychef:kitchen-state"
	shoppingListKey = "pantrychef:shopping-list"
)

// RedisStore persists session state as JSON blobs in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewRedisStore wraps an existing client as a StateStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// LoadKitchen reads the kitchen snapshot blob.
func (s *RedisStore) LoadKitchen(ctx context.Context) (model.KitchenState, bool, error) {
	var state model.KitchenState
	ok, err := s.load(ctx, kitchenKey, &state)
	return state, ok, err
}

// SaveKitchen writes the kitchen snapshot blob.
func (s *RedisStore) SaveKitchen(ctx context.Context, state model.KitchenState) error {
	return s.save(ctx, kitchenKey, state)
}

// LoadShoppingList reads the shopping list blob.
func (s *RedisStore) LoadShoppingList(ctx context.Context) ([]model.ListItem, bool, error) {
	var items []model.ListItem
	ok, err := s.load(ctx, shoppingListKey, &items)
	return items, ok, err
}

// SaveShoppingList writes the shopping list blob.
func (s *RedisStore) SaveShoppingList(ctx context.Context, items []model.ListItem) error {
	if items == nil {
		items = []model.ListItem{}
	}
	return s.save(ctx, shoppingListKey, items)
}

func (s *RedisStore) load(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
