package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/internal/config"
)

// Store implements session.Store on Redis. Every key carries the session TTL
// so stored data never outlives the browser session it belongs to.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewStore connects to Redis and verifies the connection.
func NewStore(ctx context.Context, cfg *config.Redis, log *zap.Logger) (*Store, error) {
	log.Info("Connecting to Redis",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB))

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Info("Redis connection established")

	return &Store{
		client: client,
		ttl:    time.Duration(cfg.SessionTTLMin) * time.Minute,
		log:    log,
	}, nil
}

// Get returns the value under key for the session.
func (s *Store) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.storageKey(sessionID, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key: %w", err)
	}
	return v, true, nil
}

// Set writes the value under key, overwriting any existing value and
// refreshing the session TTL.
func (s *Store) Set(ctx context.Context, sessionID, key, value string) error {
	if err := s.client.Set(ctx, s.storageKey(sessionID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session key: %w", err)
	}
	return nil
}

// SetIfAbsent writes the value only when the key is empty.
func (s *Store) SetIfAbsent(ctx context.Context, sessionID, key, value string) (bool, error) {
	stored, err := s.client.SetNX(ctx, s.storageKey(sessionID, key), value, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to write session key: %w", err)
	}
	return stored, nil
}

// GetDelete reads and removes the value under key atomically via GETDEL.
func (s *Store) GetDelete(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := s.client.GetDel(ctx, s.storageKey(sessionID, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to take session key: %w", err)
	}
	return v, true, nil
}

// Ping checks that Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	s.log.Info("Closing Redis connection")
	return s.client.Close()
}

func (s *Store) storageKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}
