package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/SalmanuRidwan/Trivia-API/internal/pkg/errors"
)

// CacheRepo реализует repository.CacheRepository поверх Redis
type CacheRepo struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewCacheRepo создает новый репозиторий кеша и возвращает ошибку при проблемах.
// keyPrefix добавляется ко всем ключам, чтобы несколько инстансов могли делить один Redis.
func NewCacheRepo(client redis.UniversalClient, keyPrefix string) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

func (r *CacheRepo) key(k string) string {
	if r.keyPrefix == "" {
		return k
	}
	return r.keyPrefix + ":" + k
}

// SetJSON сохраняет структуру JSON в кеше
func (r *CacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, expiration).Err()
}

// GetJSON получает структуру JSON из кеша
func (r *CacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Ping проверяет доступность Redis
func (r *CacheRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
