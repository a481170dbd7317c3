// Package cache реализует кэш записей токенов поверх Redis.
//
// Кэш — исключительно ускорение горячего пути ValidateToken; источником
// истины остаётся хранилище. Корректность от кэша не зависит: при отзыве
// и каскадном удалении ключи снимаются до ответа вызывающей стороне,
// а каждая запись несёт собственный TTL.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Entry — данные, которые мы храним в Redis по хэшу токена.
type Entry struct {
	UserID uuid.UUID
	// ExpiresAt — время истечения токена (UTC); zero — бессрочный.
	ExpiresAt time.Time
}

// TokenCache — минимальный контракт кэша токенов.
type TokenCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, hash string) (*Entry, bool, error)
	// Set сохраняет запись с TTL.
	Set(ctx context.Context, hash string, e *Entry, ttl time.Duration) error
	// Delete снимает записи по хэшам (используется при отзыве и каскаде).
	Delete(ctx context.Context, hashes ...string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "tokens:".
func NewRedisCache(redisURL, prefix string) (TokenCache, error) {
	if prefix == "" {
		prefix = "tokens:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(hash string) string { return c.prefix + hash }

// Храним как Redis Hash с полями: uid, exp (unix; 0 — бессрочный).
func (c *redisCache) Get(ctx context.Context, hash string) (*Entry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(hash)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	uid, err := uuid.Parse(m["uid"])
	if err != nil {
		return nil, false, err
	}

	expUnix, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	e := &Entry{UserID: uid}
	if expUnix != 0 {
		e.ExpiresAt = time.Unix(expUnix, 0).UTC()
	}

	return e, true, nil
}

func (c *redisCache) Set(ctx context.Context, hash string, e *Entry, ttl time.Duration) error {
	var expUnix int64
	if !e.ExpiresAt.IsZero() {
		expUnix = e.ExpiresAt.Unix()
	}

	kv := map[string]string{
		"uid": e.UserID.String(),
		"exp": strconv.FormatInt(expUnix, 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(hash), kv)
	pipe.Expire(ctx, c.key(hash), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Delete(ctx context.Context, hashes ...string) error {
	if len(hashes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hashes))
	for _, h := range hashes {
		keys = append(keys, c.key(h))
	}

	return c.rdb.Del(ctx, keys...).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
