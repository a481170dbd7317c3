package service

// Сквозные тесты когерентности кэша: выпуск и каскад гоняются на реальном
// in-memory-хранилище и кэше-заглушке, без gomock-сценариев.

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memCache — потокобезопасный кэш в памяти, реализует cache.TokenCache.
type memCache struct {
	mu      sync.Mutex
	entries map[string]*cache.Entry
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*cache.Entry)}
}

func (c *memCache) Get(_ context.Context, hash string) (*cache.Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[hash]
	return e, ok, nil
}

func (c *memCache) Set(_ context.Context, hash string, e *cache.Entry, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[hash] = e
	return nil
}

func (c *memCache) Delete(_ context.Context, hashes ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, h := range hashes {
		delete(c.entries, h)
	}
	return nil
}

func (c *memCache) Close() error { return nil }

func (c *memCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// TestIssueToken_RacesPurgeUser_CacheNeverServesDeletedUser —
// выпуск токена, идущий параллельно с каскадным удалением владельца,
// не оставляет в кэше записи, по которой ValidateToken вернул бы
// идентификатор удалённого пользователя. Допустимы ровно два исхода:
// ErrUnknownUser при выпуске либо успешный выпуск с последующим
// ErrInvalidToken на проверке.
func TestIssueToken_RacesPurgeUser_CacheNeverServesDeletedUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for i := 0; i < 200; i++ {
		st := memory.New()
		svc := New(st, testTokensCfg())
		tc := newMemCache()
		svc.SetTokenCache(tc)

		uid := uuid.New()
		require.NoError(t, svc.RegisterUser(ctx, uid))

		type issueResult struct {
			issued *models.IssuedToken
			err    error
		}

		res := make(chan issueResult, 1)
		go func() {
			issued, err := svc.IssueToken(ctx, uid)
			res <- issueResult{issued: issued, err: err}
		}()

		_, err := svc.PurgeUser(ctx, uid)
		require.NoError(t, err)

		r := <-res
		if r.err != nil {
			require.ErrorIs(t, r.err, ErrUnknownUser)
		} else {
			// Выпуск успел до каскада: токен обязан быть снят и из
			// хранилища, и из кэша.
			_, err := svc.ValidateToken(ctx, r.issued.Token)
			require.ErrorIs(t, err, ErrInvalidToken)
		}

		require.Zero(t, tc.size(), "после каскада кэш пуст")
	}
}
