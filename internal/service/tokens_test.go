package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/config"
	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
	"github.com/pribylovaa/go-token-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testTokensCfg() config.TokensConfig {
	return config.TokensConfig{
		TTL:             0,
		JanitorInterval: 30 * time.Minute,
		CacheTTL:        5 * time.Minute,
	}
}

func newServiceWithMock(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSt := mocks.NewMockStorage(ctrl)
	svc := New(mockSt, testTokensCfg())
	return svc, mockSt, ctrl
}

func TestIssueToken_OK(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	var savedHash string
	st.EXPECT().UserExists(ctx, uid).Return(true, nil)
	st.EXPECT().SaveToken(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *models.Token) error {
			require.Equal(t, uid, tok.UserID)
			require.True(t, tok.ExpiresAt.IsZero(), "при TTL=0 токен бессрочный")
			savedHash = tok.TokenHash
			return nil
		})
	st.EXPECT().UserExists(ctx, uid).Return(true, nil)

	issued, err := svc.IssueToken(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, uid, issued.UserID)
	require.True(t, issued.ExpiresAt.IsZero())

	// Секрет — base64url от 32 байт; в хранилище уходит только его хэш.
	raw, err := base64.RawURLEncoding.DecodeString(issued.Token)
	require.NoError(t, err)
	require.Len(t, raw, 32)
	require.Equal(t, hashToken(issued.Token), savedHash)
	require.NotEqual(t, issued.Token, savedHash)
}

func TestIssueToken_WithTTL_SetsExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStorage(ctrl)
	cfg := testTokensCfg()
	cfg.TTL = time.Hour
	svc := New(st, cfg)

	ctx := context.Background()
	uid := uuid.New()
	before := time.Now().UTC()

	st.EXPECT().UserExists(ctx, uid).Return(true, nil).Times(2)
	st.EXPECT().SaveToken(ctx, gomock.Any()).Return(nil)

	issued, err := svc.IssueToken(ctx, uid)
	require.NoError(t, err)
	require.False(t, issued.ExpiresAt.IsZero())
	require.WithinDuration(t, before.Add(time.Hour), issued.ExpiresAt, 2*time.Second)
}

func TestIssueToken_UnknownUser(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().UserExists(ctx, uid).Return(false, nil)

	_, err := svc.IssueToken(ctx, uid)
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestIssueToken_CollisionRetry_ThenOK(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().UserExists(ctx, uid).Return(true, nil)
	// Первая попытка — коллизия хэша, вторая — успех.
	first := st.EXPECT().SaveToken(ctx, gomock.Any()).Return(storage.ErrAlreadyExists)
	st.EXPECT().SaveToken(ctx, gomock.Any()).Return(nil).After(first)
	st.EXPECT().UserExists(ctx, uid).Return(true, nil)

	issued, err := svc.IssueToken(ctx, uid)
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
}

func TestIssueToken_CollisionExhausted(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().UserExists(ctx, uid).Return(true, nil)
	st.EXPECT().SaveToken(ctx, gomock.Any()).Return(storage.ErrAlreadyExists).Times(5)

	_, err := svc.IssueToken(ctx, uid)
	require.ErrorIs(t, err, ErrTokenCollision)
}

func TestIssueToken_UserDeletedBetweenCheckAndInsert(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().UserExists(ctx, uid).Return(true, nil)
	st.EXPECT().SaveToken(ctx, gomock.Any()).Return(storage.ErrUnknownUser)

	_, err := svc.IssueToken(ctx, uid)
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestIssueToken_UserDeletedAfterInsert_CleansUp(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	var savedHash string
	st.EXPECT().UserExists(ctx, uid).Return(true, nil)
	st.EXPECT().SaveToken(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *models.Token) error {
			savedHash = tok.TokenHash
			return nil
		})
	// Каскад прошёл между вставкой и повторной проверкой.
	st.EXPECT().UserExists(ctx, uid).Return(false, nil)
	st.EXPECT().DeleteToken(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, hash string) error {
			require.Equal(t, savedHash, hash)
			return nil
		})

	_, err := svc.IssueToken(ctx, uid)
	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestIssueToken_EntropyUnavailable(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	orig := randRead
	randRead = func(b []byte) (int, error) {
		return 0, errors.New("rng closed")
	}
	defer func() { randRead = orig }()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().UserExists(ctx, uid).Return(true, nil)

	_, err := svc.IssueToken(ctx, uid)
	require.ErrorIs(t, err, ErrEntropyUnavailable)
}

func TestValidateToken_OK(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()
	plain := "plain-token"

	st.EXPECT().TokenByHash(ctx, hashToken(plain)).Return(&models.Token{
		TokenHash: hashToken(plain),
		UserID:    uid,
		CreatedAt: time.Now().UTC(),
	}, nil)

	got, err := svc.ValidateToken(ctx, plain)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestValidateToken_UnknownToken(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().TokenByHash(ctx, gomock.Any()).Return(nil, storage.ErrNotFound)

	_, err := svc.ValidateToken(ctx, "never-issued")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	plain := "expired-token"

	st.EXPECT().TokenByHash(ctx, hashToken(plain)).Return(&models.Token{
		TokenHash: hashToken(plain),
		UserID:    uuid.New(),
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}, nil)

	_, err := svc.ValidateToken(ctx, plain)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RevokedIndistinguishableFromUnknown(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().TokenByHash(ctx, gomock.Any()).Return(nil, storage.ErrNotFound).Times(2)

	_, errUnknown := svc.ValidateToken(ctx, "never-issued")
	_, errRevoked := svc.ValidateToken(ctx, "was-revoked")

	// Вызывающая сторона не может отличить отозванный токен от никогда
	// не существовавшего.
	require.ErrorIs(t, errUnknown, ErrInvalidToken)
	require.ErrorIs(t, errRevoked, ErrInvalidToken)
}

func TestValidateToken_CacheHit_SkipsStorage(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	tc := mocks.NewMockTokenCache(ctrl)
	svc.SetTokenCache(tc)

	ctx := context.Background()
	uid := uuid.New()
	plain := "cached-token"

	tc.EXPECT().Get(ctx, hashToken(plain)).Return(&cache.Entry{UserID: uid}, true, nil)
	// TokenByHash не вызывается: ожидание на хранилище отсутствует.

	got, err := svc.ValidateToken(ctx, plain)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestValidateToken_CacheMiss_FallsThrough(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	tc := mocks.NewMockTokenCache(ctrl)
	svc.SetTokenCache(tc)

	ctx := context.Background()
	uid := uuid.New()
	plain := "uncached-token"

	tc.EXPECT().Get(ctx, hashToken(plain)).Return(nil, false, nil)
	st.EXPECT().TokenByHash(ctx, hashToken(plain)).Return(&models.Token{
		TokenHash: hashToken(plain),
		UserID:    uid,
		CreatedAt: time.Now().UTC(),
	}, nil)

	got, err := svc.ValidateToken(ctx, plain)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestValidateToken_CacheError_FallsThrough(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	tc := mocks.NewMockTokenCache(ctrl)
	svc.SetTokenCache(tc)

	ctx := context.Background()
	uid := uuid.New()
	plain := "token"

	tc.EXPECT().Get(ctx, hashToken(plain)).Return(nil, false, errors.New("redis down"))
	st.EXPECT().TokenByHash(ctx, hashToken(plain)).Return(&models.Token{
		TokenHash: hashToken(plain),
		UserID:    uid,
		CreatedAt: time.Now().UTC(),
	}, nil)

	got, err := svc.ValidateToken(ctx, plain)
	require.NoError(t, err)
	require.Equal(t, uid, got)
}

func TestValidateToken_CacheHit_Expired(t *testing.T) {
	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	tc := mocks.NewMockTokenCache(ctrl)
	svc.SetTokenCache(tc)

	ctx := context.Background()
	plain := "stale-token"

	tc.EXPECT().Get(ctx, hashToken(plain)).Return(&cache.Entry{
		UserID:    uuid.New(),
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}, true, nil)

	_, err := svc.ValidateToken(ctx, plain)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeToken_Idempotent(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	plain := "to-revoke"

	// Отзыв несуществующего токена — тоже успех.
	st.EXPECT().DeleteToken(ctx, hashToken(plain)).Return(nil).Times(2)

	require.NoError(t, svc.RevokeToken(ctx, plain))
	require.NoError(t, svc.RevokeToken(ctx, plain))
}

func TestRevokeToken_PurgesCacheBeforeStorage(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	tc := mocks.NewMockTokenCache(ctrl)
	svc.SetTokenCache(tc)

	ctx := context.Background()
	plain := "cached-revoke"
	hash := hashToken(plain)

	// Кэш снимается до удаления записи в хранилище.
	gomock.InOrder(
		tc.EXPECT().Delete(ctx, hash).Return(nil),
		st.EXPECT().DeleteToken(ctx, hash).Return(nil),
	)

	require.NoError(t, svc.RevokeToken(ctx, plain))
}

func TestRevokeAllForUser_Count(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().DeleteAllForUser(ctx, uid).Return([]string{"h1", "h2", "h3"}, nil)

	n, err := svc.RevokeAllForUser(ctx, uid)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}

func TestRevokeAllForUser_NoTokens(t *testing.T) {
	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	ctx := context.Background()
	uid := uuid.New()

	st.EXPECT().DeleteAllForUser(ctx, uid).Return(nil, nil)

	n, err := svc.RevokeAllForUser(ctx, uid)
	require.NoError(t, err)
	require.Zero(t, n)
}
