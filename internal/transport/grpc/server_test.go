package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	tokenv1 "github.com/pribylovaa/go-token-service/gen/go/tokens"
	"github.com/pribylovaa/go-token-service/internal/config"
	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/service"
	"github.com/pribylovaa/go-token-service/internal/storage"
	"github.com/pribylovaa/go-token-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// Файл unit-тестов транспортного слоя (gRPC) для TokenService.
// Все тесты изолированы: для каждого создаётся отдельный bufconn-сервер.

// testCfg — минимальная конфигурация сервиса для тестов транспорта.
func testCfg() config.TokensConfig {
	return config.TokensConfig{
		TTL:      0,
		CacheTTL: 5 * time.Minute,
	}
}

// newSvcWithMock — фабрика сервисного слоя с gomock-хранилищем.
func newSvcWithMock(t *testing.T) (*service.Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	return service.New(st, testCfg()), st, ctrl
}

// startGRPC — поднимает bufconn-gRPC-сервер с переданным сервисом
// и возвращает клиент и функцию очистки.
func startGRPC(t *testing.T, svc *service.Service) (tokenv1.TokenServiceClient, func()) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	tokenv1.RegisterTokenServiceServer(s, NewTokenServer(svc))

	go func() { _ = s.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }

	cc, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	cleanup := func() { _ = cc.Close(); s.Stop() }
	return tokenv1.NewTokenServiceClient(cc), cleanup
}

// TestIssueToken_OK — happy-path выпуска: токен возвращается клиенту,
// в хранилище уходит только хэш.
func TestIssueToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()

	st.EXPECT().UserExists(gomock.Any(), uid).Return(true, nil).Times(2)
	st.EXPECT().SaveToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *models.Token) error {
			require.Equal(t, uid, tok.UserID)
			return nil
		})

	resp, err := client.IssueToken(context.Background(), &tokenv1.IssueTokenRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Zero(t, resp.ExpiresAt, "при TTL=0 токен бессрочный")
}

// TestIssueToken_InvalidUserID — некорректный UUID -> InvalidArgument.
func TestIssueToken_InvalidUserID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	_, err := client.IssueToken(context.Background(), &tokenv1.IssueTokenRequest{UserId: "not-a-uuid"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestIssueToken_UnknownUser — выпуск для несуществующего пользователя -> FailedPrecondition.
func TestIssueToken_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().UserExists(gomock.Any(), uid).Return(false, nil)

	_, err := client.IssueToken(context.Background(), &tokenv1.IssueTokenRequest{UserId: uid.String()})
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

// TestIssueToken_StorageError — внутренняя ошибка без раскрытия деталей.
func TestIssueToken_StorageError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().UserExists(gomock.Any(), uid).Return(false, errors.New("db down: password=secret"))

	_, err := client.IssueToken(context.Background(), &tokenv1.IssueTokenRequest{UserId: uid.String()})
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, status.Convert(err).Message(), "password")
}

// TestValidateToken_OK — действительный токен: {Valid:true, UserId}.
func TestValidateToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()

	st.EXPECT().TokenByHash(gomock.Any(), gomock.Any()).Return(&models.Token{
		UserID:    uid,
		CreatedAt: time.Now().UTC(),
	}, nil)

	resp, err := client.ValidateToken(context.Background(), &tokenv1.ValidateTokenRequest{Token: "plain"})
	require.NoError(t, err)
	require.True(t, resp.Valid)
	require.Equal(t, uid.String(), resp.UserId)
}

// TestValidateToken_Invalid — недействительный токен: {Valid:false} без RPC-ошибки.
func TestValidateToken_Invalid(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	st.EXPECT().TokenByHash(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	resp, err := client.ValidateToken(context.Background(), &tokenv1.ValidateTokenRequest{Token: "bogus"})
	require.NoError(t, err)
	require.False(t, resp.Valid)
	require.Empty(t, resp.UserId)
}

// TestRevokeToken_OK — отзыв идемпотентен, всегда {Ok:true}.
func TestRevokeToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	st.EXPECT().DeleteToken(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	resp, err := client.RevokeToken(context.Background(), &tokenv1.RevokeTokenRequest{Token: "plain"})
	require.NoError(t, err)
	require.True(t, resp.Ok)

	// Повторный отзыв того же токена — тоже успех.
	resp, err = client.RevokeToken(context.Background(), &tokenv1.RevokeTokenRequest{Token: "plain"})
	require.NoError(t, err)
	require.True(t, resp.Ok)
}

// TestRevokeAllForUser_Count — счётчик снятых токенов.
func TestRevokeAllForUser_Count(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().DeleteAllForUser(gomock.Any(), uid).Return([]string{"h1", "h2"}, nil)

	resp, err := client.RevokeAllForUser(context.Background(), &tokenv1.RevokeAllForUserRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Revoked)
}

// TestCreateUser_OK_And_AlreadyExists.
func TestCreateUser_OK_And_AlreadyExists(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	resp, err := client.CreateUser(context.Background(), &tokenv1.CreateUserRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.True(t, resp.Ok)

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	_, err = client.CreateUser(context.Background(), &tokenv1.CreateUserRequest{UserId: uid.String()})
	require.Error(t, err)
	require.Equal(t, codes.AlreadyExists, status.Code(err))
}

// TestDeleteUser_OK — каскад: счётчик отозванных токенов в ответе.
func TestDeleteUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().DeleteUser(gomock.Any(), uid).Return([]string{"h1", "h2", "h3"}, nil)

	resp, err := client.DeleteUser(context.Background(), &tokenv1.DeleteUserRequest{UserId: uid.String()})
	require.NoError(t, err)
	require.EqualValues(t, 3, resp.Revoked)
}

// TestDeleteUser_NotFound — каскад для несуществующего пользователя -> NotFound.
func TestDeleteUser_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	uid := uuid.New()
	st.EXPECT().DeleteUser(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err := client.DeleteUser(context.Background(), &tokenv1.DeleteUserRequest{UserId: uid.String()})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestIssuedToken_RoundTrip_ValidateAfterRevoke — сквозной сценарий через
// транспорт: выпуск -> проверка -> отзыв -> проверка возвращает {Valid:false}.
func TestIssuedToken_RoundTrip_ValidateAfterRevoke(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvcWithMock(t)
	defer ctrl.Finish()
	client, done := startGRPC(t, svc)
	defer done()

	ctx := context.Background()
	uid := uuid.New()

	var saved *models.Token
	st.EXPECT().UserExists(gomock.Any(), uid).Return(true, nil).Times(2)
	st.EXPECT().SaveToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok *models.Token) error {
			cp := *tok
			saved = &cp
			return nil
		})

	issued, err := client.IssueToken(ctx, &tokenv1.IssueTokenRequest{UserId: uid.String()})
	require.NoError(t, err)

	// Пока запись есть — токен действителен.
	st.EXPECT().TokenByHash(gomock.Any(), saved.TokenHash).Return(saved, nil)
	v, err := client.ValidateToken(ctx, &tokenv1.ValidateTokenRequest{Token: issued.Token})
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, uid.String(), v.UserId)

	// Отзыв снимает запись.
	st.EXPECT().DeleteToken(gomock.Any(), saved.TokenHash).Return(nil)
	_, err = client.RevokeToken(ctx, &tokenv1.RevokeTokenRequest{Token: issued.Token})
	require.NoError(t, err)

	// После отзыва — {Valid:false}.
	st.EXPECT().TokenByHash(gomock.Any(), saved.TokenHash).Return(nil, storage.ErrNotFound)
	v, err = client.ValidateToken(ctx, &tokenv1.ValidateTokenRequest{Token: issued.Token})
	require.NoError(t, err)
	require.False(t, v.Valid)
}
