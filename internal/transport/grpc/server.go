// transport/grpc содержит реализацию gRPC-эндпоинтов TokenService.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в gRPC.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - некорректный user_id -> codes.InvalidArgument;
//   - ErrUnknownUser -> codes.FailedPrecondition;
//   - ErrUserExists -> codes.AlreadyExists;
//   - ErrUserNotFound -> codes.NotFound;
//   - ErrEntropyUnavailable -> codes.Unavailable;
//   - иные ошибки -> codes.Internal c единым безопасным сообщением;
//   - ValidateToken при невалидном токене НЕ возвращает RPC-ошибку, а
//     отдаёт {Valid:false} (контракт эндпоинта).
//
// Безопасность:
//   - Сами токены не логируются и не попадают в тексты ошибок;
//   - Для codes.Internal наружу не утекают детали внутренних ошибок; подробности
//     должны попадать в логи через интерсепторы на уровне сервера.
package grpc

import (
	"context"
	"errors"

	tokenv1 "github.com/pribylovaa/go-token-service/gen/go/tokens"
	"github.com/pribylovaa/go-token-service/internal/service"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TokenServer struct {
	tokenv1.UnimplementedTokenServiceServer
	service *service.Service
}

// NewTokenServer создаёт gRPC-сервер токенов поверх сервисного слоя.
func NewTokenServer(service *service.Service) *TokenServer {
	return &TokenServer{service: service}
}

// IssueToken выпускает новый токен для существующего пользователя.
// Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - ErrUnknownUser -> FailedPrecondition;
//   - ErrEntropyUnavailable -> Unavailable;
//   - прочее -> Internal (без раскрытия деталей).
func (s *TokenServer) IssueToken(ctx context.Context, req *tokenv1.IssueTokenRequest) (*tokenv1.IssueTokenResponse, error) {
	const op = "transport/grpc/server/IssueToken"

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	issued, err := s.service.IssueToken(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
		}

		if errors.Is(err, service.ErrEntropyUnavailable) {
			return nil, status.Errorf(codes.Unavailable, "%s: entropy unavailable", op)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	resp := &tokenv1.IssueTokenResponse{
		Token: issued.Token,
	}
	if !issued.ExpiresAt.IsZero() {
		resp.ExpiresAt = issued.ExpiresAt.Unix()
	}

	return resp, nil
}

// ValidateToken проверяет токен.
// Контракт: при недействительном токене RPC-ошибку не возвращает —
// отдаёт {Valid:false}. При прочих ошибках — Internal.
func (s *TokenServer) ValidateToken(ctx context.Context, req *tokenv1.ValidateTokenRequest) (*tokenv1.ValidateTokenResponse, error) {
	uid, err := s.service.ValidateToken(ctx, req.GetToken())
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return &tokenv1.ValidateTokenResponse{Valid: false}, nil
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tokenv1.ValidateTokenResponse{
		Valid:  true,
		UserId: uid.String(),
	}, nil
}

// RevokeToken отзывает токен.
// Идемпотентна: повторный отзыв и отзыв несуществующего токена успешны.
// Маппинг ошибок: прочее -> Internal.
func (s *TokenServer) RevokeToken(ctx context.Context, req *tokenv1.RevokeTokenRequest) (*tokenv1.RevokeTokenResponse, error) {
	if err := s.service.RevokeToken(ctx, req.GetToken()); err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tokenv1.RevokeTokenResponse{Ok: true}, nil
}

// RevokeAllForUser отзывает все токены пользователя.
// Для пользователя без токенов возвращает нулевой счётчик без ошибки.
// Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - прочее -> Internal.
func (s *TokenServer) RevokeAllForUser(ctx context.Context, req *tokenv1.RevokeAllForUserRequest) (*tokenv1.RevokeAllForUserResponse, error) {
	const op = "transport/grpc/server/RevokeAllForUser"

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	revoked, err := s.service.RevokeAllForUser(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tokenv1.RevokeAllForUserResponse{Revoked: revoked}, nil
}

// CreateUser фиксирует существование пользователя (синхронизация с внешним
// реестром). Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - ErrUserExists -> AlreadyExists;
//   - прочее -> Internal.
func (s *TokenServer) CreateUser(ctx context.Context, req *tokenv1.CreateUserRequest) (*tokenv1.CreateUserResponse, error) {
	const op = "transport/grpc/server/CreateUser"

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	if err := s.service.RegisterUser(ctx, userID); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return nil, status.Errorf(codes.AlreadyExists, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tokenv1.CreateUserResponse{Ok: true}, nil
}

// DeleteUser удаляет пользователя и каскадно отзывает все его токены.
// Маппинг ошибок:
//   - некорректный user_id -> InvalidArgument;
//   - ErrUserNotFound -> NotFound;
//   - прочее -> Internal.
func (s *TokenServer) DeleteUser(ctx context.Context, req *tokenv1.DeleteUserRequest) (*tokenv1.DeleteUserResponse, error) {
	const op = "transport/grpc/server/DeleteUser"

	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s: invalid user_id", op)
	}

	revoked, err := s.service.PurgeUser(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, status.Errorf(codes.NotFound, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &tokenv1.DeleteUserResponse{Revoked: revoked}, nil
}
