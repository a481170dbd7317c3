package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/pkg/log"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// RegisterUser фиксирует существование пользователя в проекции реестра.
// Жизненный цикл пользователя (учётные данные, аутентификация) остаётся
// во внешнем реестре — сюда попадает только факт существования.
func (s *Service) RegisterUser(ctx context.Context, userID uuid.UUID) error {
	const op = "service.users.RegisterUser"

	user := &models.User{
		ID:        userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		log.From(ctx).Error("save_user_failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PurgeUser — точка входа каскада: внешний реестр сообщает об удалении
// пользователя, сервис атомарно снимает его запись и все его токены.
// Возвращает количество отозванных токенов.
//
// После возврата ни один токен удалённого пользователя не валиден:
// хранилище выполняет каскад одной атомарной единицей, затем по
// возвращённым хэшам инвалидируется кэш.
func (s *Service) PurgeUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "service.users.PurgeUser"

	lg := log.From(ctx)

	hashes, err := s.storage.DeleteUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("delete_user_failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.cachePurge(ctx, hashes...)

	lg.Info("user_purged",
		slog.String("user_id", userID.String()),
		slog.Int("tokens_revoked", len(hashes)),
	)

	return int64(len(hashes)), nil
}
