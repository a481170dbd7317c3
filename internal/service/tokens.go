package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/pkg/log"
	"github.com/pribylovaa/go-token-service/internal/pkg/redact"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// randRead — шов для тестирования отказа источника энтропии.
var randRead = rand.Read

// hashToken вычисляет ключ хранения токена (sha256 → base64url).
// Сам токен никогда не сохраняется и не логируется.
func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// generateToken выпускает новый секрет: 32 байта из криптографического
// источника случайности, base64url (256 бит энтропии).
func generateToken() (string, error) {
	const op = "service.tokens.generateToken"

	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrEntropyUnavailable, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IssueToken выпускает новый токен для пользователя.
//
// Последовательность: проверка существования пользователя → генерация
// секрета → сохранение хэша. Коллизия хэша (storage.ErrAlreadyExists)
// повторяется с новым секретом до maxAttempts, затем ErrTokenCollision.
// Секрет в открытом виде возвращается только вызывающей стороне.
func (s *Service) IssueToken(ctx context.Context, userID uuid.UUID) (*models.IssuedToken, error) {
	const (
		op          = "service.tokens.IssueToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	exists, err := s.storage.UserExists(ctx, userID)
	if err != nil {
		lg.Error("user_exists_check_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownUser)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		plain, err := generateToken()
		if err != nil {
			lg.Error("token_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		hash := hashToken(plain)

		now := time.Now().UTC()
		token := &models.Token{
			TokenHash: hash,
			UserID:    userID,
			CreatedAt: now,
		}
		if s.cfg.TTL > 0 {
			token.ExpiresAt = now.Add(s.cfg.TTL)
		}

		if err := s.storage.SaveToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			if errors.Is(err, storage.ErrUnknownUser) {
				// Пользователь удалён между проверкой и вставкой.
				return nil, fmt.Errorf("%s: %w", op, ErrUnknownUser)
			}

			lg.Error("save_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		s.cacheIssued(ctx, token)

		// Повторная проверка владельца: закрывает гонку, в которой каскадное
		// удаление пользователя прошло между вставкой и записью в кэш.
		exists, err = s.storage.UserExists(ctx, userID)
		if err != nil || !exists {
			_ = s.storage.DeleteToken(ctx, hash)
			s.cachePurge(ctx, hash)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			return nil, fmt.Errorf("%s: %w", op, ErrUnknownUser)
		}

		return &models.IssuedToken{
			Token:     plain,
			UserID:    userID,
			ExpiresAt: token.ExpiresAt,
		}, nil
	}

	lg.Error("token_collision_exceeded",
		slog.String("op", op),
	)

	return nil, fmt.Errorf("%s: %w", op, ErrTokenCollision)
}

// ValidateToken проверяет токен и возвращает идентификатор владельца.
//
// Любая причина недействительности (не выпускался, отозван, просрочен,
// владелец удалён) неотличима: всегда ErrInvalidToken.
func (s *Service) ValidateToken(ctx context.Context, plain string) (uuid.UUID, error) {
	const op = "service.tokens.ValidateToken"

	lg := log.From(ctx)

	hash := hashToken(plain)

	if s.tcache != nil {
		entry, ok, err := s.tcache.Get(ctx, hash)
		if err != nil {
			// Кэш — только ускорение: при сбое идём в хранилище.
			lg.Warn("token_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if ok {
			if !entry.ExpiresAt.IsZero() && !time.Now().UTC().Before(entry.ExpiresAt) {
				return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return entry.UserID, nil
		}
	}

	token, err := s.storage.TokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("token_lookup_not_found",
				slog.String("op", op),
				slog.String("hash", redact.Hash(hash)),
			)
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		lg.Error("token_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if token.Expired(time.Now().UTC()) {
		lg.Warn("token_expired",
			slog.String("op", op),
			slog.String("user_id", token.UserID.String()),
		)
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return token.UserID, nil
}

// RevokeToken отзывает токен (logout).
//
// Идемпотентна: повторный отзыв и отзыв несуществующего токена успешны
// и не меняют наблюдаемое состояние. Кэш снимается до удаления записи,
// чтобы после возврата токен нигде не считался действительным.
func (s *Service) RevokeToken(ctx context.Context, plain string) error {
	const op = "service.tokens.RevokeToken"

	lg := log.From(ctx)

	hash := hashToken(plain)

	s.cachePurge(ctx, hash)

	if err := s.storage.DeleteToken(ctx, hash); err != nil {
		lg.Error("delete_token_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RevokeAllForUser отзывает все токены пользователя (например, при смене
// пароля во внешнем реестре); возвращает количество снятых токенов.
// Для пользователя без токенов — no-op с нулевым счётчиком.
func (s *Service) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "service.tokens.RevokeAllForUser"

	lg := log.From(ctx)

	hashes, err := s.storage.DeleteAllForUser(ctx, userID)
	if err != nil {
		lg.Error("delete_all_for_user_failed",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
			slog.String("err", err.Error()),
		)
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.cachePurge(ctx, hashes...)

	return int64(len(hashes)), nil
}

// cacheIssued кладёт свежевыпущенный токен в кэш (best-effort).
// Запись в кэш выполняется только при выпуске: повторное наполнение из
// ValidateToken могло бы вернуть в кэш уже отозванную запись.
func (s *Service) cacheIssued(ctx context.Context, token *models.Token) {
	if s.tcache == nil {
		return
	}

	ttl := s.cfg.CacheTTL
	if !token.ExpiresAt.IsZero() {
		if remaining := time.Until(token.ExpiresAt); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return
	}

	entry := &cache.Entry{
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt,
	}

	if err := s.tcache.Set(ctx, token.TokenHash, entry, ttl); err != nil {
		log.From(ctx).Warn("token_cache_set_failed",
			slog.String("hash", redact.Hash(token.TokenHash)),
			slog.String("err", err.Error()),
		)
	}
}

// cachePurge снимает записи из кэша (best-effort).
func (s *Service) cachePurge(ctx context.Context, hashes ...string) {
	if s.tcache == nil || len(hashes) == 0 {
		return
	}

	if err := s.tcache.Delete(ctx, hashes...); err != nil {
		log.From(ctx).Warn("token_cache_purge_failed",
			slog.Int("count", len(hashes)),
			slog.String("err", err.Error()),
		)
	}
}
