package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// SaveUser фиксирует существование пользователя (проекция внешнего реестра).
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, created_at)
		VALUES ($1, $2)
	`

	_, err := s.db.Exec(ctx, query, user.ID, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserExists сообщает, существует ли пользователь.
func (s *Storage) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "storage.postgres.UserExists"

	query := `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`

	var exists bool
	if err := s.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// DeleteUser удаляет пользователя и каскадно все его токены в одной транзакции.
//
// Схема и так содержит ON DELETE CASCADE — каскад гарантирован на уровне БД
// при любом пути удаления. Явный DELETE ... RETURNING здесь нужен, чтобы
// вернуть хэши снятых токенов для инвалидирования кэша.
//
// Возвращаемый набор хэшей полон: строка пользователя сначала блокируется
// FOR UPDATE, что конфликтует с KEY SHARE FK-проверки при вставке токена.
// Параллельный INSERT либо коммитится до выборки хэшей (хэш попадает в
// набор), либо ждёт коммита и получает нарушение FK (ErrUnknownUser).
func (s *Storage) DeleteUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage.postgres.DeleteUser"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lockUser = `
		SELECT id
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, lockUser, userID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	const delTokens = `
		DELETE FROM user_tokens
		WHERE user_id = $1
		RETURNING token_hash
	`

	rows, err := tx.Query(ctx, delTokens, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		hashes = append(hashes, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	const delUser = `
		DELETE FROM users
		WHERE id = $1
	`

	// Строка заблокирована выше — удаление не может не найти её.
	if _, err := tx.Exec(ctx, delUser, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hashes, nil
}
