package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

// SaveToken сохраняет новую запись токена.
//
// Атомарность относительно конкурентного удаления пользователя обеспечивает
// сам INSERT: внешний ключ user_id -> users(id) проверяется в том же
// операторе, что и вставка. Либо вставка успевает до удаления пользователя
// (и каскад её снимет), либо нарушается FK и возвращается ErrUnknownUser.
func (s *Storage) SaveToken(ctx context.Context, token *models.Token) error {
	const op = "storage.postgres.SaveToken"

	query := `
        INSERT INTO user_tokens(token_hash, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4)
    `

	var expiresAt *time.Time
	if !token.ExpiresAt.IsZero() {
		expiresAt = &token.ExpiresAt
	}

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.UserID,
		token.CreatedAt,
		expiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			case pgerrcode.ForeignKeyViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrUnknownUser)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// TokenByHash находит запись токена по его хэшу.
func (s *Storage) TokenByHash(ctx context.Context, hash string) (*models.Token, error) {
	const op = "storage.postgres.TokenByHash"

	query := `
        SELECT token_hash, user_id, created_at, expires_at
        FROM user_tokens
        WHERE token_hash = $1
    `

	var (
		token     models.Token
		expiresAt *time.Time
	)
	err := s.db.QueryRow(ctx, query, hash).Scan(
		&token.TokenHash,
		&token.UserID,
		&token.CreatedAt,
		&expiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if expiresAt != nil {
		token.ExpiresAt = expiresAt.UTC()
	}

	return &token, nil
}

// DeleteToken удаляет запись токена по хэшу.
// Идемпотентна: отсутствие записи не считается ошибкой.
func (s *Storage) DeleteToken(ctx context.Context, hash string) error {
	const op = "storage.postgres.DeleteToken"

	query := `
        DELETE FROM user_tokens
        WHERE token_hash = $1
    `

	if _, err := s.db.Exec(ctx, query, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteAllForUser удаляет все токены пользователя и возвращает их хэши
// (вызывающая сторона инвалидирует по ним кэш).
func (s *Storage) DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage.postgres.DeleteAllForUser"

	query := `
        DELETE FROM user_tokens
        WHERE user_id = $1
        RETURNING token_hash
    `

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		hashes = append(hashes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return hashes, nil
}

// DeleteExpiredTokens удаляет все просроченные токены.
// Бессрочные записи (expires_at IS NULL) не затрагиваются.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredTokens"

	query := `
        DELETE FROM user_tokens
        WHERE expires_at IS NOT NULL AND expires_at <= $1
    `

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
