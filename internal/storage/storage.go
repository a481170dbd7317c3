package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/токен).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (token_hash/id пользователя).
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownUser — токен ссылается на несуществующего пользователя
	// (нарушение внешнего ключа или проверка существования под локом).
	ErrUnknownUser = errors.New("unknown user")
)

// TokenStorage выполняет операции над записями токенов.
//
// Контракт атомарности (см. также UserStorage.DeleteUser):
// SaveToken выполняет проверку существования пользователя и вставку записи
// как один неделимый шаг относительно конкурентного удаления пользователя —
// либо вставка успевает и последующий каскад её снимет, либо вставка
// завершается ErrUnknownUser. Запись с "осиротевшим" user_id не наблюдаема
// ни одним читателем даже кратковременно.
type TokenStorage interface {
	// SaveToken сохраняет новую запись токена.
	// ErrAlreadyExists — коллизия token_hash; ErrUnknownUser — владелец не существует.
	SaveToken(ctx context.Context, token *models.Token) error
	// TokenByHash находит запись по хэшу токена; ErrNotFound, если записи нет.
	TokenByHash(ctx context.Context, hash string) (*models.Token, error)
	// DeleteToken удаляет запись по хэшу. Идемпотентна: отсутствие записи — не ошибка.
	DeleteToken(ctx context.Context, hash string) error
	// DeleteAllForUser удаляет все токены пользователя и возвращает хэши удалённых записей.
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	// DeleteExpiredTokens удаляет все токены с expires_at <= now (TTL-расширение).
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

// UserStorage выполняет операции над проекцией реестра пользователей.
type UserStorage interface {
	// SaveUser фиксирует существование пользователя.
	// ErrAlreadyExists — пользователь уже зарегистрирован.
	SaveUser(ctx context.Context, user *models.User) error
	// UserExists сообщает, существует ли пользователь.
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	// DeleteUser удаляет пользователя и каскадно все его токены в одной
	// атомарной единице; возвращает хэши удалённых токенов.
	// ErrNotFound, если пользователя нет.
	DeleteUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// Storage задаёт контракт работы с хранилищем.
type Storage interface {
	TokenStorage
	UserStorage
	Close()
}
