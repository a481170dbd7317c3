// Package memory реализует хранилище токенов в памяти процесса.
//
// Предназначено для локального окружения и тестов: семантика идентична
// postgres-реализации, включая каскадное удаление токенов вместе с
// пользователем. Последовательность "проверить пользователя + вставить
// запись" и "удалить пользователя + снять все его токены" выполняются
// под мьютексом, привязанным к конкретному пользователю, поэтому запись
// с user_id удалённого пользователя не наблюдаема ни в какой момент.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-token-service/internal/models"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

type Storage struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]models.User
	tokens map[string]models.Token
	byUser map[uuid.UUID]map[string]struct{}

	// userLocks сериализует мутации, затрагивающие одного пользователя
	// (вставка токена против каскадного удаления).
	userLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// New создаёт пустое in-memory хранилище.
func New() *Storage {
	return &Storage{
		users:  make(map[uuid.UUID]models.User),
		tokens: make(map[string]models.Token),
		byUser: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (s *Storage) userLock(userID uuid.UUID) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SaveToken сохраняет новую запись токена.
// Проверка существования пользователя и вставка выполняются под локом
// пользователя: конкурентный DeleteUser либо дождётся вставки (и снимет
// токен каскадом), либо завершится раньше — тогда вернётся ErrUnknownUser.
func (s *Storage) SaveToken(ctx context.Context, token *models.Token) error {
	const op = "storage.memory.SaveToken"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lock := s.userLock(token.UserID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[token.UserID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrUnknownUser)
	}

	if _, ok := s.tokens[token.TokenHash]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.tokens[token.TokenHash] = *token
	if s.byUser[token.UserID] == nil {
		s.byUser[token.UserID] = make(map[string]struct{})
	}
	s.byUser[token.UserID][token.TokenHash] = struct{}{}

	return nil
}

// TokenByHash находит запись токена по его хэшу.
func (s *Storage) TokenByHash(ctx context.Context, hash string) (*models.Token, error) {
	const op = "storage.memory.TokenByHash"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[hash]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &token, nil
}

// DeleteToken удаляет запись токена по хэшу. Идемпотентна.
func (s *Storage) DeleteToken(ctx context.Context, hash string) error {
	const op = "storage.memory.DeleteToken"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeTokenLocked(hash)

	return nil
}

// DeleteAllForUser удаляет все токены пользователя и возвращает их хэши.
func (s *Storage) DeleteAllForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage.memory.DeleteAllForUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeUserTokensLocked(userID), nil
}

// DeleteExpiredTokens удаляет все просроченные токены.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	const op = "storage.memory.DeleteExpiredTokens"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, token := range s.tokens {
		if token.Expired(now) {
			s.removeTokenLocked(hash)
		}
	}

	return nil
}

// SaveUser фиксирует существование пользователя.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.memory.SaveUser"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	s.users[user.ID] = *user

	return nil
}

// UserExists сообщает, существует ли пользователь.
func (s *Storage) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "storage.memory.UserExists"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]

	return ok, nil
}

// DeleteUser удаляет пользователя и каскадно все его токены.
// Выполняется под локом пользователя: в момент, когда пользователь уже
// отсутствует, ни одного его токена в хранилище нет.
func (s *Storage) DeleteUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage.memory.DeleteUser"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	hashes := s.removeUserTokensLocked(userID)
	delete(s.users, userID)

	return hashes, nil
}

// Close освобождает ресурсы (для in-memory — no-op).
func (s *Storage) Close() {}

// removeTokenLocked снимает запись и её индекс; вызывается под s.mu.
func (s *Storage) removeTokenLocked(hash string) {
	token, ok := s.tokens[hash]
	if !ok {
		return
	}

	delete(s.tokens, hash)
	if set := s.byUser[token.UserID]; set != nil {
		delete(set, hash)
		if len(set) == 0 {
			delete(s.byUser, token.UserID)
		}
	}
}

// removeUserTokensLocked снимает все токены пользователя; вызывается под s.mu.
func (s *Storage) removeUserTokensLocked(userID uuid.UUID) []string {
	var hashes []string
	for hash := range s.byUser[userID] {
		hashes = append(hashes, hash)
		delete(s.tokens, hash)
	}
	delete(s.byUser, userID)

	return hashes
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
