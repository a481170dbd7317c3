// service содержит бизнес-логику token-сервиса:
// выпуск/проверку/отзыв токенов и каскадную реакцию на удаление
// пользователя, поверх интерфейсов из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются и далее маппятся
//     транспортом на gRPC-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-token-service/internal/cache"
	"github.com/pribylovaa/go-token-service/internal/config"
	"github.com/pribylovaa/go-token-service/internal/storage"
)

var (
	// ErrInvalidToken — токен не выпускался, уже отозван, просрочен или его
	// владелец удалён. Причины намеренно неразличимы для вызывающей стороны,
	// чтобы по ответам нельзя было перечислять когда-либо существовавшие
	// токены. Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnknownUser — попытка выпуска токена для несуществующего пользователя.
	// Транспорт: codes.FailedPrecondition (HTTP 412).
	ErrUnknownUser = errors.New("unknown user")

	// ErrUserExists — пользователь уже зарегистрирован в проекции реестра.
	// Транспорт: codes.AlreadyExists (HTTP 409).
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound — каскад запрошен для несуществующего пользователя.
	// Транспорт: codes.NotFound (HTTP 404).
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenCollision — исчерпаны попытки сгенерировать уникальный токен
	// (повторные коллизии хэша при сохранении в БД). На практике не возникает
	// и указывает на дефект генератора/источника энтропии.
	// Транспорт: codes.Internal (HTTP 500).
	ErrTokenCollision = errors.New("token collision")

	// ErrEntropyUnavailable — источник криптографической случайности недоступен.
	// Фатально для операции выпуска: тихое понижение до более слабого
	// источника недопустимо. Транспорт: codes.Unavailable (HTTP 503).
	ErrEntropyUnavailable = errors.New("entropy unavailable")
)

// Service описывает бизнес-логику token-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.TokensConfig
	tcache  cache.TokenCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.TokensConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetTokenCache устанавливает кэш токенов (опционально).
func (s *Service) SetTokenCache(c cache.TokenCache) {
	s.tcache = c
}
