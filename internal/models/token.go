package models

import (
	"time"

	"github.com/google/uuid"
)

// Token — запись о выпущенном токене в хранилище.
//
// Описание:
//   - TokenHash — хэш токена (sha256 → base64url); сам токен в БД не хранится,
//     клиенту он возвращается ровно один раз при выпуске;
//   - UserID — владелец токена; один пользователь может держать несколько
//     токенов одновременно (разные устройства/сессии);
//   - ExpiresAt — момент истечения (UTC); нулевое значение — токен бессрочный
//     (TTL-расширение отключено).
//
// Запись иммутабельна: жизненный цикл — создание → удаление, без обновлений.
type Token struct {
	// TokenHash — первичный ключ записи.
	TokenHash string
	// UserID — идентификатор пользователя-владельца.
	UserID uuid.UUID
	// CreatedAt — время выпуска (UTC).
	CreatedAt time.Time
	// ExpiresAt — время истечения (UTC); zero — без срока.
	ExpiresAt time.Time
}

// Expired сообщает, истёк ли токен к моменту now.
// Для бессрочных токенов всегда false.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// IssuedToken — результат выпуска токена, отдаваемый вызывающей стороне.
type IssuedToken struct {
	// Token — секрет в открытом виде; единственная копия.
	Token string
	// UserID — владелец.
	UserID uuid.UUID
	// ExpiresAt — время истечения (UTC); zero — без срока.
	ExpiresAt time.Time
}
