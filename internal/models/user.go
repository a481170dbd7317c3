package models

import (
	"time"

	"github.com/google/uuid"
)

// User — проекция пользователя из внешнего реестра.
// Сервис хранит только факт существования: никакие учётные данные
// (email, пароль) сюда не попадают.
type User struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
