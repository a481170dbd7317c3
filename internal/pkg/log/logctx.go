// Package log передаёт request-scoped *slog.Logger через context.Context.
// Логирующий интерсептор кладёт обогащённый логгер (request_id, метод)
// через Into; слои сервиса достают его через From.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into возвращает контекст с привязанным логгером l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From возвращает логгер запроса из ctx; если его там нет
// или тип значения неверен — slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
