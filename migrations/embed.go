// Package migrations содержит встроенные SQL-миграции схемы (goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
