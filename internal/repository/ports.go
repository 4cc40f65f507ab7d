package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(ctx context.Context, tbl ...any) error
	Insert(ctx context.Context, record any) error
	InsertIgnore(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, order string, entity any) error
	DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error)
}
