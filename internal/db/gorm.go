package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type PostgresDB struct {
	DB *gorm.DB
}

// NewPostgresDB connects to postgres. Every statement the repository issues is a single
// write, so the implicit per-statement transaction is skipped.
func NewPostgresDB(dsn string, logLevel logger.LogLevel) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(ctx context.Context, tbl ...any) error {
	err := f.DB.WithContext(ctx).AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// InsertIgnore inserts record unless it violates a unique constraint, in which case the
// existing row is kept and no error is returned.
func (f *PostgresDB) InsertIgnore(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, order string, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// DeleteWhere deletes the rows of model matching every column in conditions and reports
// how many were removed.
func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error) {
	if len(conditions) == 0 {
		return 0, errors.New("delete without conditions")
	}

	tx := f.DB.WithContext(ctx).Where(conditions).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete from table: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
