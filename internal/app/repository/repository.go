package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db *gorm.DB
}

// GormConfig is shared by production and tests so driver errors are translated the same way.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, err
	}

	r := NewFromDB(db)
	if err := r.Migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewFromDB wraps an already opened connection.
func NewFromDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Automatic migration of every table
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(ds.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks the connection pool.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// getByID loads one row with the given preloads, NotFound when absent.
func getByID[T any](db *gorm.DB, id uint, what string, preloads ...string) (*T, error) {
	var row T
	q := db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	err := q.First(&row, id).Error
	if err != nil {
		return nil, translate(err, "%s %d not found", what, id)
	}
	return &row, nil
}

// mustExist returns NotFound when no row of T has the id.
func mustExist[T any](db *gorm.DB, id uint, what string) error {
	var count int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check %s %d: %w", what, id, err)
	}
	if count == 0 {
		return apperr.NotFound("%s %d not found", what, id)
	}
	return nil
}

// mustBeUnreferenced returns Conflict when any row of T has column = id.
func mustBeUnreferenced[T any](db *gorm.DB, column string, id uint, format string, args ...any) error {
	var count int64
	if err := db.Model(new(T)).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check references: %w", err)
	}
	if count > 0 {
		return apperr.Conflict(format, args...)
	}
	return nil
}

func updateByID[T any](db *gorm.DB, id uint, what string, fields map[string]interface{}) error {
	if err := mustExist[T](db, id, what); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	if err := db.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
		return translate(err, "%s %d not found", what, id)
	}
	return nil
}

func deleteByID[T any](db *gorm.DB, id uint, what string) error {
	res := db.Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, "%s %d not found", what, id)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("%s %d not found", what, id)
	}
	return nil
}

// translate maps GORM sentinel errors onto typed failures; other errors pass through.
func translate(err error, notFoundFormat string, args ...any) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(notFoundFormat, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Conflict("record is referenced by other records")
	default:
		return err
	}
}

// containsPattern builds a case-insensitive LIKE pattern for a substring match.
func containsPattern(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
	return "%" + s + "%"
}
