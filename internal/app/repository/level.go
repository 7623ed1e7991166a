package repository

import (
	"context"
	"fmt"

	"gamerental/internal/app/ds"
)

func (r *Repository) GetAllLevels(ctx context.Context) ([]ds.Level, error) {
	var levels []ds.Level
	err := r.db.WithContext(ctx).Order("id").Find(&levels).Error
	return levels, err
}

func (r *Repository) GetLevelByID(ctx context.Context, id uint) (*ds.Level, error) {
	return getByID[ds.Level](r.db.WithContext(ctx), id, "level")
}

func (r *Repository) CreateLevel(ctx context.Context, name string) (*ds.Level, error) {
	level := ds.Level{Name: name}
	if err := r.db.WithContext(ctx).Create(&level).Error; err != nil {
		return nil, translate(err, "level not found")
	}
	return &level, nil
}

func (r *Repository) UpdateLevel(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID[ds.Level](r.db.WithContext(ctx), id, "level", fields)
}

func (r *Repository) DeleteLevel(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := mustBeUnreferenced[ds.User](db, "level_id", id, "level %d is assigned to users", id); err != nil {
		return err
	}
	return deleteByID[ds.Level](db, id, "level")
}

// SeedLevels creates the named levels that do not exist yet and returns how many were added.
func (r *Repository) SeedLevels(ctx context.Context, names []string) (int, error) {
	db := r.db.WithContext(ctx)
	created := 0
	for _, name := range names {
		var count int64
		if err := db.Model(&ds.Level{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return created, fmt.Errorf("seed level %q: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&ds.Level{Name: name}).Error; err != nil {
			return created, fmt.Errorf("seed level %q: %w", name, err)
		}
		created++
	}
	return created, nil
}
