package repository

import (
	"context"

	"gamerental/internal/app/ds"
)

func (r *Repository) GetAllPlatforms(ctx context.Context) ([]ds.Platform, error) {
	var platforms []ds.Platform
	err := r.db.WithContext(ctx).Order("id").Find(&platforms).Error
	return platforms, err
}

func (r *Repository) GetPlatformByID(ctx context.Context, id uint) (*ds.Platform, error) {
	return getByID[ds.Platform](r.db.WithContext(ctx), id, "platform")
}

func (r *Repository) CreatePlatform(ctx context.Context, name string) (*ds.Platform, error) {
	platform := ds.Platform{Name: name}
	if err := r.db.WithContext(ctx).Create(&platform).Error; err != nil {
		return nil, translate(err, "platform not found")
	}
	return &platform, nil
}

func (r *Repository) UpdatePlatform(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID[ds.Platform](r.db.WithContext(ctx), id, "platform", fields)
}

func (r *Repository) DeletePlatform(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := mustBeUnreferenced[ds.Game](db, "platform_id", id, "platform %d still has games", id); err != nil {
		return err
	}
	return deleteByID[ds.Platform](db, id, "platform")
}
