package repository

import (
	"context"

	"gamerental/internal/app/ds"
)

// Users (ORM). The password hash is only read by GetUserByEmail for login.

func (r *Repository) GetAllUsers(ctx context.Context) ([]ds.User, error) {
	var users []ds.User
	err := r.db.WithContext(ctx).Preload("Level").Order("id").Find(&users).Error
	return users, err
}

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	return getByID[ds.User](r.db.WithContext(ctx), id, "user", "Level")
}

// GetUserByEmail is an exact, case-sensitive match.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Preload("Level").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err, "user not found")
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *ds.User) error {
	db := r.db.WithContext(ctx)
	if err := mustExist[ds.Level](db, user.LevelID, "level"); err != nil {
		return err
	}
	if err := db.Create(user).Error; err != nil {
		return translate(err, "user not found")
	}
	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, id uint, fields map[string]interface{}) error {
	db := r.db.WithContext(ctx)
	if levelID, ok := fields["level_id"].(uint); ok {
		if err := mustExist[ds.Level](db, levelID, "level"); err != nil {
			return err
		}
	}
	return updateByID[ds.User](db, id, "user", fields)
}

func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[ds.User](r.db.WithContext(ctx), id, "user")
}
