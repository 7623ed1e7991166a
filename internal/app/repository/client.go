package repository

import (
	"context"

	"gamerental/internal/app/ds"
)

func (r *Repository) GetAllClients(ctx context.Context) ([]ds.Client, error) {
	var clients []ds.Client
	err := r.db.WithContext(ctx).Order("id").Find(&clients).Error
	return clients, err
}

func (r *Repository) GetClientByID(ctx context.Context, id uint) (*ds.Client, error) {
	return getByID[ds.Client](r.db.WithContext(ctx), id, "client")
}

func (r *Repository) CreateClient(ctx context.Context, client *ds.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return translate(err, "client not found")
	}
	return nil
}

func (r *Repository) UpdateClient(ctx context.Context, id uint, fields map[string]interface{}) error {
	return updateByID[ds.Client](r.db.WithContext(ctx), id, "client", fields)
}

func (r *Repository) DeleteClient(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := mustBeUnreferenced[ds.Order](db, "client_id", id, "client %d has orders", id); err != nil {
		return err
	}
	if err := mustBeUnreferenced[ds.DigitalAccount](db, "client_id", id, "client %d has digital accounts", id); err != nil {
		return err
	}
	return deleteByID[ds.Client](db, id, "client")
}
