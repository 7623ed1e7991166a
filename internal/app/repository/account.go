package repository

import (
	"context"

	"gamerental/internal/app/ds"
)

// Digital accounts

func (r *Repository) GetAllAccounts(ctx context.Context) ([]ds.DigitalAccount, error) {
	var accounts []ds.DigitalAccount
	err := r.db.WithContext(ctx).Preload("Client").Order("id").Find(&accounts).Error
	return accounts, err
}

func (r *Repository) GetAccountByID(ctx context.Context, id uint) (*ds.DigitalAccount, error) {
	return getByID[ds.DigitalAccount](r.db.WithContext(ctx), id, "digital account", "Client")
}

// CreateAccount checks the owner client before inserting.
func (r *Repository) CreateAccount(ctx context.Context, account *ds.DigitalAccount) error {
	db := r.db.WithContext(ctx)
	if err := mustExist[ds.Client](db, account.ClientID, "client"); err != nil {
		return err
	}
	if err := db.Create(account).Error; err != nil {
		return translate(err, "digital account not found")
	}
	return nil
}

func (r *Repository) UpdateAccount(ctx context.Context, id uint, fields map[string]interface{}) error {
	db := r.db.WithContext(ctx)
	if clientID, ok := fields["client_id"].(uint); ok {
		if err := mustExist[ds.Client](db, clientID, "client"); err != nil {
			return err
		}
	}
	return updateByID[ds.DigitalAccount](db, id, "digital account", fields)
}

func (r *Repository) DeleteAccount(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := mustBeUnreferenced[ds.License](db, "digital_account_id", id, "digital account %d is linked to licenses", id); err != nil {
		return err
	}
	return deleteByID[ds.DigitalAccount](db, id, "digital account")
}

func (r *Repository) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.DigitalAccount{}).Count(&count).Error
	return count, err
}
