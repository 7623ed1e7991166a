package repository

import (
	"context"
	"fmt"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) GetAllLicenses(ctx context.Context) ([]ds.License, error) {
	var licenses []ds.License
	err := r.db.WithContext(ctx).Preload("Game.Platform").Order("id").Find(&licenses).Error
	return licenses, err
}

func (r *Repository) GetLicenseByID(ctx context.Context, id uint) (*ds.License, error) {
	return getByID[ds.License](r.db.WithContext(ctx), id, "license", "Game.Platform", "DigitalAccount")
}

func (r *Repository) CreateLicense(ctx context.Context, license *ds.License) error {
	db := r.db.WithContext(ctx)
	if err := mustExist[ds.Game](db, license.GameID, "game"); err != nil {
		return err
	}
	if license.DigitalAccountID != nil {
		if err := mustExist[ds.DigitalAccount](db, *license.DigitalAccountID, "digital account"); err != nil {
			return err
		}
	}
	if license.Status == "" {
		license.Status = ds.LicenseAvailable
	}
	if license.Status == ds.LicenseRented {
		return errRentedByOrder
	}
	if err := db.Create(license).Error; err != nil {
		return translate(err, "license not found")
	}
	return nil
}

// UpdateLicense edits a license. Its status belongs to the order workflow: it can never be set
// to Rented here, and it cannot change while an open order holds the license.
func (r *Repository) UpdateLicense(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if gameID, ok := fields["game_id"].(uint); ok {
			if err := mustExist[ds.Game](tx, gameID, "game"); err != nil {
				return err
			}
		}
		if accountID, ok := fields["digital_account_id"].(uint); ok {
			if err := mustExist[ds.DigitalAccount](tx, accountID, "digital account"); err != nil {
				return err
			}
		}
		if status, ok := fields["status"].(string); ok {
			if status == ds.LicenseRented {
				return errRentedByOrder
			}
			orderID, err := openOrderOf(tx, id)
			if err != nil {
				return err
			}
			if orderID != 0 {
				return apperr.Conflict("license %d is held by order %d", id, orderID)
			}
		}
		return updateByID[ds.License](tx, id, "license", fields)
	})
}

var errRentedByOrder = apperr.InvalidFields("license status Rented is set by orders only",
	map[string]string{"status": "licensestatus"})

// openOrderOf returns the id of the non-canceled order holding the license, or 0.
func openOrderOf(tx *gorm.DB, licenseID uint) (uint, error) {
	var ids []uint
	err := tx.Model(&ds.OrderLine{}).
		Joins("JOIN orders ON orders.id = order_lines.order_id").
		Where("order_lines.license_id = ? AND orders.status <> ?", licenseID, ds.OrderCanceled).
		Order("order_lines.order_id").
		Limit(1).
		Pluck("order_lines.order_id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("orders of license %d: %w", licenseID, err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

func (r *Repository) DeleteLicense(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := mustBeUnreferenced[ds.OrderLine](db, "license_id", id, "license %d belongs to an order", id); err != nil {
		return err
	}
	return deleteByID[ds.License](db, id, "license")
}

// LicenseCounts returns total, rented and not-rented license counts.
func (r *Repository) LicenseCounts(ctx context.Context) (total, rented, free int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&ds.License{}).Count(&total).Error; err != nil {
		return
	}
	if err = db.Model(&ds.License{}).Where("status = ?", ds.LicenseRented).Count(&rented).Error; err != nil {
		return
	}
	err = db.Model(&ds.License{}).Where("status <> ?", ds.LicenseRented).Count(&free).Error
	return
}
