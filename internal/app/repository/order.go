package repository

import (
	"context"
	"fmt"
	"time"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/ds"

	"gorm.io/gorm"
)

// NewOrder is the input of the order workflow.
type NewOrder struct {
	ClientID   uint
	Value      float64
	LicenseIDs []uint
}

// OrderChanges holds the optional fields of an order update.
type OrderChanges struct {
	Value  *float64
	Status *string
}

func (r *Repository) GetAllOrders(ctx context.Context) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Lines.License.Game").
		Order("id").
		Find(&orders).Error
	return orders, err
}

func (r *Repository) GetOrderByID(ctx context.Context, id uint) (*ds.Order, error) {
	return getByID[ds.Order](r.db.WithContext(ctx), id, "order", "Client", "Lines.License.Game")
}

// CreateOrder creates the order, reserves every requested license and links it through an
// order line, all in one transaction. A license that is missing or not Available aborts the
// whole order.
func (r *Repository) CreateOrder(ctx context.Context, in NewOrder) (*ds.Order, error) {
	if len(in.LicenseIDs) == 0 {
		return nil, apperr.Invalid("could not insert licenses: no license requested")
	}

	order := ds.Order{
		ClientID:  in.ClientID,
		Value:     in.Value,
		Status:    ds.OrderAwaitingPayment,
		CreatedAt: time.Now(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist[ds.Client](tx, in.ClientID, "client"); err != nil {
			return err
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := reserveLicenses(tx, in.LicenseIDs); err != nil {
			return err
		}

		order.Lines = make([]ds.OrderLine, 0, len(in.LicenseIDs))
		for _, licenseID := range in.LicenseIDs {
			line := ds.OrderLine{OrderID: order.ID, LicenseID: licenseID}
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("create order line for license %d: %w", licenseID, translate(err, "license %d not found", licenseID))
			}
			order.Lines = append(order.Lines, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder changes value and status. Cancelling releases the order's licenses;
// leaving the Canceled status reserves them again.
func (r *Repository) UpdateOrder(ctx context.Context, id uint, changes OrderChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := getByID[ds.Order](tx, id, "order")
		if err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if changes.Value != nil {
			fields["value"] = *changes.Value
		}
		if changes.Status != nil && *changes.Status != order.Status {
			fields["status"] = *changes.Status

			licenseIDs, err := orderLicenseIDs(tx, id)
			if err != nil {
				return err
			}
			switch {
			case *changes.Status == ds.OrderCanceled:
				if err := releaseLicenses(tx, licenseIDs); err != nil {
					return err
				}
			case order.Status == ds.OrderCanceled:
				if err := reserveLicenses(tx, licenseIDs); err != nil {
					return err
				}
			}
		}
		if len(fields) == 0 {
			return nil
		}

		if err := tx.Model(&ds.Order{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return fmt.Errorf("update order %d: %w", id, err)
		}
		return nil
	})
}

// DeleteOrder releases the order's licenses (unless it was already cancelled), then removes
// its lines and the order itself in one transaction.
func (r *Repository) DeleteOrder(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := getByID[ds.Order](tx, id, "order")
		if err != nil {
			return err
		}

		if order.Status != ds.OrderCanceled {
			licenseIDs, err := orderLicenseIDs(tx, id)
			if err != nil {
				return err
			}
			if err := releaseLicenses(tx, licenseIDs); err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", id).Delete(&ds.OrderLine{}).Error; err != nil {
			return fmt.Errorf("delete lines of order %d: %w", id, err)
		}
		return deleteByID[ds.Order](tx, id, "order")
	})
}

// GetApprovedOrders returns paid orders, oldest first.
func (r *Repository) GetApprovedOrders(ctx context.Context) ([]ds.Order, error) {
	var orders []ds.Order
	err := r.db.WithContext(ctx).
		Where("status = ?", ds.OrderPaymentApproved).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

func orderLicenseIDs(tx *gorm.DB, orderID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&ds.OrderLine{}).Where("order_id = ?", orderID).Order("id").Pluck("license_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("licenses of order %d: %w", orderID, err)
	}
	return ids, nil
}

// reserveLicenses flips each license Available -> Rented. The conditional update is the
// compare-and-swap that keeps two orders from renting the same license.
func reserveLicenses(tx *gorm.DB, licenseIDs []uint) error {
	for _, id := range licenseIDs {
		res := tx.Model(&ds.License{}).
			Where("id = ? AND status = ?", id, ds.LicenseAvailable).
			Update("status", ds.LicenseRented)
		if res.Error != nil {
			return fmt.Errorf("reserve license %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("license %d is not available", id)
		}
	}
	return nil
}

func releaseLicenses(tx *gorm.DB, licenseIDs []uint) error {
	if len(licenseIDs) == 0 {
		return nil
	}
	err := tx.Model(&ds.License{}).
		Where("id IN ? AND status = ?", licenseIDs, ds.LicenseRented).
		Update("status", ds.LicenseAvailable).Error
	if err != nil {
		return fmt.Errorf("release licenses: %w", err)
	}
	return nil
}
