package ds

import "time"

// Order statuses
const (
	OrderAwaitingPayment = "Awaiting Payment"
	OrderPaymentApproved = "Payment Approved"
	OrderCanceled        = "Canceled"
)

// 6. Orders table
type Order struct {
	ID        uint        `gorm:"primaryKey"`
	ClientID  uint        `gorm:"not null;index"`
	Value     float64     `gorm:"type:decimal(12,2);not null;default:0"`
	Status    string      `gorm:"type:varchar(30);not null;default:'Awaiting Payment';index"`
	CreatedAt time.Time   `gorm:"not null"`
	Client    *Client     `gorm:"foreignKey:ClientID"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID"`
}

// 7. Many-to-many table (orders-licenses)
type OrderLine struct {
	ID        uint     `gorm:"primaryKey"`
	OrderID   uint     `gorm:"not null;index;uniqueIndex:idx_order_license"`
	LicenseID uint     `gorm:"not null;index;uniqueIndex:idx_order_license"`
	License   *License `gorm:"foreignKey:LicenseID"`
}
