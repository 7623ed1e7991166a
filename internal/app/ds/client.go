package ds

import "time"

// 1. Clients table
type Client struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(120)"`
	Phone     string    `gorm:"type:varchar(30)"`
	Document  string    `gorm:"type:varchar(20)"` // CPF
	CreatedAt time.Time `gorm:"not null"`
}

// 5. Digital accounts table - store account rented out together with licenses
type DigitalAccount struct {
	ID        uint      `gorm:"primaryKey"`
	StoreID   string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(120)"`
	ClientID  uint      `gorm:"not null;index"`
	BirthDate time.Time `gorm:"type:date"`
	Client    *Client   `gorm:"foreignKey:ClientID"`
}
