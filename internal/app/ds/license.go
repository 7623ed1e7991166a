package ds

// License statuses
const (
	LicenseAvailable = "Available"
	LicenseRented    = "Rented"
)

// 4. Licenses table - one rentable unit of a game
type License struct {
	ID               uint            `gorm:"primaryKey"`
	GameID           uint            `gorm:"not null;index"`
	Status           string          `gorm:"type:varchar(30);not null;default:'Available';index"`
	Type             string          `gorm:"type:varchar(30)"` // Primary, Secondary
	Price            float64         `gorm:"type:decimal(10,2);default:0"`
	DigitalAccountID *uint           `gorm:"default:null"`
	Game             *Game           `gorm:"foreignKey:GameID"`
	DigitalAccount   *DigitalAccount `gorm:"foreignKey:DigitalAccountID"`
}
