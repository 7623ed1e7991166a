package ds

// 2. Platforms table
type Platform struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(60);uniqueIndex;not null"`
}

// 3. Games table
type Game struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(150);not null;index"`
	PlatformID uint      `gorm:"not null;index"`
	Image      *string   `gorm:"type:varchar(255)"` // object name in MinIO, nullable
	Platform   *Platform `gorm:"foreignKey:PlatformID"`
	Licenses   []License `gorm:"foreignKey:GameID"`
}
