package ds

// 8. Levels table (coarse role)
type Level struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// 9. Users table
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(100)"`
	Email    string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"` // bcrypt hash
	LevelID  uint   `gorm:"not null;index"`
	Level    *Level `gorm:"foreignKey:LevelID"`
}
