package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(64)"`
}

type Contact struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(255);not null"`
	Email   string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(64)"`
	Address string `gorm:"type:text"`
}
