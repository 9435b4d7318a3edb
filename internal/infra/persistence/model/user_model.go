package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The database assigns integer ids and
// enforces username uniqueness.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
