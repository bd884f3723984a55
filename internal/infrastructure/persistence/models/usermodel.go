package models

import (
	"time"

	"stride/internal/shared/constants"
)

// UserModel is the GORM model for the users table
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:50;not null;uniqueIndex"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
