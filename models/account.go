package models

import (
	"time"

	"weddingplanner-backend/utils"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Hash the password before the row is written. Controllers put the
// plaintext into PasswordHash and never see it again.
func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(a.PasswordHash)
	if err != nil {
		return err
	}
	a.PasswordHash = hashed
	return
}
