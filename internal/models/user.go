package models

import "gorm.io/gorm"

// User represents a customer or admin account.
// PasswordHash is the bcrypt hash, never the raw password; list/get
// responses scrub it before serialization, creation responses keep it.
type User struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" gorm:"index;type:varchar(255)" validate:"required,email"`
	PasswordHash string `json:"passwordHash,omitempty" gorm:"type:varchar(255)"`
	Phone        string `json:"phone"`
	IsAdmin      bool   `json:"isAdmin"`
	Street       string `json:"street"`
	Apartment    string `json:"apartment"`
	Zip          string `json:"zip"`
	City         string `json:"city"`
	Country      string `json:"country"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
