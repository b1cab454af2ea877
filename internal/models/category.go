package models

import "gorm.io/gorm"

// Category groups products for filtered listings. Products hold a
// non-owning reference to it; deleting a category does not touch the
// products that point at it.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
