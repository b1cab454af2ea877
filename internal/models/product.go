package models

import "gorm.io/gorm"

// Product represents a product in the catalog.
type Product struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description"`
	RichDescription string    `json:"richDescription"`
	Image           string    `json:"image"` // externally-addressable URL, empty until first upload
	Images          []string  `json:"images" gorm:"serializer:json"`
	Brand           string    `json:"brand"`
	Price           float64   `json:"price"`
	CategoryID      string    `json:"category" gorm:"type:varchar(36)" validate:"required"`
	Category        *Category `json:"categoryDetail,omitempty" gorm:"foreignKey:CategoryID"`
	CountInStock    int       `json:"countInStock"`
	Rating          float64   `json:"rating"`
	NumReviews      int       `json:"numReviews"`
	IsFeatured      bool      `json:"isFeatured"`
	gorm.Model                // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
