package repositories

import (
	"eshop/internal/models"
)

// ProductRepository defines the interface for product data access.
// Read operations resolve the category reference into the full record.
type ProductRepository interface {
	// GetAll returns every product, optionally restricted to the given
	// category identifiers. An empty result is not an error.
	GetAll(categoryIDs []string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	// GetFeatured returns featured products. A limit <= 0 means no limit.
	GetFeatured(limit int) ([]models.Product, error)
	Count() (int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
