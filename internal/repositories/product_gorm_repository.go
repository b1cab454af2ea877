package repositories

import (
	"errors"
	"fmt"

	"eshop/internal/apperrors"
	"eshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves products with their category resolved, optionally
// filtered by category membership.
func (r *GORMProductRepository) GetAll(categoryIDs []string) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Preload("Category")
	if len(categoryIDs) > 0 {
		query = query.Where("category_id IN ?", categoryIDs)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, apperrors.NewInternal("failed to get all products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID with its category resolved.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found", id))
		}
		return nil, apperrors.NewInternal(fmt.Sprintf("failed to get product by ID %s", id), err)
	}
	return &product, nil
}

// GetFeatured retrieves featured products. A limit <= 0 returns all of them.
func (r *GORMProductRepository) GetFeatured(limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Preload("Category").Where("is_featured = ?", true)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, apperrors.NewInternal("failed to get featured products", err)
	}
	return products, nil
}

// Count returns the total number of products. Zero is a valid count.
func (r *GORMProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewInternal("failed to count products", err)
	}
	return count, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.NewInternal("failed to create product", err)
	}
	return nil
}

// Update performs a full-document replace of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	// Save falls back to an insert when the update matches no rows, so a
	// selected update is used instead. Select("*") writes all fields,
	// including zero values.
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Select("*").Omit("Category").Updates(product)
	if res.Error != nil {
		return apperrors.NewInternal("failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found for update", product.ID))
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal("failed to delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found for deletion", id))
	}
	return nil
}
