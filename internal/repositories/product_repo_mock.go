package repositories

import (
	"fmt"
	"sync"

	"eshop/internal/apperrors"
	"eshop/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository,
// used when no database is configured and in tests. When a category
// repository is attached, reads resolve the category reference the way the
// GORM implementation preloads it.
type MockProductRepository struct {
	products   map[string]models.Product
	categories CategoryRepository
	mu         sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
// categories may be nil, in which case reads return the raw reference.
func NewMockProductRepository(categories CategoryRepository) *MockProductRepository {
	return &MockProductRepository{
		products:   make(map[string]models.Product),
		categories: categories,
	}
}

func (r *MockProductRepository) resolveCategory(p *models.Product) {
	if r.categories == nil || p.CategoryID == "" {
		return
	}
	if category, err := r.categories.GetByID(p.CategoryID); err == nil {
		p.Category = category
	}
}

// GetAll returns all products, optionally filtered by category membership.
func (r *MockProductRepository) GetAll(categoryIDs []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if len(wanted) > 0 && !wanted[p.CategoryID] {
			continue
		}
		r.resolveCategory(&p)
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found", id))
	}
	r.resolveCategory(&product)
	return &product, nil
}

// GetFeatured returns featured products; a limit <= 0 returns all of them.
func (r *MockProductRepository) GetFeatured(limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := make([]models.Product, 0)
	for _, p := range r.products {
		if !p.IsFeatured {
			continue
		}
		if limit > 0 && len(featured) == limit {
			break
		}
		r.resolveCategory(&p)
		featured = append(featured, p)
	}
	return featured, nil
}

// Count returns the number of stored products.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update replaces an existing product wholesale.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found for update", product.ID))
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return apperrors.NewNotFound(fmt.Sprintf("product with ID %s not found for deletion", id))
	}
	delete(r.products, id)
	return nil
}
