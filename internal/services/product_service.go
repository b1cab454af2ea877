package services

import (
	"encoding/json"
	"log"
	"mime/multipart"

	"eshop/internal/apperrors"
	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/internal/storage"
	"eshop/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products: category
// reference checks, the image upload pipeline on create and gallery
// updates, and catalog change events.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	store        *storage.DiskStore
	mqClient     *rabbitmq.Client // nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, store *storage.DiskStore, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		store:        store,
		mqClient:     mqClient,
	}
}

// GetAllProducts retrieves products, optionally filtered by category
// membership, with categories resolved. An empty catalog is a valid result.
func (s *ProductService) GetAllProducts(categoryIDs []string) ([]models.Product, error) {
	return s.productRepo.GetAll(categoryIDs)
}

// GetProductByID retrieves a single product by its ID with its category resolved.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetFeaturedProducts retrieves featured products. A limit <= 0 means no
// limit and returns every featured product.
func (s *ProductService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	return s.productRepo.GetFeatured(limit)
}

// CountProducts returns the total product count. Zero is a valid count.
func (s *ProductService) CountProducts() (int64, error) {
	return s.productRepo.Count()
}

// CreateProduct validates the category reference, runs the image through
// the upload pipeline and persists the product. basePath is the
// externally-addressable prefix the stored filename is appended to.
//
// The category check and the write are two independent store calls; a
// category deleted in between leaves a dangling reference, which is
// accepted.
func (s *ProductService) CreateProduct(product *models.Product, image *multipart.FileHeader, basePath string) (*models.Product, error) {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("invalid category")
		}
		return nil, err
	}

	if image == nil {
		return nil, apperrors.NewValidation("no image in the request")
	}

	fileName, err := s.store.Save(image)
	if err != nil {
		return nil, err
	}
	product.Image = basePath + fileName

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct performs a full-field replace of an existing product. The
// image field is taken verbatim from the payload (a set-image-reference,
// not an upload); gallery and image uploads have their own operations.
func (s *ProductService) UpdateProduct(product *models.Product) (*models.Product, error) {
	if _, err := uuid.Parse(product.ID); err != nil {
		return nil, apperrors.NewValidation("invalid product id")
	}

	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("invalid category")
		}
		return nil, err
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateGallery runs each attachment through the upload pipeline and
// replaces the product's gallery wholesale with the resulting paths, in
// attachment order. Prior gallery entries are discarded, never merged.
func (s *ProductService) UpdateGallery(id string, images []*multipart.FileHeader, basePath string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewValidation("invalid product id")
	}

	imagePaths := make([]string, 0, len(images))
	for _, image := range images {
		fileName, err := s.store.Save(image)
		if err != nil {
			return nil, err
		}
		imagePaths = append(imagePaths, basePath+fileName)
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Images = imagePaths

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", map[string]string{"id": id})
	return nil
}

// publishEvent emits a catalog change event. Publishing is best-effort and
// never fails the enclosing request.
func (s *ProductService) publishEvent(event string, payload interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.mqClient.Publish("", rabbitmq.CatalogQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}
