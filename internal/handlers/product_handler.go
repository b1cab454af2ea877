package handlers

import (
	"log"
	"strconv"
	"strings"

	"eshop/internal/apperrors"
	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// uploadsPrefix is the public path the content root is served under.
const uploadsPrefix = "/public/uploads/"

// maxGalleryImages caps a single gallery update.
const maxGalleryImages = 10

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// guards are applied to mutating routes only; reads stay public.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/get/count", h.HandleGetProductCount)
	productRoutes.Get("/get/featured/:count", h.HandleGetFeaturedProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", guarded(guards, h.HandleCreateProduct)...)
	productRoutes.Put("/gallery-images/:id", guarded(guards, h.HandleUpdateGallery)...)
	productRoutes.Put("/:id", guarded(guards, h.HandleUpdateProduct)...)
	productRoutes.Delete("/:id", guarded(guards, h.HandleDeleteProduct)...)
}

// ProductForm is the validated payload for product create and update. On
// multipart create the image arrives as a file part, not a form value; on
// JSON update Image is taken verbatim as an already-uploaded path.
type ProductForm struct {
	Name            string  `json:"name" form:"name" validate:"required"`
	Description     string  `json:"description" form:"description"`
	RichDescription string  `json:"richDescription" form:"richDescription"`
	Image           string  `json:"image" form:"image"`
	Brand           string  `json:"brand" form:"brand"`
	Price           float64 `json:"price" form:"price"`
	Category        string  `json:"category" form:"category" validate:"required"`
	CountInStock    int     `json:"countInStock" form:"countInStock"`
	Rating          float64 `json:"rating" form:"rating"`
	NumReviews      int     `json:"numReviews" form:"numReviews"`
	IsFeatured      bool    `json:"isFeatured" form:"isFeatured"`
}

func (f *ProductForm) toModel() *models.Product {
	return &models.Product{
		Name:            f.Name,
		Description:     f.Description,
		RichDescription: f.RichDescription,
		Image:           f.Image,
		Brand:           f.Brand,
		Price:           f.Price,
		CategoryID:      f.Category,
		CountInStock:    f.CountInStock,
		Rating:          f.Rating,
		NumReviews:      f.NumReviews,
		IsFeatured:      f.IsFeatured,
	}
}

// basePath builds the externally-addressable prefix for uploaded files from
// the request's own scheme and host.
func basePath(c *fiber.Ctx) string {
	return c.BaseURL() + uploadsPrefix
}

// HandleGetProducts retrieves all products, optionally filtered with
// ?categories=id1,id2. An empty catalog is a 200 with an empty list.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var categoryIDs []string
	if categories := c.Query("categories"); categories != "" {
		categoryIDs = strings.Split(categories, ",")
	}

	products, err := h.service.GetAllProducts(categoryIDs)
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductCount returns the total product count as {count}.
func (h *ProductHandler) HandleGetProductCount(c *fiber.Ctx) error {
	count, err := h.service.CountProducts()
	if err != nil {
		log.Printf("Error counting products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleGetFeaturedProducts returns up to :count featured products; a count
// of 0 returns all of them.
func (h *ProductHandler) HandleGetFeaturedProducts(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Params("count"))
	if err != nil {
		return errorResponse(c, apperrors.NewValidation("invalid featured count"))
	}

	products, err := h.service.GetFeaturedProducts(count)
	if err != nil {
		log.Printf("Error getting featured products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product with its category resolved.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a multipart body with a single
// file field "image" and form fields for the remaining attributes.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var form ProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return validationResponse(c, err)
	}

	// A missing file is reported by the service after the category check,
	// so the failure ordering matches the create contract.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	created, err := h.service.CreateProduct(form.toModel(), image, basePath(c))
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct performs a full-field replace from a JSON body. Any
// field omitted in the payload is written as its zero value.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var form ProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return validationResponse(c, err)
	}

	product := form.toModel()
	product.ID = c.Params("id")

	updated, err := h.service.UpdateProduct(product)
	if err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return errorResponse(c, err)
	}
	return c.JSON(updated)
}

// HandleUpdateGallery replaces a product's gallery wholesale with up to 10
// files uploaded under the field "images".
func (h *ProductHandler) HandleUpdateGallery(c *fiber.Ctx) error {
	productID := c.Params("id")

	multipartForm, err := c.MultipartForm()
	if err != nil {
		log.Printf("Error parsing gallery multipart form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart body",
			"error":   err.Error(),
		})
	}

	images := multipartForm.File["images"]
	if len(images) > maxGalleryImages {
		return errorResponse(c, apperrors.NewValidation("too many gallery images"))
	}

	updated, err := h.service.UpdateGallery(productID, images, basePath(c))
	if err != nil {
		log.Printf("Error updating gallery for product %s: %v", productID, err)
		return errorResponse(c, err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product, distinguishing success, not-found
// and store faults.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted!",
	})
}
