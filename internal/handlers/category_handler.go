package handlers

import (
	"log"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", guarded(guards, h.HandleCreateCategory)...)
	categoryRoutes.Delete("/:id", guarded(guards, h.HandleDeleteCategory)...)
}

// CategoryForm is the validated payload for category creation.
type CategoryForm struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", categoryID, err)
		return errorResponse(c, err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var form CategoryForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return validationResponse(c, err)
	}

	category := &models.Category{
		Name:  form.Name,
		Icon:  form.Icon,
		Color: form.Color,
	}
	if err := h.service.CreateCategory(category); err != nil {
		log.Printf("Error creating category: %v", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.service.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted!",
	})
}
