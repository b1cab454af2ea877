package handlers

import (
	"log"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts, registration and login.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Register and
// login are public; the account-administration surface takes the guards.
func (h *UserHandler) RegisterRoutes(router fiber.Router, guards ...fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/register", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Get("/", guarded(guards, h.HandleGetUsers)...)
	userRoutes.Get("/get/count", guarded(guards, h.HandleGetUserCount)...)
	userRoutes.Get("/:id", guarded(guards, h.HandleGetUserByID)...)
	userRoutes.Post("/", guarded(guards, h.HandleCreateUser)...)
	userRoutes.Delete("/:id", guarded(guards, h.HandleDeleteUser)...)
}

// UserForm is the validated payload for direct create and register. The raw
// password is accepted on input only and discarded after hashing.
type UserForm struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

func (f *UserForm) toModel() *models.User {
	return &models.User{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		IsAdmin:   f.IsAdmin,
		Street:    f.Street,
		Apartment: f.Apartment,
		Zip:       f.Zip,
		City:      f.City,
		Country:   f.Country,
	}
}

// createUser is the single creation path shared by HandleCreateUser and
// HandleRegister; the two endpoints have an identical contract.
func (h *UserHandler) createUser(c *fiber.Ctx) error {
	var form UserForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(form); err != nil {
		return validationResponse(c, err)
	}

	created, err := h.userService.Create(form.toModel(), form.Password)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleCreateUser handles direct user creation.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	return h.createUser(c)
}

// HandleRegister handles self-registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	return h.createUser(c)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies the credentials and issues a session token. An
// unknown email and a wrong password fail with distinct messages.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationResponse(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"user":  req.Email,
		"token": token,
	})
}

// HandleGetUsers retrieves all users without their password hashes.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserCount returns the total user count as {count}.
func (h *UserHandler) HandleGetUserCount(c *fiber.Ctx) error {
	count, err := h.userService.CountUsers()
	if err != nil {
		log.Printf("Error counting users: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

// HandleGetUserByID retrieves a single user without their password hash.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", userID, err)
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user, distinguishing success, not-found and
// store faults.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if err := h.userService.DeleteUser(userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted!",
	})
}
