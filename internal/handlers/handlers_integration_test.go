package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"eshop/internal/handlers"
	"eshop/internal/middleware"
	"eshop/internal/models"
	"eshop/internal/repositories"
	"eshop/internal/services"
	"eshop/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp sets up a Fiber app for testing with in-memory SQLite and all
// handlers/services wired the way main does it.
func setupApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()

	// Configure Viper for testing
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// A named in-memory database keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Category{}, &models.Product{}, &models.User{})
	assert.NoError(t, err)

	// Initialize Repositories
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// Upload pipeline over a per-test content root
	diskStore, err := storage.NewDiskStore(t.TempDir())
	assert.NoError(t, err)

	// Initialize Services (nil RabbitMQ client: events disabled)
	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo, authService)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo, diskStore, nil)

	// Initialize Handlers
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	userHandler := handlers.NewUserHandler(userService, authService)

	app := fiber.New()

	apiV1 := app.Group("/api/v1")
	adminOnly := []fiber.Handler{
		middleware.AuthRequired(authService),
		middleware.AdminRequired(),
	}
	productHandler.RegisterRoutes(apiV1, adminOnly...)
	categoryHandler.RegisterRoutes(apiV1, adminOnly...)
	userHandler.RegisterRoutes(apiV1, adminOnly...)

	return app, authService
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func postJSON(t *testing.T, app *fiber.App, path, token string, payload interface{}) *http.Response {
	t.Helper()
	jsonBody, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// registerAndLogin creates an account through the register endpoint and
// returns a session token for it.
func registerAndLogin(t *testing.T, app *fiber.App, email string, isAdmin bool) string {
	t.Helper()

	resp := postJSON(t, app, "/api/v1/users/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
		"isAdmin":  isAdmin,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/v1/users/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.Equal(t, email, loginResp["user"])
	assert.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

// createCategory creates a category and returns its ID.
func createCategory(t *testing.T, app *fiber.App, token, name string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/v1/categories", token, map[string]string{
		"name": name,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var category models.Category
	decodeBody(t, resp, &category)
	assert.NotEmpty(t, category.ID)
	return category.ID
}

type filePart struct {
	field       string
	name        string
	contentType string
	content     []byte
}

// multipartBody builds a multipart request body with form fields and files.
func multipartBody(t *testing.T, fields map[string]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		assert.NoError(t, err)
		_, err = part.Write(f.content)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// createProduct posts a multipart product create request and returns the response.
func createProduct(t *testing.T, app *fiber.App, token string, fields map[string]string, files ...filePart) *http.Response {
	t.Helper()
	body, contentType := multipartBody(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestUserRegisterAndLogin(t *testing.T) {
	app, authService := setupApp(t)

	resp := postJSON(t, app, "/api/v1/users/register", "", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
		"phone":    "555-0100",
		"city":     "Springfield",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.User
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	// The creation response carries the hash, never the plaintext.
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "password123", created.PasswordHash)

	// Login with the right credentials yields {user, token}.
	resp = postJSON(t, app, "/api/v1/users/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp map[string]string
	decodeBody(t, resp, &loginResp)
	assert.Equal(t, "alice@example.com", loginResp["user"])

	claims, err := authService.ValidateToken(loginResp["token"])
	assert.NoError(t, err)
	assert.Equal(t, created.ID, claims["userId"])
	assert.Equal(t, false, claims["isAdmin"])

	// Wrong password and unknown email fail with distinct messages.
	resp = postJSON(t, app, "/api/v1/users/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var badPass map[string]interface{}
	decodeBody(t, resp, &badPass)
	assert.Contains(t, badPass["message"], "invalid password")

	resp = postJSON(t, app, "/api/v1/users/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var unknown map[string]interface{}
	decodeBody(t, resp, &unknown)
	assert.Contains(t, unknown["message"], "user not found")
	assert.NotEqual(t, badPass["message"], unknown["message"])
}

func TestUserListAndGetExcludePasswordHash(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "passwordHash")

	var users []models.User
	assert.NoError(t, json.Unmarshal(raw, &users))
	assert.Len(t, users, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/"+users[0].ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err = io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "passwordHash")

	// Count endpoint
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/get/count", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var countResp map[string]int64
	decodeBody(t, resp, &countResp)
	assert.Equal(t, int64(1), countResp["count"])
}

func TestProductLifecycle(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)
	categoryID := createCategory(t, app, token, "Shoes")

	// --- Create (multipart with image) ---
	resp := createProduct(t, app, token, map[string]string{
		"name":         "Red Shoe",
		"description":  "A red shoe",
		"brand":        "Acme",
		"price":        "59.99",
		"category":     categoryID,
		"countInStock": "10",
		"isFeatured":   "true",
	}, filePart{field: "image", name: "red shoe.png", contentType: "image/png", content: []byte("png-bytes")})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Product
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 59.99, created.Price)
	// Externally-addressable path: request scheme+host, uploads prefix,
	// hyphenated original name, timestamp, allow-listed extension.
	assert.True(t, strings.HasPrefix(created.Image, "http://example.com/public/uploads/red-shoe.png-"), created.Image)
	assert.True(t, strings.HasSuffix(created.Image, ".png"), created.Image)

	// --- List with category resolved ---
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeBody(t, resp, &products)
	assert.Len(t, products, 1)
	assert.NotNil(t, products[0].Category)
	assert.Equal(t, "Shoes", products[0].Category.Name)

	// --- Get one, populated ---
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/"+created.ID, nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Product
	decodeBody(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.NotNil(t, fetched.Category)

	// --- Count ---
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/get/count", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var countResp map[string]int64
	decodeBody(t, resp, &countResp)
	assert.Equal(t, int64(1), countResp["count"])

	// --- Update (JSON full replace, image verbatim) ---
	jsonBody, _ := json.Marshal(map[string]interface{}{
		"name":     "Red Shoe Pro",
		"price":    69.99,
		"category": categoryID,
		"image":    created.Image,
	})
	req = httptest.NewRequest(http.MethodPut, "/api/v1/products/"+created.ID, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Product
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Red Shoe Pro", updated.Name)
	assert.Equal(t, created.Image, updated.Image)
	// Full-field replace: omitted fields are written as their zero values.
	assert.Empty(t, updated.Description)
	assert.False(t, updated.IsFeatured)

	// --- Gallery replace ---
	body, contentType := multipartBody(t, nil,
		filePart{field: "images", name: "front.png", contentType: "image/png", content: []byte("front")},
		filePart{field: "images", name: "side.jpg", contentType: "image/jpg", content: []byte("side")},
	)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/products/gallery-images/"+created.ID, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var withGallery models.Product
	decodeBody(t, resp, &withGallery)
	assert.Len(t, withGallery.Images, 2)
	assert.Contains(t, withGallery.Images[0], "front.png-")
	assert.Contains(t, withGallery.Images[1], "side.jpg-")

	// A second gallery update discards the first wholesale.
	body, contentType = multipartBody(t, nil,
		filePart{field: "images", name: "back.png", contentType: "image/png", content: []byte("back")},
	)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/products/gallery-images/"+created.ID, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var replaced models.Product
	decodeBody(t, resp, &replaced)
	assert.Len(t, replaced.Images, 1)
	assert.Contains(t, replaced.Images[0], "back.png-")

	// --- Delete: success, then not found, then unretrievable ---
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+created.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleteResp map[string]interface{}
	decodeBody(t, resp, &deleteResp)
	assert.Equal(t, true, deleteResp["success"])
	assert.Contains(t, deleteResp["message"], "deleted")

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+created.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/"+created.ID, nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductCreateValidation(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)
	categoryID := createCategory(t, app, token, "Shoes")

	image := filePart{field: "image", name: "shoe.png", contentType: "image/png", content: []byte("png")}

	// Non-existent category fails regardless of other field validity.
	resp := createProduct(t, app, token, map[string]string{
		"name":     "Shoe",
		"price":    "10",
		"category": "00000000-0000-0000-0000-000000000000",
	}, image)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "invalid category")

	// Missing image fails even with all other fields valid.
	resp = createProduct(t, app, token, map[string]string{
		"name":     "Shoe",
		"price":    "10",
		"category": categoryID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "no image in the request")

	// Disallowed content type is rejected.
	resp = createProduct(t, app, token, map[string]string{
		"name":     "Shoe",
		"price":    "10",
		"category": categoryID,
	}, filePart{field: "image", name: "shoe.gif", contentType: "image/gif", content: []byte("gif")})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "invalid image type")

	// A malformed product id on update is caught before any store access.
	jsonBody, _ := json.Marshal(map[string]interface{}{
		"name":     "Shoe",
		"category": categoryID,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/not-a-uuid", bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Contains(t, body["message"], "invalid product id")
}

func TestProductUpdateUnknownID(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)
	categoryID := createCategory(t, app, token, "Shoes")

	// A well-formed id that matches nothing must 404, not create a record.
	jsonBody, _ := json.Marshal(map[string]interface{}{
		"name":     "Ghost",
		"price":    10,
		"category": categoryID,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+uuid.New().String(), bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/get/count", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var countResp map[string]int64
	decodeBody(t, resp, &countResp)
	assert.Equal(t, int64(0), countResp["count"])
}

func TestFeaturedCountZeroReturnsAll(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)
	categoryID := createCategory(t, app, token, "Shoes")

	for i := 0; i < 3; i++ {
		resp := createProduct(t, app, token, map[string]string{
			"name":       fmt.Sprintf("Featured %d", i),
			"price":      "10",
			"category":   categoryID,
			"isFeatured": "true",
		}, filePart{field: "image", name: "f.png", contentType: "image/png", content: []byte("png")})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	resp := createProduct(t, app, token, map[string]string{
		"name":     "Plain",
		"price":    "10",
		"category": categoryID,
	}, filePart{field: "image", name: "p.png", contentType: "image/png", content: []byte("png")})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Zero count returns the full featured set, not an empty one.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/get/featured/0", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var featured []models.Product
	decodeBody(t, resp, &featured)
	assert.Len(t, featured, 3)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/get/featured/2", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &featured)
	assert.Len(t, featured, 2)
}

func TestProductListCategoryFilter(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)
	shoesID := createCategory(t, app, token, "Shoes")
	hatsID := createCategory(t, app, token, "Hats")

	image := filePart{field: "image", name: "x.png", contentType: "image/png", content: []byte("png")}
	for name, categoryID := range map[string]string{"Sneaker": shoesID, "Boot": shoesID, "Fedora": hatsID} {
		resp := createProduct(t, app, token, map[string]string{
			"name":     name,
			"price":    "10",
			"category": categoryID,
		}, image)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?categories="+shoesID, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decodeBody(t, resp, &products)
	assert.Len(t, products, 2)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/products?categories=%s,%s", shoesID, hatsID), nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	decodeBody(t, resp, &products)
	assert.Len(t, products, 3)

	// An empty catalog slice is a valid 200, not a failure.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products?categories=00000000-0000-0000-0000-000000000000", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &products)
	assert.Len(t, products, 0)
}

func TestMutatingRoutesRequireAdmin(t *testing.T) {
	app, _ := setupApp(t)

	// No token at all
	resp := postJSON(t, app, "/api/v1/categories", "", map[string]string{"name": "Shoes"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Authenticated but not admin
	userToken := registerAndLogin(t, app, "user@example.com", false)
	resp = postJSON(t, app, "/api/v1/categories", userToken, map[string]string{"name": "Shoes"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Reads stay public
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	r, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	r.Body.Close()
}

func TestUserDelete(t *testing.T) {
	app, _ := setupApp(t)
	token := registerAndLogin(t, app, "admin@example.com", true)

	resp := postJSON(t, app, "/api/v1/users", token, map[string]interface{}{
		"name":     "Short Lived",
		"email":    "gone@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.User
	decodeBody(t, resp, &created)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+created.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/users/"+created.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
