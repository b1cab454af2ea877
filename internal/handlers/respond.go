package handlers

import (
	"fmt"

	"eshop/internal/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// errorResponse maps a service failure onto its transport status using the
// error taxonomy; one mapping for every operation.
func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// validationResponse formats validator field errors into a 400 response.
func validationResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// guarded prepends route guards to a handler without sharing the backing
// array between routes.
func guarded(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}
