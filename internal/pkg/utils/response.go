package utils

import (
	"github.com/cat-tracker/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError maps an AppError to its status code; anything else becomes a 500.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
