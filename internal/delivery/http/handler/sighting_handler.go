package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/cat-tracker/internal/pkg/errors"
	"github.com/cat-tracker/internal/pkg/utils"
	"github.com/cat-tracker/internal/pkg/validator"
	"github.com/cat-tracker/internal/usecase"
	"github.com/cat-tracker/internal/usecase/dto"
)

// SightingHandler serves the /api/cats endpoints.
type SightingHandler struct {
	sightingUC *usecase.SightingUseCase
	logger     *zap.Logger
}

func NewSightingHandler(sightingUC *usecase.SightingUseCase, logger *zap.Logger) *SightingHandler {
	return &SightingHandler{
		sightingUC: sightingUC,
		logger:     logger,
	}
}

// Create godoc
// @Summary Report a cat sighting
// @Description Persists one sighting and returns the full stored row
// @Tags Sightings
// @Accept json
// @Produce json
// @Param sighting body dto.CreateSightingRequest true "Sighting to create"
// @Success 201 {object} domain.Sighting
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/cats [post]
func (h *SightingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSightingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Create sighting validation failed", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	row, err := h.sightingUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// List godoc
// @Summary List all cat sightings
// @Description Returns every sighting, most recent first
// @Tags Sightings
// @Produce json
// @Success 200 {array} domain.Sighting
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/cats [get]
func (h *SightingHandler) List(c *fiber.Ctx) error {
	sightings, err := h.sightingUC.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list sightings", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(sightings)
}

// GetByID godoc
// @Summary Fetch one cat sighting
// @Tags Sightings
// @Produce json
// @Param id path int true "Sighting ID"
// @Success 200 {object} domain.Sighting
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/cats/{id} [get]
func (h *SightingHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sighting id"})
	}

	row, err := h.sightingUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(row)
}
