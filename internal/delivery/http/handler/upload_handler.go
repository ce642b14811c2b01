package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cat-tracker/internal/pkg/utils"
	"github.com/cat-tracker/internal/usecase"
	"github.com/cat-tracker/internal/usecase/dto"
)

// UploadHandler serves POST /api/upload.
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// Upload godoc
// @Summary Upload a sighting photo
// @Description Accepts one image file and returns its servable path
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file field"})
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, err)
	}
	defer file.Close()

	url, err := h.uploadUC.Store(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.UploadResponse{URL: url})
}
