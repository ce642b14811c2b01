package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cat-tracker/internal/pkg/utils"
	"github.com/cat-tracker/internal/usecase"
	"github.com/cat-tracker/internal/usecase/dto"
)

// ReportHandler serves the /api/reports endpoints.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Summary godoc
// @Summary Aggregated sighting counts over a date range
// @Description Total, per-source and per-day counts; defaults to the trailing 30 days
// @Tags Reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.Summary
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	req := dto.ReportRequest{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	summary, err := h.reportUC.Summary(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to build summary report", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.JSON(summary)
}

// Export godoc
// @Summary Download sightings as CSV
// @Description Every sighting in the range, newest first, fixed column order
// @Tags Reports
// @Produce text/csv
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	req := dto.ReportRequest{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	export, err := h.reportUC.ExportCSV(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to export CSV", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Send(export.Data)
}
