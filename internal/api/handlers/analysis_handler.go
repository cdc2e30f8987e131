package handlers

import (
	"expense-manager/internal/dto"
	"expense-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalysisHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetSummary godoc
// @Summary Ledger totals
// @Description Total income, expenses, savings and the balance (income minus expenses)
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /api/v1/summary [get]
func (h *AnalysisHandler) GetSummary(c *fiber.Ctx) error {
	totals, err := h.analyticsService.Totals(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to compute summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute summary",
		})
	}

	return c.JSON(dto.NewSummaryResponse(totals))
}

// GetAnalysis godoc
// @Summary Spending analysis
// @Description Daily and cumulative income/expense series, expenses by category and the top category
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Router /api/v1/analysis [get]
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	report, err := h.analyticsService.Report(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to build analysis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build analysis",
		})
	}

	return c.JSON(dto.NewAnalysisResponse(report))
}
