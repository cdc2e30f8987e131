package handlers

import (
	"errors"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	ledgerService    *service.LedgerService
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewTransactionHandler(ledgerService *service.LedgerService, analyticsService *service.AnalyticsService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService:    ledgerService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// CreateTransaction godoc
// @Summary Add a transaction
// @Description Record an income, expense or saving. Amount is a decimal string. Date defaults to today.
// @Tags transactions
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.ledgerService.AddTransaction(c.UserContext(), req.ToInput())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
				Error: verr.Reason,
				Field: verr.Field,
			})
		}
		h.logger.Error("Failed to add transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// ListTransactions godoc
// @Summary List transactions
// @Description List the ledger newest first, optionally restricted to one type
// @Tags transactions
// @Produce json
// @Param type query string false "income, expense or saving"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	if typeStr := c.Query("type"); typeStr != "" {
		txType, err := models.ParseTransactionType(typeStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid transaction type",
			})
		}
		return h.listByType(c, txType)
	}

	txs, err := h.ledgerService.ListTransactions(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(dto.NewTransactionListResponse(txs))
}

// ListIncome godoc
// @Summary List income
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Router /api/v1/transactions/income [get]
func (h *TransactionHandler) ListIncome(c *fiber.Ctx) error {
	return h.listByType(c, models.TransactionTypeIncome)
}

// ListExpenses godoc
// @Summary List expenses
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Router /api/v1/transactions/expense [get]
func (h *TransactionHandler) ListExpenses(c *fiber.Ctx) error {
	return h.listByType(c, models.TransactionTypeExpense)
}

func (h *TransactionHandler) listByType(c *fiber.Ctx, txType models.TransactionType) error {
	txs, err := h.analyticsService.TransactionsByType(c.UserContext(), txType)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.String("type", string(txType)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}
	return c.JSON(dto.NewTransactionListResponse(txs))
}

// ListCategories godoc
// @Summary Suggested expense categories
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (h *TransactionHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(dto.NewCategoriesResponse(models.SuggestedCategories))
}
