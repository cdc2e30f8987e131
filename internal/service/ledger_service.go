package service

import (
	"context"
	"fmt"
	"strings"

	"expense-manager/internal/models"
	"expense-manager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LedgerService struct {
	txRepo *repository.TransactionRepository
	clock  Clock
	logger *zap.Logger
}

func NewLedgerService(txRepo *repository.TransactionRepository, clock Clock, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		txRepo: txRepo,
		clock:  clock,
		logger: logger,
	}
}

// AddTransaction validates input and prepends the resulting transaction to the
// ledger. Validation failures are returned as *models.ValidationError.
func (s *LedgerService) AddTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	tx, err := s.buildTransaction(input)
	if err != nil {
		s.logger.Debug("Transaction rejected", zap.Error(err))
		return models.Transaction{}, err
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.logger.Info("Transaction added",
		zap.String("id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
		zap.String("amount", tx.Amount.String()),
		zap.String("date", tx.Date.String()),
	)

	return tx, nil
}

// ListTransactions returns the ledger newest first.
func (s *LedgerService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.txRepo.List(ctx)
}

func (s *LedgerService) buildTransaction(input models.TransactionInput) (models.Transaction, error) {
	if strings.TrimSpace(input.Type) == "" {
		return models.Transaction{}, models.NewValidationError("type", "type is required")
	}
	txType, err := models.ParseTransactionType(input.Type)
	if err != nil {
		return models.Transaction{}, models.NewValidationError("type", "type must be one of income, expense, saving")
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return models.Transaction{}, err
	}

	description := strings.TrimSpace(sanitizeText(input.Description))
	if description == "" {
		return models.Transaction{}, models.NewValidationError("description", "description is required")
	}

	var category models.Category
	if txType == models.TransactionTypeExpense {
		category = models.Category(strings.TrimSpace(sanitizeText(input.Category))).OrOthers()
	}

	now := s.clock.Now()
	date := models.DateOf(now)
	if strings.TrimSpace(input.Date) != "" {
		date, err = models.ParseDate(input.Date)
		if err != nil {
			return models.Transaction{}, models.NewValidationError("date", "date must be in YYYY-MM-DD format")
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	return models.Transaction{
		ID:          id,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
	}, nil
}

// parseAmount accepts a plain decimal number, with either "." or "," as the
// decimal separator.
func parseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, models.NewValidationError("amount", "amount is required")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, models.NewValidationError("amount", "amount must be a number")
	}
	if amount.IsNegative() {
		return decimal.Zero, models.NewValidationError("amount", "amount must not be negative")
	}
	return amount, nil
}
