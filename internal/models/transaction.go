package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidTransaction is wrapped by every ValidationError.
var ErrInvalidTransaction = errors.New("invalid transaction")

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeSaving  TransactionType = "saving"
)

// TransactionTypes lists the closed set of types in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
	TransactionTypeSaving,
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeSaving:
		return true
	}
	return false
}

// ParseTransactionType accepts the lower-case wire names, ignoring case and
// surrounding whitespace.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

type Category string

const (
	CategoryGroceries      Category = "Groceries"
	CategoryShopping       Category = "Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryDining         Category = "Dining"
	CategoryOthers         Category = "Others"
)

// SuggestedCategories is the list offered to the user when recording an
// expense. Categories outside it are still accepted.
var SuggestedCategories = []Category{
	CategoryGroceries,
	CategoryShopping,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryDining,
	CategoryOthers,
}

func (c Category) IsSuggested() bool {
	for _, s := range SuggestedCategories {
		if c == s {
			return true
		}
	}
	return false
}

// OrOthers maps the absent category to Others.
func (c Category) OrOthers() Category {
	if c == "" {
		return CategoryOthers
	}
	return c
}

type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    Category // empty unless Type is expense
	Date        Date
	CreatedAt   time.Time
}

// TransactionInput is the raw record received from the user. Amount and Date
// are kept as text so validation can report on them.
type TransactionInput struct {
	Type        string
	Amount      string
	Description string
	Category    string
	Date        string
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTransaction
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
