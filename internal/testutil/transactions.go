package testutil

import (
	"math/rand"
	"time"

	"expense-manager/internal/models"

	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewTransaction builds a valid transaction with a random description and,
// for expenses, a random suggested category.
func NewTransaction(t models.TransactionType, amount string, date models.Date) models.Transaction {
	tx := models.Transaction{
		ID:          uuid.New(),
		Type:        t,
		Amount:      decimal.RequireFromString(amount),
		Description: faker.Sentence(),
		Date:        date,
		CreatedAt:   time.Now(),
	}
	if t == models.TransactionTypeExpense {
		tx.Category = RandomCategory()
	}
	return tx
}

func RandomCategory() models.Category {
	return models.SuggestedCategories[rand.Intn(len(models.SuggestedCategories))]
}

// RandomLedger returns n transactions of random type, amount and date within
// March 2024.
func RandomLedger(n int) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		t := models.TransactionTypes[rand.Intn(len(models.TransactionTypes))]
		amount := decimal.New(rand.Int63n(1_000_000), -2)
		date := models.NewDate(2024, time.March, 1+rand.Intn(31))
		tx := NewTransaction(t, amount.String(), date)
		out = append(out, tx)
	}
	return out
}
