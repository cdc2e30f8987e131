// Package analytics derives totals, time series and category breakdowns from
// a ledger snapshot. Every function is pure: the same input always yields the
// same output and the input slice is never modified.
package analytics

import (
	"sort"

	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// Balance is income minus expenses. Savings do not affect it.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

// Add combines two totals, so ComputeTotals(a ++ b) == ComputeTotals(a).Add(ComputeTotals(b)).
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Income:   t.Income.Add(other.Income),
		Expenses: t.Expenses.Add(other.Expenses),
		Savings:  t.Savings.Add(other.Savings),
	}
}

type DailyPoint struct {
	Date    models.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CumulativePoint struct {
	Date    models.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CategoryAmount struct {
	Category models.Category
	Amount   decimal.Decimal
}

func ComputeTotals(txs []models.Transaction) Totals {
	totals := Totals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Savings:  decimal.Zero,
	}
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
		case models.TransactionTypeSaving:
			totals.Savings = totals.Savings.Add(tx.Amount)
		}
	}
	return totals
}

// ByType keeps the input order.
func ByType(txs []models.Transaction, t models.TransactionType) []models.Transaction {
	out := []models.Transaction{}
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

// DailySeries has one point per distinct date carrying an income or expense,
// ascending. Savings are ignored.
func DailySeries(txs []models.Transaction) []DailyPoint {
	index := make(map[string]int)
	out := []DailyPoint{}
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeIncome && tx.Type != models.TransactionTypeExpense {
			continue
		}
		key := tx.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, DailyPoint{Date: tx.Date, Income: decimal.Zero, Expense: decimal.Zero})
		}
		if tx.Type == models.TransactionTypeIncome {
			out[i].Income = out[i].Income.Add(tx.Amount)
		} else {
			out[i].Expense = out[i].Expense.Add(tx.Amount)
		}
	}

	sort.Slice(out, func(a, b int) bool {
		return out[a].Date.Before(out[b].Date)
	})
	return out
}

// CumulativeSeries turns a daily series into running sums.
func CumulativeSeries(daily []DailyPoint) []CumulativePoint {
	out := make([]CumulativePoint, 0, len(daily))
	income, expense := decimal.Zero, decimal.Zero
	for _, p := range daily {
		income = income.Add(p.Income)
		expense = expense.Add(p.Expense)
		out = append(out, CumulativePoint{Date: p.Date, Income: income, Expense: expense})
	}
	return out
}

// ExpensesByCategory sums expenses per category, counting a missing category
// as Others.
func ExpensesByCategory(txs []models.Transaction) map[models.Category]decimal.Decimal {
	out := make(map[models.Category]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		c := tx.Category.OrOthers()
		if sum, ok := out[c]; ok {
			out[c] = sum.Add(tx.Amount)
		} else {
			out[c] = tx.Amount
		}
	}
	return out
}

// SortCategories orders by amount descending, then by name.
func SortCategories(byCategory map[models.Category]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(byCategory))
	for c, amount := range byCategory {
		out = append(out, CategoryAmount{Category: c, Amount: amount})
	}
	sort.Slice(out, func(a, b int) bool {
		if cmp := out[a].Amount.Cmp(out[b].Amount); cmp != 0 {
			return cmp > 0
		}
		return out[a].Category < out[b].Category
	})
	return out
}

// TopExpenseCategory returns the category with the largest amount. Ties go to
// the lexicographically smallest name. ok is false when there is no data.
func TopExpenseCategory(byCategory map[models.Category]decimal.Decimal) (models.Category, bool) {
	sorted := SortCategories(byCategory)
	if len(sorted) == 0 {
		return "", false
	}
	return sorted[0].Category, true
}
