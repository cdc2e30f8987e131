package analytics

import (
	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

// Report bundles every derived view of one ledger snapshot.
type Report struct {
	Totals         Totals
	Balance        decimal.Decimal
	Daily          []DailyPoint
	Cumulative     []CumulativePoint
	Categories     []CategoryAmount
	TopCategory    models.Category
	HasTopCategory bool
	Count          int
}

func BuildReport(txs []models.Transaction) Report {
	totals := ComputeTotals(txs)
	daily := DailySeries(txs)
	byCategory := ExpensesByCategory(txs)
	top, ok := TopExpenseCategory(byCategory)

	return Report{
		Totals:         totals,
		Balance:        totals.Balance(),
		Daily:          daily,
		Cumulative:     CumulativeSeries(daily),
		Categories:     SortCategories(byCategory),
		TopCategory:    top,
		HasTopCategory: ok,
		Count:          len(txs),
	}
}

// Clone returns a report whose slices share no memory with r.
func (r Report) Clone() Report {
	out := r
	out.Daily = append(make([]DailyPoint, 0, len(r.Daily)), r.Daily...)
	out.Cumulative = append(make([]CumulativePoint, 0, len(r.Cumulative)), r.Cumulative...)
	out.Categories = append(make([]CategoryAmount, 0, len(r.Categories)), r.Categories...)
	return out
}
