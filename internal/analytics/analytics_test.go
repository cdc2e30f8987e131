package analytics

import (
	"testing"
	"time"

	"expense-manager/internal/models"
	tst "expense-manager/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func march(day int) models.Date {
	return models.NewDate(2024, time.March, day)
}

func expense(amount string, category models.Category, date models.Date) models.Transaction {
	tx := tst.NewTransaction(models.TransactionTypeExpense, amount, date)
	tx.Category = category
	return tx
}

func Test_ComputeTotals(t *testing.T) {
	type testCase struct {
		name string
		txs  []models.Transaction
		want Totals
	}

	tests := []func() testCase{
		func() testCase {
			return testCase{
				name: "empty ledger",
				txs:  nil,
				want: Totals{Income: d("0"), Expenses: d("0"), Savings: d("0")},
			}
		},
		func() testCase {
			return testCase{
				name: "one of each",
				txs: []models.Transaction{
					tst.NewTransaction(models.TransactionTypeIncome, "1000", march(1)),
					tst.NewTransaction(models.TransactionTypeExpense, "200.25", march(2)),
					tst.NewTransaction(models.TransactionTypeSaving, "50", march(3)),
				},
				want: Totals{Income: d("1000"), Expenses: d("200.25"), Savings: d("50")},
			}
		},
		func() testCase {
			return testCase{
				name: "decimal amounts sum exactly",
				txs: []models.Transaction{
					tst.NewTransaction(models.TransactionTypeExpense, "0.1", march(1)),
					tst.NewTransaction(models.TransactionTypeExpense, "0.2", march(1)),
				},
				want: Totals{Income: d("0"), Expenses: d("0.3"), Savings: d("0")},
			}
		},
	}
	for _, tt := range tests {
		tt := tt()
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.txs)
			assert.True(t, tt.want.Income.Equal(got.Income), "income %s", got.Income)
			assert.True(t, tt.want.Expenses.Equal(got.Expenses), "expenses %s", got.Expenses)
			assert.True(t, tt.want.Savings.Equal(got.Savings), "savings %s", got.Savings)
			assert.True(t, got.Balance().Equal(got.Income.Sub(got.Expenses)))
		})
	}
}

func Test_ComputeTotals_Additive(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := tst.RandomLedger(i)
		b := tst.RandomLedger(20 - i)
		joined := append(append([]models.Transaction{}, a...), b...)

		want := ComputeTotals(a).Add(ComputeTotals(b))
		got := ComputeTotals(joined)
		assert.True(t, want.Income.Equal(got.Income))
		assert.True(t, want.Expenses.Equal(got.Expenses))
		assert.True(t, want.Savings.Equal(got.Savings))
	}
}

func Test_ExpensesByCategory_SumsToTotalExpenses(t *testing.T) {
	for i := 0; i < 10; i++ {
		txs := tst.RandomLedger(30)
		sum := decimal.Zero
		for _, amount := range ExpensesByCategory(txs) {
			sum = sum.Add(amount)
		}
		assert.True(t, sum.Equal(ComputeTotals(txs).Expenses), "sum %s", sum)
	}
}

func Test_ExpensesByCategory(t *testing.T) {
	txs := []models.Transaction{
		expense("10", models.CategoryDining, march(1)),
		expense("5", "", march(1)),
		expense("7.5", models.CategoryOthers, march(2)),
		expense("2", models.CategoryDining, march(3)),
		tst.NewTransaction(models.TransactionTypeIncome, "100", march(1)),
	}

	got := ExpensesByCategory(txs)
	require.Len(t, got, 2)
	assert.True(t, got[models.CategoryDining].Equal(d("12")))
	assert.True(t, got[models.CategoryOthers].Equal(d("12.5")))
}

func Test_ByType(t *testing.T) {
	income1 := tst.NewTransaction(models.TransactionTypeIncome, "1", march(1))
	exp := tst.NewTransaction(models.TransactionTypeExpense, "2", march(1))
	income2 := tst.NewTransaction(models.TransactionTypeIncome, "3", march(2))
	txs := []models.Transaction{income2, exp, income1}

	assert.Equal(t, []models.Transaction{income2, income1}, ByType(txs, models.TransactionTypeIncome))
	assert.Equal(t, []models.Transaction{exp}, ByType(txs, models.TransactionTypeExpense))
	assert.Empty(t, ByType(txs, models.TransactionTypeSaving))
	assert.NotNil(t, ByType(nil, models.TransactionTypeSaving))
}

func Test_DailySeries(t *testing.T) {
	txs := []models.Transaction{
		tst.NewTransaction(models.TransactionTypeExpense, "30", march(5)),
		tst.NewTransaction(models.TransactionTypeSaving, "999", march(4)),
		tst.NewTransaction(models.TransactionTypeIncome, "100", march(3)),
		tst.NewTransaction(models.TransactionTypeExpense, "20", march(3)),
		tst.NewTransaction(models.TransactionTypeExpense, "10", march(3)),
		tst.NewTransaction(models.TransactionTypeIncome, "40", march(1)),
	}

	daily := DailySeries(txs)
	require.Len(t, daily, 3)

	assert.Equal(t, "2024-03-01", daily[0].Date.String())
	assert.True(t, daily[0].Income.Equal(d("40")))
	assert.True(t, daily[0].Expense.IsZero())

	assert.Equal(t, "2024-03-03", daily[1].Date.String())
	assert.True(t, daily[1].Income.Equal(d("100")))
	assert.True(t, daily[1].Expense.Equal(d("30")))

	assert.Equal(t, "2024-03-05", daily[2].Date.String())
	assert.True(t, daily[2].Income.IsZero())
	assert.True(t, daily[2].Expense.Equal(d("30")))

	cumulative := CumulativeSeries(daily)
	require.Len(t, cumulative, 3)
	assert.True(t, cumulative[0].Income.Equal(d("40")))
	assert.True(t, cumulative[1].Income.Equal(d("140")))
	assert.True(t, cumulative[2].Income.Equal(d("140")))
	assert.True(t, cumulative[0].Expense.IsZero())
	assert.True(t, cumulative[1].Expense.Equal(d("30")))
	assert.True(t, cumulative[2].Expense.Equal(d("60")))
}

func Test_CumulativeSeries_EndsAtTotals(t *testing.T) {
	txs := tst.RandomLedger(50)
	cumulative := CumulativeSeries(DailySeries(txs))
	totals := ComputeTotals(txs)

	if totals.Income.IsZero() && totals.Expenses.IsZero() {
		assert.Empty(t, cumulative)
		return
	}
	last := cumulative[len(cumulative)-1]
	assert.True(t, last.Income.Equal(totals.Income))
	assert.True(t, last.Expense.Equal(totals.Expenses))
}

func Test_TopExpenseCategory(t *testing.T) {
	type testCase struct {
		name   string
		input  map[models.Category]decimal.Decimal
		want   models.Category
		wantOk bool
	}

	tests := []func() testCase{
		func() testCase {
			return testCase{name: "no data", input: map[models.Category]decimal.Decimal{}, wantOk: false}
		},
		func() testCase {
			return testCase{
				name: "largest amount wins",
				input: map[models.Category]decimal.Decimal{
					models.CategoryDining:    d("10"),
					models.CategoryGroceries: d("200"),
					models.CategoryShopping:  d("199.99"),
				},
				want:   models.CategoryGroceries,
				wantOk: true,
			}
		},
		func() testCase {
			return testCase{
				name: "tie goes to smallest name",
				input: map[models.Category]decimal.Decimal{
					models.CategoryUtilities: d("50"),
					models.CategoryDining:    d("50"),
					models.CategoryShopping:  d("50.00"),
				},
				want:   models.CategoryDining,
				wantOk: true,
			}
		},
	}
	for _, tt := range tests {
		tt := tt()
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TopExpenseCategory(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_SortCategories(t *testing.T) {
	got := SortCategories(map[models.Category]decimal.Decimal{
		models.CategoryDining:     d("20"),
		models.CategoryGroceries:  d("200"),
		models.CategoryHealthcare: d("20"),
		models.CategoryOthers:     d("5"),
	})

	names := make([]models.Category, 0, len(got))
	for _, c := range got {
		names = append(names, c.Category)
	}
	assert.Equal(t, []models.Category{
		models.CategoryGroceries,
		models.CategoryDining,
		models.CategoryHealthcare,
		models.CategoryOthers,
	}, names)
}

func Test_BuildReport_RoundTrip(t *testing.T) {
	txs := []models.Transaction{
		expense("200", models.CategoryGroceries, march(2)),
		tst.NewTransaction(models.TransactionTypeIncome, "1000", march(1)),
	}

	report := BuildReport(txs)
	assert.True(t, report.Totals.Income.Equal(d("1000")))
	assert.True(t, report.Totals.Expenses.Equal(d("200")))
	assert.True(t, report.Balance.Equal(d("800")))
	assert.True(t, report.HasTopCategory)
	assert.Equal(t, models.CategoryGroceries, report.TopCategory)
	require.Len(t, report.Categories, 1)
	assert.True(t, report.Categories[0].Amount.Equal(d("200")))
	assert.Equal(t, 2, report.Count)
}

func Test_BuildReport_Empty(t *testing.T) {
	report := BuildReport(nil)

	assert.True(t, report.Totals.Income.IsZero())
	assert.True(t, report.Totals.Expenses.IsZero())
	assert.True(t, report.Totals.Savings.IsZero())
	assert.True(t, report.Balance.IsZero())
	assert.NotNil(t, report.Daily)
	assert.Empty(t, report.Daily)
	assert.NotNil(t, report.Cumulative)
	assert.Empty(t, report.Cumulative)
	assert.NotNil(t, report.Categories)
	assert.Empty(t, report.Categories)
	assert.False(t, report.HasTopCategory)
	assert.Equal(t, 0, report.Count)
}

func Test_BuildReport_Idempotent(t *testing.T) {
	txs := tst.RandomLedger(25)
	before := append([]models.Transaction{}, txs...)

	first := BuildReport(txs)
	second := BuildReport(txs)

	assert.Equal(t, first, second)
	assert.Equal(t, before, txs)
}

func Test_Report_Clone(t *testing.T) {
	report := BuildReport([]models.Transaction{
		expense("200", models.CategoryGroceries, march(2)),
		tst.NewTransaction(models.TransactionTypeIncome, "1000", march(1)),
	})

	clone := report.Clone()
	assert.Equal(t, report, clone)

	clone.Categories[0].Amount = d("1")
	clone.Daily[0].Income = d("1")
	clone.Cumulative[1].Expense = d("1")
	assert.True(t, report.Categories[0].Amount.Equal(d("200")))
	assert.True(t, report.Daily[0].Income.Equal(d("1000")))
	assert.True(t, report.Cumulative[1].Expense.Equal(d("200")))

	empty := BuildReport(nil).Clone()
	assert.NotNil(t, empty.Daily)
	assert.NotNil(t, empty.Cumulative)
	assert.NotNil(t, empty.Categories)
}
