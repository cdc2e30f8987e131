package dto

import (
	"expense-manager/internal/analytics"
	"expense-manager/internal/models"
)

type SummaryResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Savings  string `json:"savings"`
	Balance  string `json:"balance"`
}

type DailyPointResponse struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// AnalysisResponse carries the chart series and category insights.
// TopCategory is null when there are no expenses.
type AnalysisResponse struct {
	Summary     SummaryResponse          `json:"summary"`
	Daily       []DailyPointResponse     `json:"daily"`
	Cumulative  []DailyPointResponse     `json:"cumulative"`
	Categories  []CategoryAmountResponse `json:"categories"`
	TopCategory *string                  `json:"top_category"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

func NewSummaryResponse(totals analytics.Totals) SummaryResponse {
	return SummaryResponse{
		Income:   totals.Income.String(),
		Expenses: totals.Expenses.String(),
		Savings:  totals.Savings.String(),
		Balance:  totals.Balance().String(),
	}
}

func NewAnalysisResponse(report analytics.Report) AnalysisResponse {
	resp := AnalysisResponse{
		Summary:    NewSummaryResponse(report.Totals),
		Daily:      make([]DailyPointResponse, 0, len(report.Daily)),
		Cumulative: make([]DailyPointResponse, 0, len(report.Cumulative)),
		Categories: make([]CategoryAmountResponse, 0, len(report.Categories)),
	}

	for _, p := range report.Daily {
		resp.Daily = append(resp.Daily, DailyPointResponse{
			Date:    p.Date.String(),
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		})
	}
	for _, p := range report.Cumulative {
		resp.Cumulative = append(resp.Cumulative, DailyPointResponse{
			Date:    p.Date.String(),
			Income:  p.Income.String(),
			Expense: p.Expense.String(),
		})
	}
	for _, c := range report.Categories {
		resp.Categories = append(resp.Categories, CategoryAmountResponse{
			Category: string(c.Category),
			Amount:   c.Amount.String(),
		})
	}
	if report.HasTopCategory {
		top := string(report.TopCategory)
		resp.TopCategory = &top
	}

	return resp
}

func NewCategoriesResponse(categories []models.Category) CategoriesResponse {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return CategoriesResponse{Categories: out}
}
