package dto

import (
	"mybalance/internal/models"

	"github.com/shopspring/decimal"
)

type MonthlyDataResponse struct {
	Income   decimal.Decimal `json:"income" swaggertype:"number"`
	Expenses decimal.Decimal `json:"expenses" swaggertype:"number"`
	Savings  decimal.Decimal `json:"savings" swaggertype:"number"`
}

type FinancialSummaryResponse struct {
	TotalIncome   decimal.Decimal     `json:"totalIncome" swaggertype:"number"`
	TotalExpenses decimal.Decimal     `json:"totalExpenses" swaggertype:"number"`
	TotalSavings  decimal.Decimal     `json:"totalSavings" swaggertype:"number"`
	Balance       decimal.Decimal     `json:"balance" swaggertype:"number"`
	CurrentMonth  MonthlyDataResponse `json:"currentMonth"`
	PreviousMonth MonthlyDataResponse `json:"previousMonth"`
}

func NewFinancialSummaryResponse(s models.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		TotalSavings:  s.TotalSavings,
		Balance:       s.Balance,
		CurrentMonth:  monthly(s.CurrentMonth),
		PreviousMonth: monthly(s.PreviousMonth),
	}
}

func monthly(m models.MonthlyTotals) MonthlyDataResponse {
	return MonthlyDataResponse{Income: m.Income, Expenses: m.Expenses, Savings: m.Savings}
}
