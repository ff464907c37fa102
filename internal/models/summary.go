package models

import "github.com/shopspring/decimal"

// MonthlyTotals are the per-kind sums for one calendar month.
type MonthlyTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// FinancialSummary is derived on every request and never stored.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalSavings  decimal.Decimal
	Balance       decimal.Decimal
	CurrentMonth  MonthlyTotals
	PreviousMonth MonthlyTotals
}
