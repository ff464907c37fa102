package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mybalance/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newSavings(amount int64, day time.Time) *models.Savings {
	return &models.Savings{
		Entry: models.Entry{
			Amount:      decimal.NewFromInt(amount),
			Description: "Rainy day fund",
			Date:        day,
		},
		Category: models.SavingsEmergencyFund,
	}
}

func newSummaryFixture(now time.Time) (*SummaryService, *fakeLedger[*models.Income], *fakeLedger[*models.Expense], *fakeLedger[*models.Savings]) {
	incomes := newFakeLedger[*models.Income]()
	expenses := newFakeLedger[*models.Expense]()
	savings := newFakeLedger[*models.Savings]()
	svc := NewSummaryService(incomes, expenses, savings, zap.NewNop(), WithClock(func() time.Time { return now }))
	return svc, incomes, expenses, savings
}

func seed[T models.Record](t *testing.T, store *fakeLedger[T], userID int64, recs ...T) {
	t.Helper()
	for _, r := range recs {
		r.Base().UserID = userID
		if err := store.Create(context.Background(), r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestSummaryService_Scenario(t *testing.T) {
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	svc, incomes, expenses, _ := newSummaryFixture(now)
	seed(t, incomes, 1, newIncome(1000, date(2024, 1, 15)))
	seed(t, expenses, 1, newExpense(300, date(2024, 1, 20)))

	got, err := svc.Summary(context.Background(), 1, date(2024, 1, 1), date(2024, 2, 1))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"total income", got.TotalIncome, 1000},
		{"total expenses", got.TotalExpenses, 300},
		{"total savings", got.TotalSavings, 0},
		{"balance", got.Balance, 700},
		{"current month income", got.CurrentMonth.Income, 1000},
		{"current month expenses", got.CurrentMonth.Expenses, 300},
		{"previous month income", got.PreviousMonth.Income, 0},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s = %s, want %d", c.name, c.got, c.want)
		}
	}
}

func TestSummaryService_HistoricalWindow(t *testing.T) {
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	svc, incomes, expenses, savings := newSummaryFixture(now)
	seed(t, incomes, 1, newIncome(2000, date(2023, 1, 10)), newIncome(1000, date(2024, 1, 15)))
	seed(t, expenses, 1, newExpense(450, date(2023, 1, 31)), newExpense(300, date(2023, 12, 5)))
	seed(t, savings, 1, newSavings(100, date(2023, 1, 1)))

	got, err := svc.Summary(context.Background(), 1, date(2023, 1, 1), date(2023, 2, 1))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want int64
	}{
		{"total income", got.TotalIncome, 2000},
		{"total expenses", got.TotalExpenses, 450},
		{"total savings", got.TotalSavings, 100},
		{"balance", got.Balance, 1550},
		{"current month income", got.CurrentMonth.Income, 0},
		{"current month expenses", got.CurrentMonth.Expenses, 0},
		{"current month savings", got.CurrentMonth.Savings, 0},
		{"previous month income", got.PreviousMonth.Income, 0},
		{"previous month expenses", got.PreviousMonth.Expenses, 0},
		{"previous month savings", got.PreviousMonth.Savings, 0},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.NewFromInt(c.want)) {
			t.Errorf("%s = %s, want %d", c.name, c.got, c.want)
		}
	}
}

func TestSummaryService_IsolatesUsers(t *testing.T) {
	now := date(2024, 1, 25)
	svc, incomes, _, _ := newSummaryFixture(now)
	seed(t, incomes, 1, newIncome(1000, date(2024, 1, 15)))
	seed(t, incomes, 2, newIncome(5, date(2024, 1, 15)))

	got, err := svc.Summary(context.Background(), 2, date(2024, 1, 1), date(2024, 2, 1))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !got.TotalIncome.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("total income = %s, want 5", got.TotalIncome)
	}
}

func TestSummaryService_Default(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	svc, incomes, expenses, savings := newSummaryFixture(now)
	seed(t, incomes, 1,
		newIncome(100, date(2024, 1, 31)),
		newIncome(200, date(2024, 2, 1)),
		newIncome(400, date(2024, 3, 31)),
		newIncome(800, date(2024, 4, 1)),
	)
	seed(t, expenses, 1, newExpense(50, date(2024, 2, 29)))
	seed(t, savings, 1, newSavings(25, date(2024, 3, 1)))

	got, err := svc.Default(context.Background(), 1)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if !got.TotalIncome.Equal(decimal.NewFromInt(600)) {
		t.Errorf("total income = %s, want 600", got.TotalIncome)
	}
	if !got.PreviousMonth.Income.Equal(decimal.NewFromInt(200)) || !got.PreviousMonth.Expenses.Equal(decimal.NewFromInt(50)) {
		t.Errorf("previous month = %+v", got.PreviousMonth)
	}
	if !got.CurrentMonth.Income.Equal(decimal.NewFromInt(400)) || !got.CurrentMonth.Savings.Equal(decimal.NewFromInt(25)) {
		t.Errorf("current month = %+v", got.CurrentMonth)
	}
	if !got.Balance.Equal(decimal.NewFromInt(550)) {
		t.Errorf("balance = %s, want 550", got.Balance)
	}
}

func TestSummaryService_EmptyWindow(t *testing.T) {
	svc, incomes, _, _ := newSummaryFixture(date(2024, 1, 25))
	seed(t, incomes, 1, newIncome(1000, date(2024, 1, 15)))

	got, err := svc.Summary(context.Background(), 1, date(2024, 1, 15), date(2024, 1, 15))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !got.TotalIncome.IsZero() || !got.Balance.IsZero() {
		t.Fatalf("start == end should be empty, got %+v", got)
	}
}

func TestSummaryService_ReversedWindow(t *testing.T) {
	svc, _, _, _ := newSummaryFixture(date(2024, 1, 25))
	_, err := svc.Summary(context.Background(), 1, date(2024, 2, 1), date(2024, 1, 1))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestSummaryService_FetchFailureFailsWhole(t *testing.T) {
	svc, incomes, _, savings := newSummaryFixture(date(2024, 1, 25))
	seed(t, incomes, 1, newIncome(1000, date(2024, 1, 15)))
	savings.err = errors.New("timeout")

	if _, err := svc.Summary(context.Background(), 1, date(2024, 1, 1), date(2024, 2, 1)); err == nil {
		t.Fatal("expected error when one fetch fails")
	}
}

func TestBuildSummary_BalanceAndDeterminism(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		incomes  []*models.Income
		expenses []*models.Expense
	}{
		{name: "empty"},
		{name: "income only", incomes: []*models.Income{newIncome(10, date(2024, 5, 1))}},
		{name: "expenses exceed income",
			incomes:  []*models.Income{newIncome(10, date(2024, 4, 1))},
			expenses: []*models.Expense{newExpense(25, date(2024, 5, 2)), newExpense(5, date(2023, 1, 1))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := BuildSummary(tt.incomes, tt.expenses, nil, now)
			if !first.Balance.Equal(first.TotalIncome.Sub(first.TotalExpenses)) {
				t.Fatalf("balance %s != %s - %s", first.Balance, first.TotalIncome, first.TotalExpenses)
			}
			second := BuildSummary(tt.incomes, tt.expenses, nil, now)
			if !first.Balance.Equal(second.Balance) || !first.CurrentMonth.Expenses.Equal(second.CurrentMonth.Expenses) {
				t.Fatal("aggregation is not deterministic")
			}
		})
	}
}

func TestBuildSummary_MonthBuckets(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	incomes := []*models.Income{
		newIncome(1, date(2023, 11, 30)),
		newIncome(2, date(2023, 12, 1)),
		newIncome(4, date(2023, 12, 31)),
		newIncome(8, date(2024, 1, 1)),
		newIncome(16, date(2024, 2, 1)),
	}
	got := BuildSummary(incomes, nil, nil, now)

	if !got.PreviousMonth.Income.Equal(decimal.NewFromInt(6)) {
		t.Errorf("previous month income = %s, want 6", got.PreviousMonth.Income)
	}
	if !got.CurrentMonth.Income.Equal(decimal.NewFromInt(8)) {
		t.Errorf("current month income = %s, want 8", got.CurrentMonth.Income)
	}
	if !got.TotalIncome.Equal(decimal.NewFromInt(31)) {
		t.Errorf("total income = %s, want 31", got.TotalIncome)
	}
}

func TestBuildSummary_DecimalExactness(t *testing.T) {
	incomes := []*models.Income{newIncome(0, date(2024, 1, 1)), newIncome(0, date(2024, 1, 2))}
	incomes[0].Amount = decimal.RequireFromString("0.10")
	incomes[1].Amount = decimal.RequireFromString("0.20")
	got := BuildSummary(incomes, nil, nil, date(2024, 1, 5))
	if !got.TotalIncome.Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("total = %s, want 0.30", got.TotalIncome)
	}
}
