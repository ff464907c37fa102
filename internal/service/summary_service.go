package service

import (
	"context"
	"errors"
	"time"

	"mybalance/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RangeLister[T models.Record] interface {
	ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]T, error)
}

type SummaryService struct {
	incomes  RangeLister[*models.Income]
	expenses RangeLister[*models.Expense]
	savings  RangeLister[*models.Savings]
	logger   *zap.Logger
	now      func() time.Time
}

type SummaryOption func(*SummaryService)

// WithClock replaces time.Now as the reference for the current and previous month.
func WithClock(now func() time.Time) SummaryOption {
	return func(s *SummaryService) { s.now = now }
}

func NewSummaryService(
	incomes RangeLister[*models.Income],
	expenses RangeLister[*models.Expense],
	savings RangeLister[*models.Savings],
	logger *zap.Logger,
	opts ...SummaryOption,
) *SummaryService {
	s := &SummaryService{
		incomes:  incomes,
		expenses: expenses,
		savings:  savings,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default summarises from the first day of the previous month up to the first day of the next one.
func (s *SummaryService) Default(ctx context.Context, userID int64) (models.FinancialSummary, error) {
	now := s.now()
	w := models.Window{
		Start: models.PreviousMonthWindow(now).Start,
		End:   models.MonthWindow(now).End,
	}
	return s.Summary(ctx, userID, w.Start, w.End)
}

// Summary aggregates the user's records dated in [start, end). Any failed fetch fails the whole call.
func (s *SummaryService) Summary(ctx context.Context, userID int64, start, end time.Time) (models.FinancialSummary, error) {
	if end.Before(start) {
		return models.FinancialSummary{}, invalid(errors.New("start date must not be after end date"))
	}

	var (
		incomes  []*models.Income
		expenses []*models.Expense
		savings  []*models.Savings
	)

	if start.Before(end) {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			incomes, err = s.incomes.ListByUserAndDateRange(gctx, userID, start, end)
			return err
		})
		g.Go(func() error {
			var err error
			expenses, err = s.expenses.ListByUserAndDateRange(gctx, userID, start, end)
			return err
		})
		g.Go(func() error {
			var err error
			savings, err = s.savings.ListByUserAndDateRange(gctx, userID, start, end)
			return err
		})
		if err := g.Wait(); err != nil {
			s.logger.Error("Failed to load summary data", zap.Int64("user_id", userID), zap.Error(err))
			return models.FinancialSummary{}, err
		}
	}

	return BuildSummary(incomes, expenses, savings, s.now()), nil
}

// BuildSummary is the pure aggregation step. Month sub-totals are relative to now, not to the
// window the records were fetched for, so they only count records that fall inside both.
func BuildSummary(incomes []*models.Income, expenses []*models.Expense, savings []*models.Savings, now time.Time) models.FinancialSummary {
	cur := models.MonthWindow(now)
	prev := models.PreviousMonthWindow(now)

	totalIncome := sum(incomes, nil)
	totalExpenses := sum(expenses, nil)

	return models.FinancialSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		TotalSavings:  sum(savings, nil),
		Balance:       totalIncome.Sub(totalExpenses),
		CurrentMonth: models.MonthlyTotals{
			Income:   sum(incomes, &cur),
			Expenses: sum(expenses, &cur),
			Savings:  sum(savings, &cur),
		},
		PreviousMonth: models.MonthlyTotals{
			Income:   sum(incomes, &prev),
			Expenses: sum(expenses, &prev),
			Savings:  sum(savings, &prev),
		},
	}
}

func sum[T models.Record](records []T, w *models.Window) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		e := r.Base()
		if w != nil && !w.Contains(e.Date) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}
