package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mybalance/internal/models"
	"mybalance/internal/repository"

	"go.uber.org/zap"
)

// LedgerStore is the persistence contract shared by the income, expense and savings repositories.
type LedgerStore[T models.Record] interface {
	GetByID(ctx context.Context, id int64) (T, error)
	ListByUser(ctx context.Context, userID int64) ([]T, error)
	ListByUserAndDateRange(ctx context.Context, userID int64, start, end time.Time) ([]T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) error
}

// LedgerService is CRUD over one kind of transaction, scoped to the calling user.
// A record that exists but belongs to someone else is reported as ErrNotFound.
type LedgerService[T models.Record] struct {
	store  LedgerStore[T]
	kind   string
	logger *zap.Logger
	now    func() time.Time
}

type (
	IncomeService  = LedgerService[*models.Income]
	ExpenseService = LedgerService[*models.Expense]
	SavingsService = LedgerService[*models.Savings]
)

func NewIncomeService(store LedgerStore[*models.Income], logger *zap.Logger) *IncomeService {
	return newLedgerService(store, "income", logger)
}

func NewExpenseService(store LedgerStore[*models.Expense], logger *zap.Logger) *ExpenseService {
	return newLedgerService(store, "expense", logger)
}

func NewSavingsService(store LedgerStore[*models.Savings], logger *zap.Logger) *SavingsService {
	return newLedgerService(store, "savings", logger)
}

func newLedgerService[T models.Record](store LedgerStore[T], kind string, logger *zap.Logger) *LedgerService[T] {
	return &LedgerService[T]{
		store:  store,
		kind:   kind,
		logger: logger,
		now:    time.Now,
	}
}

func (s *LedgerService[T]) List(ctx context.Context, userID int64) ([]T, error) {
	records, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return nonNil(records), nil
}

// ListRange returns the user's records dated within w.
func (s *LedgerService[T]) ListRange(ctx context.Context, userID int64, w models.Window) ([]T, error) {
	if w.End.Before(w.Start) {
		return nil, invalid(errors.New("start date must not be after end date"))
	}
	if w.Empty() {
		return []T{}, nil
	}
	records, err := s.store.ListByUserAndDateRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("list %s by date range: %w", s.kind, err)
	}
	return nonNil(records), nil
}

func (s *LedgerService[T]) Get(ctx context.Context, userID, id int64) (T, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		var zero T
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s %d: %w", s.kind, id, err)
	}
	if rec.Base().UserID != userID {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

func (s *LedgerService[T]) Create(ctx context.Context, userID int64, rec T) (T, error) {
	prepare(rec)
	if err := rec.Validate(); err != nil {
		var zero T
		return zero, invalid(err)
	}

	now := s.now().UTC()
	base := rec.Base()
	base.ID = 0
	base.UserID = userID
	base.CreatedAt = now
	base.UpdatedAt = now

	if err := s.store.Create(ctx, rec); err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.kind, err)
	}

	s.logger.Debug("Record created",
		zap.String("kind", s.kind),
		zap.Int64("id", base.ID),
		zap.Int64("user_id", userID),
	)
	return rec, nil
}

// Update overwrites every mutable field of record id with rec. Owner and creation time are kept.
func (s *LedgerService[T]) Update(ctx context.Context, userID, id int64, rec T) (T, error) {
	var zero T

	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return zero, err
	}

	prepare(rec)
	if err := rec.Validate(); err != nil {
		return zero, invalid(err)
	}

	base := rec.Base()
	base.ID = id
	base.UserID = userID
	base.CreatedAt = existing.Base().CreatedAt
	base.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("update %s %d: %w", s.kind, id, err)
	}
	return rec, nil
}

func (s *LedgerService[T]) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", s.kind, id, err)
	}
	s.logger.Debug("Record deleted",
		zap.String("kind", s.kind),
		zap.Int64("id", id),
		zap.Int64("user_id", userID),
	)
	return nil
}

type normalizer interface {
	Normalize()
}

func prepare(rec models.Record) {
	if n, ok := rec.(normalizer); ok {
		n.Normalize()
	}
	base := rec.Base()
	base.Description = strings.TrimSpace(base.Description)
	base.Date = models.TruncateToDate(base.Date)
}

func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
