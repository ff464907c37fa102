package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MinDescriptionLength = 3
	MaxDescriptionLength = 500
)

// Amounts are stored as NUMERIC(18,2).
const amountScale = 2

var maxAmount = decimal.New(1, 16)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrAmountPrecision   = errors.New("amount must have at most 2 decimal places")
	ErrAmountTooLarge    = errors.New("amount must be less than 10000000000000000")
	ErrMissingDate       = errors.New("date is required")
)

// Record is implemented by every transaction type (Income, Expense, Savings).
type Record interface {
	Base() *Entry
	Validate() error
}

// Entry is the shape shared by all transaction records.
type Entry struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (e *Entry) Base() *Entry { return e }

func (e *Entry) validate() error {
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	n := utf8.RuneCountInString(strings.TrimSpace(e.Description))
	if n < MinDescriptionLength || n > MaxDescriptionLength {
		return fmt.Errorf("description must be between %d and %d characters", MinDescriptionLength, MaxDescriptionLength)
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// validateAmount accepts positive values representable in NUMERIC(18,2) without rounding.
func validateAmount(a decimal.Decimal) error {
	if !a.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !a.Equal(a.Round(amountScale)) {
		return ErrAmountPrecision
	}
	if a.GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

// TruncateToDate drops the time-of-day, keeping the calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RecurrencePattern is how often a recurring income or expense repeats.
type RecurrencePattern string

const (
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	RecurrenceYearly  RecurrencePattern = "yearly"
)

func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

func validateRecurrence(pattern *RecurrencePattern) error {
	if pattern != nil && !pattern.Valid() {
		return fmt.Errorf("invalid recurrence pattern %q", *pattern)
	}
	return nil
}
