package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validEntry() Entry {
	return Entry{
		Amount:      decimal.NewFromInt(100),
		Description: "Monthly salary",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestIncome_Validate(t *testing.T) {
	weekly := RecurrenceWeekly
	bogus := RecurrencePattern("hourly")

	tests := []struct {
		name    string
		mutate  func(i *Income)
		wantErr bool
	}{
		{name: "valid", mutate: func(i *Income) {}},
		{name: "valid recurring", mutate: func(i *Income) { i.IsRecurring = true; i.RecurrencePattern = &weekly }},
		{name: "zero amount", mutate: func(i *Income) { i.Amount = decimal.Zero }, wantErr: true},
		{name: "negative amount", mutate: func(i *Income) { i.Amount = decimal.NewFromInt(-5) }, wantErr: true},
		{name: "cents", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("10.01") }},
		{name: "trailing zero scale", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("10.500") }},
		{name: "sub-cent amount", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("0.001") }, wantErr: true},
		{name: "fractional cents", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("10.005") }, wantErr: true},
		{name: "largest amount", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("9999999999999999.99") }},
		{name: "too many integer digits", mutate: func(i *Income) { i.Amount = decimal.RequireFromString("12345678901234567.5") }, wantErr: true},
		{name: "exactly 1e16", mutate: func(i *Income) { i.Amount = decimal.New(1, 16) }, wantErr: true},
		{name: "short description", mutate: func(i *Income) { i.Description = "ab" }, wantErr: true},
		{name: "blank padded description", mutate: func(i *Income) { i.Description = "  ab  " }, wantErr: true},
		{name: "max description", mutate: func(i *Income) { i.Description = strings.Repeat("x", 500) }},
		{name: "long description", mutate: func(i *Income) { i.Description = strings.Repeat("x", 501) }, wantErr: true},
		{name: "missing date", mutate: func(i *Income) { i.Date = time.Time{} }, wantErr: true},
		{name: "unknown category", mutate: func(i *Income) { i.Category = "lottery" }, wantErr: true},
		{name: "unknown recurrence", mutate: func(i *Income) { i.RecurrencePattern = &bogus }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc := &Income{Entry: validEntry(), Category: IncomeSalary}
			tt.mutate(inc)
			err := inc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpense_NormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		exp       Expense
		wantType  ExpenseType
		wantFixed bool
		wantErr   bool
	}{
		{name: "defaults to variable", exp: Expense{Category: ExpenseFood}, wantType: ExpenseVariable},
		{name: "isFixed implies fixed", exp: Expense{Category: ExpenseHousing, IsFixed: true}, wantType: ExpenseFixed, wantFixed: true},
		{name: "type wins over isFixed", exp: Expense{Category: ExpenseHousing, Type: ExpenseVariable, IsFixed: true}, wantType: ExpenseVariable},
		{name: "unknown type", exp: Expense{Category: ExpenseFood, Type: "sometimes"}, wantType: "sometimes", wantErr: true},
		{name: "unknown category", exp: Expense{Category: "pets"}, wantType: ExpenseVariable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := tt.exp
			exp.Entry = validEntry()
			exp.Normalize()
			if exp.Type != tt.wantType || exp.IsFixed != tt.wantFixed {
				t.Fatalf("normalized to (%s, %t), want (%s, %t)", exp.Type, exp.IsFixed, tt.wantType, tt.wantFixed)
			}
			if err := exp.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSavings_Validate(t *testing.T) {
	goal := decimal.NewFromInt(5000)
	zero := decimal.Zero

	s := &Savings{Entry: validEntry(), Category: SavingsVacation, GoalAmount: &goal}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid savings rejected: %v", err)
	}

	s.GoalAmount = &zero
	if err := s.Validate(); err == nil {
		t.Fatal("zero goal amount should be rejected")
	}

	fractional := decimal.RequireFromString("100.125")
	s.GoalAmount = &fractional
	if err := s.Validate(); !errors.Is(err, ErrAmountPrecision) {
		t.Fatalf("expected ErrAmountPrecision for goal, got %v", err)
	}

	s.GoalAmount = nil
	s.Amount = decimal.Zero
	if err := s.Validate(); !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
	}
}

func TestValidateAmount_Errors(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.001", ErrAmountPrecision},
		{"10.005", ErrAmountPrecision},
		{"12345678901234567.5", ErrAmountTooLarge},
		{"0", ErrNonPositiveAmount},
		{"0.01", nil},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if err := validateAmount(decimal.RequireFromString(tt.amount)); !errors.Is(err, tt.want) {
				t.Fatalf("validateAmount(%s) = %v, want %v", tt.amount, err, tt.want)
			}
		})
	}
}

func TestWindow_HalfOpen(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: end}

	if !w.Contains(start) {
		t.Error("start must be included")
	}
	if w.Contains(end) {
		t.Error("end must be excluded")
	}
	if !w.Contains(end.Add(-time.Nanosecond)) {
		t.Error("instant before end must be included")
	}
	if !(Window{Start: start, End: start}).Empty() {
		t.Error("start == end must be empty")
	}
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)

	cur := MonthWindow(now)
	if !cur.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) || !cur.End.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("current month = %v..%v", cur.Start, cur.End)
	}

	prev := PreviousMonthWindow(now)
	if !prev.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) || !prev.End.Equal(cur.Start) {
		t.Errorf("previous month = %v..%v", prev.Start, prev.End)
	}

	jan := PreviousMonthWindow(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if !jan.Start.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("previous month of January = %v", jan.Start)
	}
}

func TestMonthWindow_UsesUTC(t *testing.T) {
	tz := time.FixedZone("UTC+3", 3*3600)
	// 2024-03-01 01:00 at +3 is still February in UTC.
	now := time.Date(2024, 3, 1, 1, 0, 0, 0, tz)
	if got := MonthWindow(now).Start; got.Month() != time.February {
		t.Fatalf("month window start = %v, want February", got)
	}
}

func TestUser_FullNameAndEmail(t *testing.T) {
	u := User{FirstName: "Ana", LastName: "Lopez"}
	if u.FullName() != "Ana Lopez" {
		t.Errorf("FullName = %q", u.FullName())
	}
	if NormalizeEmail("  Ana@Example.COM ") != "ana@example.com" {
		t.Errorf("NormalizeEmail did not lower-case and trim")
	}
}
