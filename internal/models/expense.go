package models

import "fmt"

type ExpenseCategory string

const (
	ExpenseHousing        ExpenseCategory = "housing"
	ExpenseFood           ExpenseCategory = "food"
	ExpenseTransportation ExpenseCategory = "transportation"
	ExpenseEntertainment  ExpenseCategory = "entertainment"
	ExpenseHealthcare     ExpenseCategory = "healthcare"
	ExpenseEducation      ExpenseCategory = "education"
	ExpenseShopping       ExpenseCategory = "shopping"
	ExpenseUtilities      ExpenseCategory = "utilities"
	ExpenseOther          ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseHousing, ExpenseFood, ExpenseTransportation, ExpenseEntertainment,
		ExpenseHealthcare, ExpenseEducation, ExpenseShopping, ExpenseUtilities, ExpenseOther:
		return true
	}
	return false
}

type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "fixed"
	ExpenseVariable ExpenseType = "variable"
)

type Expense struct {
	Entry
	Category          ExpenseCategory    `db:"category"`
	Type              ExpenseType        `db:"type"`
	IsFixed           bool               `db:"is_fixed"`
	IsRecurring       bool               `db:"is_recurring"`
	RecurrencePattern *RecurrencePattern `db:"recurrence_pattern"`
}

// Normalize reconciles Type and IsFixed: an explicit type wins, otherwise IsFixed decides.
func (e *Expense) Normalize() {
	switch e.Type {
	case ExpenseFixed:
		e.IsFixed = true
	case ExpenseVariable:
		e.IsFixed = false
	case "":
		if e.IsFixed {
			e.Type = ExpenseFixed
		} else {
			e.Type = ExpenseVariable
		}
	}
}

func (e *Expense) Validate() error {
	if err := e.Entry.validate(); err != nil {
		return err
	}
	if !e.Category.Valid() {
		return fmt.Errorf("invalid expense category %q", e.Category)
	}
	if e.Type != ExpenseFixed && e.Type != ExpenseVariable {
		return fmt.Errorf("invalid expense type %q", e.Type)
	}
	if (e.Type == ExpenseFixed) != e.IsFixed {
		return fmt.Errorf("expense type %q contradicts isFixed=%t", e.Type, e.IsFixed)
	}
	return validateRecurrence(e.RecurrencePattern)
}
