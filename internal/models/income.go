package models

import "fmt"

type IncomeCategory string

const (
	IncomeSalary     IncomeCategory = "salary"
	IncomeBonus      IncomeCategory = "bonus"
	IncomeFreelance  IncomeCategory = "freelance"
	IncomeInvestment IncomeCategory = "investment"
	IncomeGift       IncomeCategory = "gift"
	IncomeOther      IncomeCategory = "other"
)

func (c IncomeCategory) Valid() bool {
	switch c {
	case IncomeSalary, IncomeBonus, IncomeFreelance, IncomeInvestment, IncomeGift, IncomeOther:
		return true
	}
	return false
}

type Income struct {
	Entry
	Category          IncomeCategory     `db:"category"`
	IsRecurring       bool               `db:"is_recurring"`
	RecurrencePattern *RecurrencePattern `db:"recurrence_pattern"`
}

func (i *Income) Validate() error {
	if err := i.Entry.validate(); err != nil {
		return err
	}
	if !i.Category.Valid() {
		return fmt.Errorf("invalid income category %q", i.Category)
	}
	return validateRecurrence(i.RecurrencePattern)
}
