package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type SavingsCategory string

const (
	SavingsEmergencyFund SavingsCategory = "emergency_fund"
	SavingsVacation      SavingsCategory = "vacation"
	SavingsRetirement    SavingsCategory = "retirement"
	SavingsInvestment    SavingsCategory = "investment"
	SavingsGoal          SavingsCategory = "goal"
	SavingsOther         SavingsCategory = "other"
)

func (c SavingsCategory) Valid() bool {
	switch c {
	case SavingsEmergencyFund, SavingsVacation, SavingsRetirement, SavingsInvestment, SavingsGoal, SavingsOther:
		return true
	}
	return false
}

type Savings struct {
	Entry
	Category   SavingsCategory  `db:"category"`
	GoalAmount *decimal.Decimal `db:"goal_amount"`
	TargetDate *time.Time       `db:"target_date"`
}

func (s *Savings) Validate() error {
	if err := s.Entry.validate(); err != nil {
		return err
	}
	if !s.Category.Valid() {
		return fmt.Errorf("invalid savings category %q", s.Category)
	}
	if s.GoalAmount != nil {
		if err := validateAmount(*s.GoalAmount); err != nil {
			return fmt.Errorf("goal %w", err)
		}
	}
	return nil
}
