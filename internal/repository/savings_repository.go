package repository

import (
	"time"

	"mybalance/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SavingsRepository struct {
	*ledgerRepository[*models.Savings]
}

func NewSavingsRepository(db DBTX, logger *zap.Logger) *SavingsRepository {
	return &SavingsRepository{newLedgerRepository(db, logger, ledgerSchema[*models.Savings]{
		table:   "savings",
		columns: []string{"category", "goal_amount", "target_date"},
		values: func(s *models.Savings) []any {
			goal := decimal.NullDecimal{}
			if s.GoalAmount != nil {
				goal = decimal.NewNullDecimal(*s.GoalAmount)
			}
			return []any{string(s.Category), goal, s.TargetDate}
		},
		newRecord: func() *models.Savings { return &models.Savings{} },
		targets: func(s *models.Savings) ([]any, func()) {
			var category string
			var goal decimal.NullDecimal
			var target *time.Time
			return []any{&category, &goal, &target}, func() {
				s.Category = models.SavingsCategory(category)
				if goal.Valid {
					g := goal.Decimal
					s.GoalAmount = &g
				}
				s.TargetDate = target
			}
		},
	})}
}
