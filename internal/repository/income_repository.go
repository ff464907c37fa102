package repository

import (
	"mybalance/internal/models"

	"go.uber.org/zap"
)

type IncomeRepository struct {
	*ledgerRepository[*models.Income]
}

func NewIncomeRepository(db DBTX, logger *zap.Logger) *IncomeRepository {
	return &IncomeRepository{newLedgerRepository(db, logger, ledgerSchema[*models.Income]{
		table:   "incomes",
		columns: []string{"category", "is_recurring", "recurrence_pattern"},
		values: func(i *models.Income) []any {
			return []any{string(i.Category), i.IsRecurring, patternToNullable(i.RecurrencePattern)}
		},
		newRecord: func() *models.Income { return &models.Income{} },
		targets: func(i *models.Income) ([]any, func()) {
			var category string
			var pattern *string
			return []any{&category, &i.IsRecurring, &pattern}, func() {
				i.Category = models.IncomeCategory(category)
				i.RecurrencePattern = nullableToPattern(pattern)
			}
		},
	})}
}

func patternToNullable(p *models.RecurrencePattern) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

func nullableToPattern(s *string) *models.RecurrencePattern {
	if s == nil {
		return nil
	}
	p := models.RecurrencePattern(*s)
	return &p
}
