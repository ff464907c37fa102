package repository

import (
	"mybalance/internal/models"

	"go.uber.org/zap"
)

type ExpenseRepository struct {
	*ledgerRepository[*models.Expense]
}

func NewExpenseRepository(db DBTX, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{newLedgerRepository(db, logger, ledgerSchema[*models.Expense]{
		table:   "expenses",
		columns: []string{"category", "type", "is_fixed", "is_recurring", "recurrence_pattern"},
		values: func(e *models.Expense) []any {
			return []any{string(e.Category), string(e.Type), e.IsFixed, e.IsRecurring, patternToNullable(e.RecurrencePattern)}
		},
		newRecord: func() *models.Expense { return &models.Expense{} },
		targets: func(e *models.Expense) ([]any, func()) {
			var category, typ string
			var pattern *string
			return []any{&category, &typ, &e.IsFixed, &e.IsRecurring, &pattern}, func() {
				e.Category = models.ExpenseCategory(category)
				e.Type = models.ExpenseType(typ)
				e.RecurrencePattern = nullableToPattern(pattern)
			}
		},
	})}
}
