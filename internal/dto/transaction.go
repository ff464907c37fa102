package dto

import (
	"time"

	"mybalance/internal/models"

	"github.com/shopspring/decimal"
)

type IncomeRequest struct {
	Amount            decimal.Decimal `json:"amount" swaggertype:"number"`
	Category          string          `json:"category" enums:"salary,bonus,freelance,investment,gift,other"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurrencePattern *string         `json:"recurrencePattern,omitempty" enums:"weekly,monthly,yearly"`
}

func (r IncomeRequest) ToModel() (*models.Income, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &models.Income{
		Entry:             newEntry(r.Amount, r.Description, date),
		Category:          models.IncomeCategory(r.Category),
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: toPattern(r.RecurrencePattern),
	}, nil
}

type IncomeResponse struct {
	ID                int64           `json:"id"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"number"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurrencePattern *string         `json:"recurrencePattern,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func NewIncomeResponse(i *models.Income) IncomeResponse {
	return IncomeResponse{
		ID:                i.ID,
		Amount:            i.Amount,
		Category:          string(i.Category),
		Description:       i.Description,
		Date:              i.Date.Format(DateLayout),
		IsRecurring:       i.IsRecurring,
		RecurrencePattern: fromPattern(i.RecurrencePattern),
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

type ExpenseRequest struct {
	Amount            decimal.Decimal `json:"amount" swaggertype:"number"`
	Category          string          `json:"category" enums:"housing,food,transportation,entertainment,healthcare,education,shopping,utilities,other"`
	Type              string          `json:"type,omitempty" enums:"fixed,variable"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	IsFixed           bool            `json:"isFixed"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurrencePattern *string         `json:"recurrencePattern,omitempty" enums:"weekly,monthly,yearly"`
}

func (r ExpenseRequest) ToModel() (*models.Expense, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	exp := &models.Expense{
		Entry:             newEntry(r.Amount, r.Description, date),
		Category:          models.ExpenseCategory(r.Category),
		Type:              models.ExpenseType(r.Type),
		IsFixed:           r.IsFixed,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: toPattern(r.RecurrencePattern),
	}
	exp.Normalize()
	return exp, nil
}

type ExpenseResponse struct {
	ID                int64           `json:"id"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"number"`
	Category          string          `json:"category"`
	Type              string          `json:"type"`
	Description       string          `json:"description"`
	Date              string          `json:"date"`
	IsFixed           bool            `json:"isFixed"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurrencePattern *string         `json:"recurrencePattern,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                e.ID,
		Amount:            e.Amount,
		Category:          string(e.Category),
		Type:              string(e.Type),
		Description:       e.Description,
		Date:              e.Date.Format(DateLayout),
		IsFixed:           e.IsFixed,
		IsRecurring:       e.IsRecurring,
		RecurrencePattern: fromPattern(e.RecurrencePattern),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

type SavingsRequest struct {
	Amount      decimal.Decimal  `json:"amount" swaggertype:"number"`
	Category    string           `json:"category" enums:"emergency_fund,vacation,retirement,investment,goal,other"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	GoalAmount  *decimal.Decimal `json:"goalAmount,omitempty" swaggertype:"number"`
	TargetDate  *string          `json:"targetDate,omitempty"`
}

func (r SavingsRequest) ToModel() (*models.Savings, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	target, err := parseOptionalDate(r.TargetDate)
	if err != nil {
		return nil, err
	}
	return &models.Savings{
		Entry:      newEntry(r.Amount, r.Description, date),
		Category:   models.SavingsCategory(r.Category),
		GoalAmount: r.GoalAmount,
		TargetDate: target,
	}, nil
}

type SavingsResponse struct {
	ID          int64            `json:"id"`
	Amount      decimal.Decimal  `json:"amount" swaggertype:"number"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	GoalAmount  *decimal.Decimal `json:"goalAmount,omitempty" swaggertype:"number"`
	TargetDate  *string          `json:"targetDate,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func NewSavingsResponse(s *models.Savings) SavingsResponse {
	return SavingsResponse{
		ID:          s.ID,
		Amount:      s.Amount,
		Category:    string(s.Category),
		Description: s.Description,
		Date:        s.Date.Format(DateLayout),
		GoalAmount:  s.GoalAmount,
		TargetDate:  formatOptionalDate(s.TargetDate),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func newEntry(amount decimal.Decimal, description string, date time.Time) models.Entry {
	return models.Entry{
		Amount:      amount,
		Description: description,
		Date:        date,
	}
}

func toPattern(s *string) *models.RecurrencePattern {
	if s == nil || *s == "" {
		return nil
	}
	p := models.RecurrencePattern(*s)
	return &p
}

func fromPattern(p *models.RecurrencePattern) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}
