package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"studentflow/studentflow/models"
)

type ExpenseCreate struct {
	Title       string     `json:"title"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
}

type ExpensePatch struct {
	Title       *string    `json:"title"`
	Amount      *float64   `json:"amount"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

type ExpenseServiceInterface = ResourceServiceInterface[models.Expense, ExpenseCreate, ExpensePatch]

type ExpenseService = ResourceService[models.Expense, ExpenseCreate, ExpensePatch]

func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		listOrder:  "date DESC",
		fromCreate: expenseFromCreate,
		applyPatch: applyExpensePatch,
	}
}

func expenseFromCreate(userID uuid.UUID, payload ExpenseCreate) (models.Expense, error) {
	expense := models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(payload.Title),
		Amount:      payload.Amount,
		Category:    payload.Category,
		Description: strings.TrimSpace(payload.Description),
	}
	if expense.Category == "" {
		expense.Category = models.DefaultExpenseCategory
	}
	if payload.Date != nil {
		expense.Date = *payload.Date
	} else {
		expense.Date = time.Now().UTC()
	}
	if err := validateRecord(&expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func applyExpensePatch(existing models.Expense, patch ExpensePatch) (models.Expense, error) {
	expense := existing
	if patch.Title != nil {
		expense.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if patch.Category != nil {
		expense.Category = *patch.Category
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.Description != nil {
		expense.Description = strings.TrimSpace(*patch.Description)
	}
	if err := validateRecord(&expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

var ExpenseServiceInstance = NewExpenseService()
