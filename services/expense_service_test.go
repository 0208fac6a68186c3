package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studentflow/studentflow/models"
	"studentflow/studentflow/testutils"
)

func TestExpenseFromCreateDefaults(t *testing.T) {
	expense, err := expenseFromCreate(uuid.New(), ExpenseCreate{Title: "Lunch", Amount: 12.50})
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultExpenseCategory, expense.Category)
	assert.False(t, expense.Date.IsZero())
}

func TestExpenseFromCreateRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -5} {
		_, err := expenseFromCreate(uuid.New(), ExpenseCreate{Title: "Lunch", Amount: amount})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "Amount")
	}
}

func TestExpenseFromCreateRejectsUnknownCategory(t *testing.T) {
	_, err := expenseFromCreate(uuid.New(), ExpenseCreate{Title: "Lunch", Amount: 5, Category: "snacks"})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Category")
}

func TestApplyExpensePatchRejectsBadCategory(t *testing.T) {
	existing, err := expenseFromCreate(uuid.New(), ExpenseCreate{Title: "Lunch", Amount: 5, Category: "food"})
	assert.NoError(t, err)

	bad := "snacks"
	_, err = applyExpensePatch(existing, ExpensePatch{Category: &bad})
	assert.Error(t, err)
}

func TestExpenseVisibilityAcrossUsers(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	svc := NewExpenseService()
	userA := uuid.New()
	userB := uuid.New()

	created, err := svc.Create(db, userA, ExpenseCreate{Title: "Textbook", Amount: 49.99, Category: "books"})
	assert.NoError(t, err)
	assert.Equal(t, userA, created.UserID)

	listA, err := svc.List(db, userA)
	assert.NoError(t, err)
	if assert.Len(t, listA, 1) {
		assert.Equal(t, "Textbook", listA[0].Title)
		assert.InDelta(t, 49.99, listA[0].Amount, 0.001)
	}

	listB, err := svc.List(db, userB)
	assert.NoError(t, err)
	assert.Empty(t, listB)
}

func TestExpenseListNewestDateFirst(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	svc := NewExpenseService()
	owner := uuid.New()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(db, owner, ExpenseCreate{Title: "Old", Amount: 1, Date: &older})
	assert.NoError(t, err)
	_, err = svc.Create(db, owner, ExpenseCreate{Title: "New", Amount: 1, Date: &newer})
	assert.NoError(t, err)

	expenses, err := svc.List(db, owner)
	assert.NoError(t, err)
	if assert.Len(t, expenses, 2) {
		assert.Equal(t, "New", expenses[0].Title)
		assert.Equal(t, "Old", expenses[1].Title)
	}
}
