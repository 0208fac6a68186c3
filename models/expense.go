package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultExpenseCategory = "other"

// ExpenseCategories is the closed set of accepted expense categories.
var ExpenseCategories = []string{"food", "travel", "books", "entertainment", "utilities", "other"}

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	Title       string    `gorm:"not null" json:"title" validate:"required,max=200"`
	Amount      float64   `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Category    string    `gorm:"not null;default:other" json:"category" validate:"required,oneof=food travel books entertainment utilities other"`
	Date        time.Time `gorm:"not null" json:"date" validate:"required"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (e Expense) GetID() uuid.UUID     { return e.ID }
func (e Expense) GetUserID() uuid.UUID { return e.UserID }
