package models

import (
	"time"

	"github.com/google/uuid"
)

// Task priorities accepted on the wire.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user"`
	Title       string     `gorm:"not null" json:"title" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=1000"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Priority    string     `gorm:"default:medium" json:"priority" validate:"required,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `gorm:"not null" json:"category" validate:"required,max=100"`
	// TimeEstimate is in minutes.
	TimeEstimate *int       `json:"timeEstimate,omitempty" validate:"omitempty,min=1"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updatedAt"`
}

func (t Task) GetID() uuid.UUID     { return t.ID }
func (t Task) GetUserID() uuid.UUID { return t.UserID }
