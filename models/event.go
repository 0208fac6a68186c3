package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultEventColor = "#3B82F6"

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	Title       string    `gorm:"not null" json:"title" validate:"required,max=200"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	// Columns are named start_time/end_time because "end" is a reserved
	// word in Postgres; the wire names stay start/end.
	Start     time.Time `gorm:"column:start_time;not null" json:"start" validate:"required"`
	End       time.Time `gorm:"column:end_time;not null" json:"end" validate:"required,gtfield=Start"`
	Category  string    `gorm:"not null" json:"category" validate:"required,max=100"`
	Color     string    `gorm:"default:#3B82F6" json:"color" validate:"required,hexcolor"`
	IsAllDay  bool      `gorm:"default:false" json:"isAllDay"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (e Event) GetID() uuid.UUID     { return e.ID }
func (e Event) GetUserID() uuid.UUID { return e.UserID }
