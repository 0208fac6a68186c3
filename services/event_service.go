package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
)

type EventCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Category    string     `json:"category"`
	Color       string     `json:"color"`
	IsAllDay    bool       `json:"isAllDay"`
}

type EventPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Category    *string    `json:"category"`
	Color       *string    `json:"color"`
	IsAllDay    *bool      `json:"isAllDay"`
}

type EventCRUDInterface = ResourceServiceInterface[models.Event, EventCreate, EventPatch]

// EventService adds the calendar-day lookup on top of the generic CRUD set.
type EventService struct {
	ResourceService[models.Event, EventCreate, EventPatch]
}

func NewEventService() *EventService {
	return &EventService{
		ResourceService: ResourceService[models.Event, EventCreate, EventPatch]{
			listOrder:  "start_time ASC",
			fromCreate: eventFromCreate,
			applyPatch: applyEventPatch,
		},
	}
}

// GetByDate returns the soonest-starting event of the caller whose start
// falls on the given calendar day (UTC), or ErrNotFound.
func (s *EventService) GetByDate(db *database.Database, userID uuid.UUID, day time.Time) (models.Event, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var event models.Event
	err := db.DB.
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, dayStart, dayEnd).
		Order("start_time ASC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func eventFromCreate(userID uuid.UUID, payload EventCreate) (models.Event, error) {
	event := models.Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(payload.Title),
		Description: strings.TrimSpace(payload.Description),
		Category:    strings.TrimSpace(payload.Category),
		Color:       payload.Color,
		IsAllDay:    payload.IsAllDay,
	}
	if payload.Start != nil {
		event.Start = *payload.Start
	}
	if payload.End != nil {
		event.End = *payload.End
	}
	if event.Color == "" {
		event.Color = models.DefaultEventColor
	}
	if err := validateRecord(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func applyEventPatch(existing models.Event, patch EventPatch) (models.Event, error) {
	event := existing
	if patch.Title != nil {
		event.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		event.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Start != nil {
		event.Start = *patch.Start
	}
	if patch.End != nil {
		event.End = *patch.End
	}
	if patch.Category != nil {
		event.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Color != nil {
		event.Color = *patch.Color
	}
	if patch.IsAllDay != nil {
		event.IsAllDay = *patch.IsAllDay
	}

	// end > start is re-checked on the merged result, so a patch moving
	// end before the existing start is rejected.
	if err := validateRecord(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

var EventServiceInstance = NewEventService()
