package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"studentflow/studentflow/models"
)

// TaskCreate is the client-settable creation payload; id and owner are
// never read from it.
type TaskCreate struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Completed    bool       `json:"completed"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	Category     string     `json:"category"`
	TimeEstimate *int       `json:"timeEstimate"`
}

// TaskPatch is a partial update; nil fields leave stored values untouched.
type TaskPatch struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Completed    *bool      `json:"completed"`
	Priority     *string    `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	Category     *string    `json:"category"`
	TimeEstimate *int       `json:"timeEstimate"`
}

type TaskServiceInterface = ResourceServiceInterface[models.Task, TaskCreate, TaskPatch]

type TaskService = ResourceService[models.Task, TaskCreate, TaskPatch]

func NewTaskService() *TaskService {
	return &TaskService{
		listOrder:  "created_at DESC",
		fromCreate: taskFromCreate,
		applyPatch: applyTaskPatch,
	}
}

func taskFromCreate(userID uuid.UUID, payload TaskCreate) (models.Task, error) {
	task := models.Task{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        strings.TrimSpace(payload.Title),
		Description:  strings.TrimSpace(payload.Description),
		Completed:    payload.Completed,
		Priority:     payload.Priority,
		DueDate:      payload.DueDate,
		Category:     strings.TrimSpace(payload.Category),
		TimeEstimate: payload.TimeEstimate,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Completed {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}
	if err := validateRecord(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func applyTaskPatch(existing models.Task, patch TaskPatch) (models.Task, error) {
	task := existing
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Category != nil {
		task.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.TimeEstimate != nil {
		task.TimeEstimate = patch.TimeEstimate
	}

	// completedAt is derived: flipping completed on stamps it, flipping it
	// off clears it, and an absent or unchanged flag leaves it alone.
	if patch.Completed != nil && *patch.Completed != existing.Completed {
		task.Completed = *patch.Completed
		if task.Completed {
			now := time.Now().UTC()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := validateRecord(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

var TaskServiceInstance = NewTaskService()
