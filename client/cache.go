package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"studentflow/studentflow/models"
	"studentflow/studentflow/services"
)

// Cache is the session-scoped store of all four collections. Construct one
// after login, load it, and Clear it on logout; views reach resources only
// through it.
type Cache struct {
	client *Client

	Tasks    *ResourceSet[models.Task, services.TaskCreate, services.TaskPatch]
	Events   *ResourceSet[models.Event, services.EventCreate, services.EventPatch]
	Expenses *ResourceSet[models.Expense, services.ExpenseCreate, services.ExpensePatch]
	Notes    *ResourceSet[models.Note, services.NoteCreate, services.NotePatch]
}

func NewCache(client *Client) *Cache {
	return &Cache{
		client: client,
		// Insert position mirrors each view's natural order: newest tasks,
		// expenses and notes go first, events go to the end of the day list.
		Tasks:    newResourceSet[models.Task, services.TaskCreate, services.TaskPatch](client, "/api/tasks", true),
		Events:   newResourceSet[models.Event, services.EventCreate, services.EventPatch](client, "/api/events", false),
		Expenses: newResourceSet[models.Expense, services.ExpenseCreate, services.ExpensePatch](client, "/api/expenses", true),
		Notes:    newResourceSet[models.Note, services.NoteCreate, services.NotePatch](client, "/api/notes", true),
	}
}

// LoadAll refreshes all four collections from the server.
func (cache *Cache) LoadAll(ctx context.Context) error {
	if err := cache.Tasks.Load(ctx); err != nil {
		return err
	}
	if err := cache.Events.Load(ctx); err != nil {
		return err
	}
	if err := cache.Expenses.Load(ctx); err != nil {
		return err
	}
	return cache.Notes.Load(ctx)
}

// Clear empties every collection, notifying listeners. Call on logout.
func (cache *Cache) Clear() {
	cache.Tasks.clear()
	cache.Events.clear()
	cache.Expenses.clear()
	cache.Notes.clear()
}

// SearchNotes queries the server-side note search; results are returned
// directly and do not replace the held collection.
func (cache *Cache) SearchNotes(ctx context.Context, search, subject string) ([]models.Note, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if subject != "" {
		params.Set("subject", subject)
	}

	notes := []models.Note{}
	if err := cache.client.do(ctx, http.MethodGet, queryPath("/api/notes", params), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// EventByDate fetches the event starting on the given calendar day, if any.
func (cache *Cache) EventByDate(ctx context.Context, day time.Time) (models.Event, error) {
	params := url.Values{}
	params.Set("date", day.Format("2006-01-02"))

	var event models.Event
	if err := cache.client.do(ctx, http.MethodGet, queryPath("/api/events", params), nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}
