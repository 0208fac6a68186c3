package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"studentflow/studentflow/models"
)

// Collection holds the local ordered copy of one resource type and notifies
// listeners whenever it changes. Entries only ever change as a result of a
// confirmed server response.
type Collection[T models.Owned] struct {
	mu        sync.RWMutex
	items     []T
	listeners []func([]T)
}

// Items returns a copy of the current collection contents.
func (col *Collection[T]) Items() []T {
	col.mu.RLock()
	defer col.mu.RUnlock()
	out := make([]T, len(col.items))
	copy(out, col.items)
	return out
}

// Len returns the number of held entries.
func (col *Collection[T]) Len() int {
	col.mu.RLock()
	defer col.mu.RUnlock()
	return len(col.items)
}

// OnChange registers a listener invoked with a snapshot after every
// reconciliation, so dependent views re-derive automatically.
func (col *Collection[T]) OnChange(fn func([]T)) {
	col.mu.Lock()
	col.listeners = append(col.listeners, fn)
	col.mu.Unlock()
}

func (col *Collection[T]) mutate(apply func([]T) []T) {
	col.mu.Lock()
	col.items = apply(col.items)
	snapshot := make([]T, len(col.items))
	copy(snapshot, col.items)
	listeners := col.listeners
	col.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (col *Collection[T]) replaceAll(items []T) {
	col.mutate(func([]T) []T { return items })
}

func (col *Collection[T]) insert(item T, prepend bool) {
	col.mutate(func(items []T) []T {
		if prepend {
			return append([]T{item}, items...)
		}
		return append(items, item)
	})
}

func (col *Collection[T]) replaceByID(item T) {
	col.mutate(func(items []T) []T {
		for i := range items {
			if items[i].GetID() == item.GetID() {
				items[i] = item
			}
		}
		return items
	})
}

func (col *Collection[T]) removeByID(id uuid.UUID) {
	col.mutate(func(items []T) []T {
		kept := items[:0]
		for _, item := range items {
			if item.GetID() != id {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// ResourceSet binds a Collection to its server endpoints. Every operation
// performs the network call first and reconciles only on success; on
// failure the error is returned and the collection is left untouched.
type ResourceSet[T models.Owned, C any, P any] struct {
	client  *Client
	path    string
	prepend bool
	col     Collection[T]
}

func newResourceSet[T models.Owned, C any, P any](client *Client, path string, prepend bool) *ResourceSet[T, C, P] {
	return &ResourceSet[T, C, P]{client: client, path: path, prepend: prepend}
}

// Load fetches the owner-scoped list and replaces the whole collection.
func (r *ResourceSet[T, C, P]) Load(ctx context.Context) error {
	items := []T{}
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return err
	}
	r.col.replaceAll(items)
	return nil
}

// Add creates the record on the server, then inserts the server-confirmed
// record (with its assigned id) into the collection.
func (r *ResourceSet[T, C, P]) Add(ctx context.Context, payload C) (T, error) {
	var created T
	if err := r.client.do(ctx, http.MethodPost, r.path, payload, &created); err != nil {
		return created, err
	}
	r.col.insert(created, r.prepend)
	return created, nil
}

// Update patches the record on the server, then replaces the matching
// entry by id.
func (r *ResourceSet[T, C, P]) Update(ctx context.Context, id uuid.UUID, patch P) (T, error) {
	var updated T
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+id.String(), patch, &updated); err != nil {
		return updated, err
	}
	r.col.replaceByID(updated)
	return updated, nil
}

// Delete removes the record on the server, then drops the matching entry.
func (r *ResourceSet[T, C, P]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.do(ctx, http.MethodDelete, r.path+"/"+id.String(), nil, nil); err != nil {
		return err
	}
	r.col.removeByID(id)
	return nil
}

// Get fetches a single record by id without touching the collection.
func (r *ResourceSet[T, C, P]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var record T
	err := r.client.do(ctx, http.MethodGet, r.path+"/"+id.String(), nil, &record)
	return record, err
}

// Items returns a copy of the held collection.
func (r *ResourceSet[T, C, P]) Items() []T { return r.col.Items() }

// OnChange registers a listener for collection changes.
func (r *ResourceSet[T, C, P]) OnChange(fn func([]T)) { r.col.OnChange(fn) }

func (r *ResourceSet[T, C, P]) clear() { r.col.replaceAll([]T{}) }
