package client

import (
	"sort"
	"time"

	"studentflow/studentflow/models"
)

// Derived read models. All of these are pure functions of collection
// contents; hook them to OnChange so they re-derive on every change.

type TaskStats struct {
	Total     int
	Completed int
	Pending   int
}

func ComputeTaskStats(tasks []models.Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	return stats
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

// ExpenseTotalsByCategory sums amounts per category for chart views.
func ExpenseTotalsByCategory(expenses []models.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, expense := range expenses {
		totals[expense.Category] += expense.Amount
	}
	return totals
}

// UpcomingEvents returns up to limit events starting at or after now,
// soonest first.
func UpcomingEvents(events []models.Event, now time.Time, limit int) []models.Event {
	upcoming := make([]models.Event, 0, limit)
	for _, event := range events {
		if !event.Start.Before(now) {
			upcoming = append(upcoming, event)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Start.Before(upcoming[j].Start) })
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// PinnedNotes filters pinned notes preserving collection order.
func PinnedNotes(notes []models.Note) []models.Note {
	pinned := []models.Note{}
	for _, note := range notes {
		if note.IsPinned {
			pinned = append(pinned, note)
		}
	}
	return pinned
}
