package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"studentflow/studentflow/models"
	"studentflow/studentflow/testutils"
)

func TestNoteFromCreateNormalizesTags(t *testing.T) {
	note, err := noteFromCreate(uuid.New(), NoteCreate{
		Title:   "Calc",
		Content: "derivatives",
		Subject: "math",
		Tags:    models.TagList{"Exam", " Midterm ", "exam"},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TagList{"exam", "midterm"}, note.Tags)
	assert.Equal(t, models.DefaultNoteColor, note.Color)
}

func TestNoteFromCreateRejectsMissingContent(t *testing.T) {
	_, err := noteFromCreate(uuid.New(), NoteCreate{Title: "Calc", Subject: "math"})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Content")
}

func TestNoteSearch(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	svc := NewNoteService()
	owner := uuid.New()
	other := uuid.New()

	_, err := svc.Create(db, owner, NoteCreate{
		Title: "Derivatives", Content: "chain rule", Subject: "math",
		Tags: models.TagList{"calculus"},
	})
	assert.NoError(t, err)
	_, err = svc.Create(db, owner, NoteCreate{
		Title: "WW2", Content: "dates and places", Subject: "history",
	})
	assert.NoError(t, err)
	_, err = svc.Create(db, other, NoteCreate{
		Title: "Derivatives too", Content: "someone else's chain rule", Subject: "math",
	})
	assert.NoError(t, err)

	t.Run("no filters returns all owned notes", func(t *testing.T) {
		notes, err := svc.Search(db, owner, "", "")
		assert.NoError(t, err)
		assert.Len(t, notes, 2)
	})

	t.Run("free text matches title", func(t *testing.T) {
		notes, err := svc.Search(db, owner, "derivatives", "")
		assert.NoError(t, err)
		if assert.Len(t, notes, 1) {
			assert.Equal(t, "Derivatives", notes[0].Title)
		}
	})

	t.Run("free text matches content", func(t *testing.T) {
		notes, err := svc.Search(db, owner, "chain rule", "")
		assert.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("free text matches tags", func(t *testing.T) {
		notes, err := svc.Search(db, owner, "calculus", "")
		assert.NoError(t, err)
		assert.Len(t, notes, 1)
	})

	t.Run("subject filter is exact", func(t *testing.T) {
		notes, err := svc.Search(db, owner, "", "history")
		assert.NoError(t, err)
		if assert.Len(t, notes, 1) {
			assert.Equal(t, "WW2", notes[0].Title)
		}
	})

	t.Run("filters combine with the owner filter", func(t *testing.T) {
		// The other user's math note must never leak in.
		notes, err := svc.Search(db, owner, "chain rule", "math")
		assert.NoError(t, err)
		if assert.Len(t, notes, 1) {
			assert.Equal(t, owner, notes[0].UserID)
		}
	})
}

func TestNoteUpdateRefreshesOrdering(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	svc := NewNoteService()
	owner := uuid.New()

	first, err := svc.Create(db, owner, NoteCreate{Title: "first", Content: "a", Subject: "s"})
	assert.NoError(t, err)
	second, err := svc.Create(db, owner, NoteCreate{Title: "second", Content: "b", Subject: "s"})
	assert.NoError(t, err)

	// Touching the older note moves it to the front of the
	// most-recently-updated ordering.
	content := "a, revised"
	_, err = svc.Update(db, first.ID.String(), owner, NotePatch{Content: &content})
	assert.NoError(t, err)

	notes, err := svc.List(db, owner)
	assert.NoError(t, err)
	if assert.Len(t, notes, 2) {
		assert.Equal(t, first.ID, notes[0].ID)
		assert.Equal(t, second.ID, notes[1].ID)
	}
}
