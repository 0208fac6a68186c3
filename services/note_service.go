package services

import (
	"strings"

	"github.com/google/uuid"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
)

type NoteCreate struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Tags     models.TagList `json:"tags"`
	Subject  string         `json:"subject"`
	IsPinned bool           `json:"isPinned"`
	Color    string         `json:"color"`
}

type NotePatch struct {
	Title    *string         `json:"title"`
	Content  *string         `json:"content"`
	Tags     *models.TagList `json:"tags"`
	Subject  *string         `json:"subject"`
	IsPinned *bool           `json:"isPinned"`
	Color    *string         `json:"color"`
}

type NoteCRUDInterface = ResourceServiceInterface[models.Note, NoteCreate, NotePatch]

// NoteService adds free-text search on top of the generic CRUD set.
type NoteService struct {
	ResourceService[models.Note, NoteCreate, NotePatch]
}

func NewNoteService() *NoteService {
	return &NoteService{
		ResourceService: ResourceService[models.Note, NoteCreate, NotePatch]{
			listOrder:  "updated_at DESC",
			fromCreate: noteFromCreate,
			applyPatch: applyNotePatch,
		},
	}
}

// Search lists the caller's notes, optionally narrowed by a free-text
// predicate over title/content/tags and an exact subject match. Both
// filters combine with the owner filter, never replace it.
func (s *NoteService) Search(db *database.Database, userID uuid.UUID, search, subject string) ([]models.Note, error) {
	query := db.DB.Where("user_id = ?", userID)

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}

	notes := []models.Note{}
	if err := query.Order("updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func noteFromCreate(userID uuid.UUID, payload NoteCreate) (models.Note, error) {
	note := models.Note{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    strings.TrimSpace(payload.Title),
		Content:  payload.Content,
		Tags:     models.NormalizeTags(payload.Tags),
		Subject:  strings.TrimSpace(payload.Subject),
		IsPinned: payload.IsPinned,
		Color:    payload.Color,
	}
	if note.Color == "" {
		note.Color = models.DefaultNoteColor
	}
	if err := validateRecord(&note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func applyNotePatch(existing models.Note, patch NotePatch) (models.Note, error) {
	note := existing
	if patch.Title != nil {
		note.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Tags != nil {
		note.Tags = models.NormalizeTags(*patch.Tags)
	}
	if patch.Subject != nil {
		note.Subject = strings.TrimSpace(*patch.Subject)
	}
	if patch.IsPinned != nil {
		note.IsPinned = *patch.IsPinned
	}
	if patch.Color != nil {
		note.Color = *patch.Color
	}
	if err := validateRecord(&note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

var NoteServiceInstance = NewNoteService()
