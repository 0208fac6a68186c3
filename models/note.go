package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultNoteColor = "#ffffff"

// TagList is an ordered set of lowercase tags. On input it accepts either
// a JSON array of strings or a single comma-separated string; entries are
// trimmed, lowercased and de-duplicated preserving first occurrence.
type TagList []string

func (tl *TagList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.New("tags must be an array of strings or a comma-separated string")
		}
		raw = strings.Split(s, ",")
	}
	*tl = NormalizeTags(raw)
	return nil
}

// NormalizeTags trims, lowercases and de-duplicates tags in order.
func NormalizeTags(raw []string) TagList {
	tags := make(TagList, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// Value implements the driver.Valuer interface for JSONB storage
func (tl TagList) Value() (driver.Value, error) {
	if tl == nil {
		return json.Marshal(TagList{})
	}
	return json.Marshal(tl)
}

// Scan implements the sql.Scanner interface for JSONB retrieval
func (tl *TagList) Scan(value interface{}) error {
	if value == nil {
		*tl = TagList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, tl)
}

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user"`
	Title     string    `gorm:"not null" json:"title" validate:"required,max=200"`
	Content   string    `gorm:"not null" json:"content" validate:"required,max=10000"`
	Tags      TagList   `gorm:"type:jsonb" json:"tags"`
	Subject   string    `gorm:"not null" json:"subject" validate:"required,max=100"`
	IsPinned  bool      `gorm:"default:false" json:"isPinned"`
	Color     string    `gorm:"default:#ffffff" json:"color" validate:"required,hexcolor"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (n Note) GetID() uuid.UUID     { return n.ID }
func (n Note) GetUserID() uuid.UUID { return n.UserID }
