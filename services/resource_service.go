package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studentflow/studentflow/database"
	"studentflow/studentflow/models"
)

// ResourceServiceInterface is the ownership-scoped CRUD contract shared by
// all four resource types. Every read is filtered to the caller and every
// mutation checks the record's owner before touching it.
type ResourceServiceInterface[T models.Owned, C any, P any] interface {
	List(db *database.Database, userID uuid.UUID) ([]T, error)
	GetByID(db *database.Database, id string, userID uuid.UUID) (T, error)
	Create(db *database.Database, userID uuid.UUID, payload C) (T, error)
	Update(db *database.Database, id string, userID uuid.UUID, patch P) (T, error)
	Delete(db *database.Database, id string, userID uuid.UUID) error
}

// ResourceService implements ownership-scoped CRUD once, parameterized by a
// create validator and a patch applier. Per-type services instantiate it
// instead of duplicating four near-identical copies.
//
// fromCreate builds a fully validated record (id and owner assigned
// server-side, client-supplied values ignored). applyPatch merges a patch
// over the existing record, recomputes derived fields and re-validates the
// merged result.
type ResourceService[T models.Owned, C any, P any] struct {
	listOrder  string
	fromCreate func(userID uuid.UUID, payload C) (T, error)
	applyPatch func(existing T, patch P) (T, error)
}

func (s *ResourceService[T, C, P]) List(db *database.Database, userID uuid.UUID) ([]T, error) {
	items := []T{}
	result := db.DB.Where("user_id = ?", userID).Order(s.listOrder).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (s *ResourceService[T, C, P]) GetByID(db *database.Database, id string, userID uuid.UUID) (T, error) {
	var zero T
	record, err := s.find(db.DB, id)
	if err != nil {
		return zero, err
	}
	if record.GetUserID() != userID {
		return zero, ErrForbidden
	}
	return record, nil
}

func (s *ResourceService[T, C, P]) Create(db *database.Database, userID uuid.UUID, payload C) (T, error) {
	var zero T
	record, err := s.fromCreate(userID, payload)
	if err != nil {
		return zero, err
	}
	if err := db.DB.Create(&record).Error; err != nil {
		return zero, err
	}
	return record, nil
}

func (s *ResourceService[T, C, P]) Update(db *database.Database, id string, userID uuid.UUID, patch P) (T, error) {
	var zero T
	existing, err := s.find(db.DB, id)
	if err != nil {
		return zero, err
	}

	// Ownership is checked before the patch is even applied.
	if existing.GetUserID() != userID {
		return zero, ErrForbidden
	}

	merged, err := s.applyPatch(existing, patch)
	if err != nil {
		return zero, err
	}

	if err := db.DB.Save(&merged).Error; err != nil {
		return zero, err
	}
	return merged, nil
}

func (s *ResourceService[T, C, P]) Delete(db *database.Database, id string, userID uuid.UUID) error {
	record, err := s.find(db.DB, id)
	if err != nil {
		return err
	}
	if record.GetUserID() != userID {
		return ErrForbidden
	}
	return db.DB.Delete(&record).Error
}

func (s *ResourceService[T, C, P]) find(db *gorm.DB, id string) (T, error) {
	var record T
	if _, err := uuid.Parse(id); err != nil {
		return record, ErrNotFound
	}
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return record, ErrNotFound
		}
		return record, err
	}
	return record, nil
}
