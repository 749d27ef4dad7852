// Package registry wraps the media table behind typed lookups so
// callers match on sentinel errors instead of raw gorm ones
package registry

import (
	"errors"

	"televault/media-bot/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrConflict is returned when an insert trips the unique
	// constraint on file_id or public_id
	ErrConflict = errors.New("duplicate media record")

	// ErrNotFound is returned when no row matches a lookup
	ErrNotFound = errors.New("media record not found")
)

type Registry struct {
	db *gorm.DB
}

// New requires a gorm DB opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey across drivers
func New(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// FindByFileID looks up a record by its provider-assigned file id
func (r *Registry) FindByFileID(fileID string) (*model.Media, error) {
	var m model.Media

	err := r.db.
		Where("file_id = ?", fileID).
		First(&m).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &m, nil
}

// FindByPublicID looks up a record by the short id carried in share links
func (r *Registry) FindByPublicID(publicID string) (*model.Media, error) {
	var m model.Media

	err := r.db.
		Where("public_id = ?", publicID).
		First(&m).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &m, nil
}

// Insert persists a new record and fills in its assigned surrogate key.
// The commit is synchronous, the row is durable once this returns
func (r *Registry) Insert(m *model.Media) error {
	err := r.db.Create(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}

		return err
	}

	return nil
}

// Delete removes the row for a public id and reports whether one was
// removed. Deleting an absent row is not an error
func (r *Registry) Delete(publicID string) (bool, error) {
	res := r.db.
		Where("public_id = ?", publicID).
		Delete(&model.Media{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
