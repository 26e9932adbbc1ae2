// Package store is the only owner of persistence: every read re-queries the
// database and nothing is cached outside it. Lookups of a missing id return
// (nil, nil) — "not found" is a valid non-error outcome. Uniqueness
// violations surface as gorm.ErrDuplicatedKey for the caller to handle.
package store

import (
	"errors"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// notFoundAsNil maps gorm's record-not-found to a plain nil result.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// IsDuplicate reports whether err is a uniqueness-constraint violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
