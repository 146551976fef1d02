// Package upload provides lookup operations for upload rows.
package upload

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bananabr/discourse/internal/db/models"
)

var (
	// ErrUploadNotFound is returned when no upload matches the lookup.
	ErrUploadNotFound = errors.New("upload not found")
	// ErrUploadURLEmpty is returned when looking up an upload with an empty URL.
	ErrUploadURLEmpty = errors.New("upload url cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves an upload by its ID.
func GetByID(db *gorm.DB, id uint64) (*models.Upload, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var up models.Upload
	result := db.First(&up, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, result.Error
	}

	return &up, nil
}

// GetByURL retrieves an upload by its canonical URL.
func GetByURL(db *gorm.DB, url string) (*models.Upload, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if url == "" {
		return nil, ErrUploadURLEmpty
	}

	var up models.Upload
	result := db.Where("url = ?", url).First(&up)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, result.Error
	}

	return &up, nil
}
