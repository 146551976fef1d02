// Package uploads resolves upload references to CDN URLs and back.
package uploads

import (
	"strings"

	"gorm.io/gorm"

	uploadctl "github.com/bananabr/discourse/internal/db/controller/upload"
	"github.com/bananabr/discourse/internal/db/models"
)

// Resolver looks up uploads and builds their public CDN URLs.
type Resolver struct {
	db      *gorm.DB
	cdnBase string
}

// NewResolver creates a Resolver serving URLs under the given CDN base.
// An empty base serves the upload's canonical URL unchanged.
func NewResolver(db *gorm.DB, cdnBase string) *Resolver {
	return &Resolver{db: db, cdnBase: strings.TrimSuffix(cdnBase, "/")}
}

// FindByID retrieves an upload row by id.
func (r *Resolver) FindByID(id uint64) (*models.Upload, error) {
	return uploadctl.GetByID(r.db, id)
}

// FindByURL retrieves an upload row by its public URL. Both the CDN form and
// the canonical relative form are accepted.
func (r *Resolver) FindByURL(url string) (*models.Upload, error) {
	if r.cdnBase != "" {
		url = strings.TrimPrefix(url, r.cdnBase)
	}
	return uploadctl.GetByURL(r.db, url)
}

// CDNURL returns the public URL for an upload.
func (r *Resolver) CDNURL(up *models.Upload) string {
	if up == nil {
		return ""
	}
	if r.cdnBase == "" {
		return up.URL
	}
	return r.cdnBase + up.URL
}
