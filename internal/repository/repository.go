// Package repository holds the store-facing CRUD logic shared by the public
// pages and the admin panel: slug-or-generated identifiers, field-presence
// rules on writes, and display ordering on reads.
package repository

import (
	"context"
	"errors"
	"fmt"

	"baanthai-construction-api/internal/models"
)

// ErrNotFound is returned when an id resolves to no document. It is an
// expected outcome for detail pages, not a transient failure.
var ErrNotFound = errors.New("document not found")

// DuplicateIDError reports a caller-supplied slug that already names a
// document in the target collection. The form keeps its state and lets the
// user pick a different id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("identifier %q already exists", e.ID)
}

// HouseRepository is the CRUD surface for portfolio houses. Create decides
// the identifier per the slug policy: a non-blank customID is normalized and
// claimed atomically, a blank one yields a store-generated id.
type HouseRepository interface {
	Create(ctx context.Context, customID string, in models.HouseInput) (models.House, error)
	GetByID(ctx context.Context, id string) (models.House, error)
	List(ctx context.Context) ([]models.House, error)
	ListFeatured(ctx context.Context, limit int) ([]models.House, error)
	Update(ctx context.Context, id string, in models.HouseInput) (models.House, error)
	Delete(ctx context.Context, id string) error
}

// GalleryRepository is the CRUD surface for gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, customID string, in models.GalleryItemInput) (models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (models.GalleryItem, error)
	List(ctx context.Context) ([]models.GalleryItem, error)
	Update(ctx context.Context, id string, in models.GalleryItemInput) (models.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

// ContentRepository reads and overwrites the singleton footer and hero
// documents. Saves are whole-document; there is no partial patch.
type ContentRepository interface {
	GetFooter(ctx context.Context) (models.FooterContent, error)
	SaveFooter(ctx context.Context, content models.FooterContent) (models.FooterContent, error)
	GetHero(ctx context.Context) (models.HeroContent, error)
	SaveHero(ctx context.Context, content models.HeroContent) (models.HeroContent, error)
}

// QuotationRepository stores public quotation submissions. Create is the only
// public write; status changes and deletion are admin operations.
type QuotationRepository interface {
	Create(ctx context.Context, req models.QuotationRequest) (models.QuotationRequest, error)
	List(ctx context.Context) ([]models.QuotationRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}
