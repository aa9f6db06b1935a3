package models

import (
	"time"
)

// GalleryItem is a completed-work photo entry as persisted. HouseID is a soft
// link to a House: it is resolved by a separate lookup at read time and
// carries no referential integrity. An absent Title or HouseID is a missing
// key in the document, not an empty string; omitempty mirrors that on reads.
type GalleryItem struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	Order       int       `bson:"order" json:"order"`
	HouseID     string    `bson:"houseId,omitempty" json:"houseId,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// GalleryItemInput is the form-side working state for a create or update.
// Optional fields keep the provided/absent distinction so an unlinked house
// results in the houseId key being removed, never written empty.
type GalleryItemInput struct {
	Title       Optional[string]
	Description string
	ImageURL    string
	Images      []string
	Order       int
	HouseID     Optional[string]
}

func (in GalleryItemInput) Validate() error {
	if in.Description == "" {
		return NewValidationError("description", "description is required")
	}
	if in.ImageURL == "" {
		return NewValidationError("imageUrl", "image is required")
	}
	return nil
}
