package models

import (
	"time"
)

// HouseSpecifications holds the free-form spec strings shown on a house
// detail page. The three work-detail pairs are independently named labels,
// not a list, matching the admin form layout.
type HouseSpecifications struct {
	Bedrooms          string `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms         string `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Area              string `bson:"area,omitempty" json:"area,omitempty"`
	WorkDetail1Label  string `bson:"workDetail1Label,omitempty" json:"workDetail1Label,omitempty"`
	WorkDetail1Detail string `bson:"workDetail1Detail,omitempty" json:"workDetail1Detail,omitempty"`
	WorkDetail2Label  string `bson:"workDetail2Label,omitempty" json:"workDetail2Label,omitempty"`
	WorkDetail2Detail string `bson:"workDetail2Detail,omitempty" json:"workDetail2Detail,omitempty"`
	WorkDetail3Label  string `bson:"workDetail3Label,omitempty" json:"workDetail3Label,omitempty"`
	WorkDetail3Detail string `bson:"workDetail3Detail,omitempty" json:"workDetail3Detail,omitempty"`
}

// House is a portfolio entry. ID is either a caller-supplied slug or a
// store-generated identifier, set once at creation and immutable after.
type House struct {
	ID              string              `bson:"_id" json:"id"`
	Title           string              `bson:"title" json:"title"`
	Price           string              `bson:"price" json:"price"` // free-form, e.g. "3.2 ล้านบาท"
	Description     string              `bson:"description,omitempty" json:"description,omitempty"`
	FullDescription string              `bson:"fullDescription,omitempty" json:"fullDescription,omitempty"`
	MainImage       string              `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	Images          []string            `bson:"images,omitempty" json:"images,omitempty"`
	Specifications  HouseSpecifications `bson:"specifications" json:"specifications"`
	Features        []string            `bson:"features,omitempty" json:"features,omitempty"`
	Featured        bool                `bson:"featured" json:"featured"`
	Order           int                 `bson:"order" json:"order"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// HouseInput is the form-side working state for a create or update. Optional
// text fields keep the provided/absent distinction so an emptied description
// is removed from the document rather than stored as "".
type HouseInput struct {
	Title           string
	Price           string
	Description     Optional[string]
	FullDescription Optional[string]
	MainImage       string
	Images          []string
	Specifications  HouseSpecifications
	Features        []string
	Featured        bool
	Order           int
}

// Validate checks the fields required before any write is attempted.
func (in HouseInput) Validate() error {
	if in.Title == "" {
		return NewValidationError("title", "title is required")
	}
	if in.Price == "" {
		return NewValidationError("price", "price is required")
	}
	if in.MainImage == "" {
		return NewValidationError("mainImage", "main image is required")
	}
	return nil
}
