package models

import "time"

// Well-known ids inside the site_content collection. Each singleton is fully
// overwritten on save; there is no partial patch.
const (
	FooterContentID = "footer"
	HeroContentID   = "hero"
)

// FooterContent is the single editable footer document.
type FooterContent struct {
	ID           string    `bson:"_id" json:"-"`
	CompanyName  string    `bson:"companyName" json:"companyName"`
	Tagline      string    `bson:"tagline" json:"tagline"`
	Description  string    `bson:"description" json:"description"`
	Address      string    `bson:"address" json:"address"`
	District     string    `bson:"district" json:"district"`
	City         string    `bson:"city" json:"city"`
	PostalCode   string    `bson:"postalCode" json:"postalCode"`
	Phone        string    `bson:"phone" json:"phone"`
	LineID       string    `bson:"lineId" json:"lineId"`
	LineURL      string    `bson:"lineUrl" json:"lineUrl"`
	FacebookURL  string    `bson:"facebookUrl" json:"facebookUrl"`
	InstagramURL string    `bson:"instagramUrl" json:"instagramUrl"`
	Keywords     []string  `bson:"keywords" json:"keywords"`
	Services     []string  `bson:"services" json:"services"`
	Experience   string    `bson:"experience" json:"experience"`
	Warranty     string    `bson:"warranty" json:"warranty"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HeroContent is the single editable hero-section document. The public hero
// endpoint reads this document; there is no compiled-in fallback copy.
type HeroContent struct {
	ID          string    `bson:"_id" json:"-"`
	Title       string    `bson:"title" json:"title"`
	Subtitle    string    `bson:"subtitle" json:"subtitle"`
	Button1Text string    `bson:"button1Text" json:"button1Text"`
	Button1Link string    `bson:"button1Link" json:"button1Link"`
	Button2Text string    `bson:"button2Text" json:"button2Text"`
	Button2Link string    `bson:"button2Link" json:"button2Link"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
