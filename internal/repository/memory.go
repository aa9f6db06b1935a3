package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/slug"
)

// In-memory repositories with the same semantics as the Mongo ones. Used by
// handler tests and useful for local runs without a database.

type MemoryHouseRepository struct {
	mu     sync.Mutex
	houses map[string]models.House
}

func NewMemoryHouseRepository() *MemoryHouseRepository {
	return &MemoryHouseRepository{houses: map[string]models.House{}}
}

func (r *MemoryHouseRepository) Create(ctx context.Context, customID string, in models.HouseInput) (models.House, error) {
	if err := in.Validate(); err != nil {
		return models.House{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := normalizeOrGenerate(customID)
	if _, exists := r.houses[id]; exists {
		return models.House{}, &DuplicateIDError{ID: id}
	}

	now := time.Now().UTC()
	house := houseFromInput(id, in)
	house.CreatedAt = now
	house.UpdatedAt = now
	r.houses[id] = house
	return house, nil
}

func (r *MemoryHouseRepository) GetByID(ctx context.Context, id string) (models.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	house, ok := r.houses[id]
	if !ok {
		return models.House{}, ErrNotFound
	}
	return house, nil
}

func (r *MemoryHouseRepository) List(ctx context.Context) ([]models.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	houses := make([]models.House, 0, len(r.houses))
	for _, h := range r.houses {
		houses = append(houses, h)
	}
	SortHouses(houses)
	return houses, nil
}

func (r *MemoryHouseRepository) ListFeatured(ctx context.Context, limit int) ([]models.House, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	houses := make([]models.House, 0, len(r.houses))
	for _, h := range r.houses {
		if h.Featured {
			houses = append(houses, h)
		}
	}
	if limit > 0 && len(houses) > limit {
		houses = houses[:limit]
	}
	SortHouses(houses)
	return houses, nil
}

func (r *MemoryHouseRepository) Update(ctx context.Context, id string, in models.HouseInput) (models.House, error) {
	if err := in.Validate(); err != nil {
		return models.House{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.houses[id]
	if !ok {
		return models.House{}, ErrNotFound
	}

	house := houseFromInput(id, in)
	house.CreatedAt = existing.CreatedAt
	house.UpdatedAt = time.Now().UTC()
	r.houses[id] = house
	return house, nil
}

func (r *MemoryHouseRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.houses[id]; !ok {
		return ErrNotFound
	}
	delete(r.houses, id)
	return nil
}

type MemoryGalleryRepository struct {
	mu    sync.Mutex
	items map[string]models.GalleryItem
}

func NewMemoryGalleryRepository() *MemoryGalleryRepository {
	return &MemoryGalleryRepository{items: map[string]models.GalleryItem{}}
}

func (r *MemoryGalleryRepository) Create(ctx context.Context, customID string, in models.GalleryItemInput) (models.GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return models.GalleryItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := normalizeOrGenerate(customID)
	if _, exists := r.items[id]; exists {
		return models.GalleryItem{}, &DuplicateIDError{ID: id}
	}

	now := time.Now().UTC()
	item := galleryItemFromInput(id, in)
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[id] = item
	return item, nil
}

func (r *MemoryGalleryRepository) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return models.GalleryItem{}, ErrNotFound
	}
	return item, nil
}

func (r *MemoryGalleryRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]models.GalleryItem, 0, len(r.items))
	for _, it := range r.items {
		items = append(items, it)
	}
	SortGalleryItems(items)
	return items, nil
}

func (r *MemoryGalleryRepository) Update(ctx context.Context, id string, in models.GalleryItemInput) (models.GalleryItem, error) {
	if err := in.Validate(); err != nil {
		return models.GalleryItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return models.GalleryItem{}, ErrNotFound
	}

	item := galleryItemFromInput(id, in)
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	r.items[id] = item
	return item, nil
}

func (r *MemoryGalleryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type MemoryContentRepository struct {
	mu     sync.Mutex
	footer *models.FooterContent
	hero   *models.HeroContent
}

func NewMemoryContentRepository() *MemoryContentRepository {
	return &MemoryContentRepository{}
}

func (r *MemoryContentRepository) GetFooter(ctx context.Context) (models.FooterContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.footer == nil {
		return models.FooterContent{}, ErrNotFound
	}
	return *r.footer, nil
}

func (r *MemoryContentRepository) SaveFooter(ctx context.Context, content models.FooterContent) (models.FooterContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content.ID = models.FooterContentID
	content.UpdatedAt = time.Now().UTC()
	r.footer = &content
	return content, nil
}

func (r *MemoryContentRepository) GetHero(ctx context.Context) (models.HeroContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hero == nil {
		return models.HeroContent{}, ErrNotFound
	}
	return *r.hero, nil
}

func (r *MemoryContentRepository) SaveHero(ctx context.Context, content models.HeroContent) (models.HeroContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content.ID = models.HeroContentID
	content.UpdatedAt = time.Now().UTC()
	r.hero = &content
	return content, nil
}

type MemoryQuotationRepository struct {
	mu       sync.Mutex
	requests []models.QuotationRequest
}

func NewMemoryQuotationRepository() *MemoryQuotationRepository {
	return &MemoryQuotationRepository{}
}

func (r *MemoryQuotationRepository) Create(ctx context.Context, req models.QuotationRequest) (models.QuotationRequest, error) {
	if err := req.Validate(); err != nil {
		return models.QuotationRequest{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	req.ID = primitive.NewObjectID()
	req.Status = models.QuotationStatusPending
	req.PDPAConsentDate = now
	req.CreatedAt = now
	if req.WorkTypes == nil {
		req.WorkTypes = []string{}
	}
	if !req.HasOtherWorkType() {
		req.OtherWorkType = ""
	}
	r.requests = append(r.requests, req)
	return req, nil
}

func (r *MemoryQuotationRepository) List(ctx context.Context) ([]models.QuotationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.QuotationRequest, 0, len(r.requests))
	// newest first
	for i := len(r.requests) - 1; i >= 0; i-- {
		out = append(out, r.requests[i])
	}
	return out, nil
}

func (r *MemoryQuotationRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	if !models.IsValidQuotationStatus(status) {
		return models.NewValidationError("status", "unknown status "+status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID.Hex() == id {
			r.requests[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryQuotationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID.Hex() == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func normalizeOrGenerate(customID string) string {
	if id := slug.Normalize(customID); id != "" {
		return id
	}
	return primitive.NewObjectID().Hex()
}

func houseFromInput(id string, in models.HouseInput) models.House {
	return models.House{
		ID:              id,
		Title:           in.Title,
		Price:           in.Price,
		Description:     in.Description.OrZero(),
		FullDescription: in.FullDescription.OrZero(),
		MainImage:       in.MainImage,
		Images:          in.Images,
		Specifications:  in.Specifications,
		Features:        in.Features,
		Featured:        in.Featured,
		Order:           in.Order,
	}
}

func galleryItemFromInput(id string, in models.GalleryItemInput) models.GalleryItem {
	return models.GalleryItem{
		ID:          id,
		Title:       in.Title.OrZero(),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Images:      in.Images,
		Order:       in.Order,
		HouseID:     in.HouseID.OrZero(),
	}
}
