package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baanthai-construction-api/internal/models"
)

func validHouseInput() models.HouseInput {
	return models.HouseInput{
		Title:     "Modern Loft",
		Price:     "3.2M",
		MainImage: "https://cdn.example.com/main.jpg",
		Images:    []string{"https://cdn.example.com/main.jpg"},
	}
}

func TestHouseCreateNormalizesCustomID(t *testing.T) {
	repo := NewMemoryHouseRepository()

	house, err := repo.Create(context.Background(), " My House ", validHouseInput())

	require.NoError(t, err)
	assert.Equal(t, "my-house", house.ID)
}

func TestHouseCreateDuplicateIDLeavesExistingUntouched(t *testing.T) {
	repo := NewMemoryHouseRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "baan-01", validHouseInput())
	require.NoError(t, err)

	second := validHouseInput()
	second.Title = "Imposter"
	_, err = repo.Create(ctx, "Baan 01", second)

	require.Error(t, err)
	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "baan-01", dup.ID)

	existing, err := repo.GetByID(ctx, "baan-01")
	require.NoError(t, err)
	assert.Equal(t, first.Title, existing.Title)
}

func TestHouseCreateBlankIDGeneratesOne(t *testing.T) {
	repo := NewMemoryHouseRepository()

	house, err := repo.Create(context.Background(), "   ", validHouseInput())

	require.NoError(t, err)
	assert.NotEmpty(t, house.ID)
}

func TestHouseCreateValidation(t *testing.T) {
	repo := NewMemoryHouseRepository()
	in := validHouseInput()
	in.MainImage = ""

	_, err := repo.Create(context.Background(), "", in)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "mainImage", validation.Field)

	houses, _ := repo.List(context.Background())
	assert.Empty(t, houses)
}

func TestHouseUpdateKeepsIDAndCreatedAt(t *testing.T) {
	repo := NewMemoryHouseRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "baan-01", validHouseInput())
	require.NoError(t, err)

	in := validHouseInput()
	in.Title = "Renamed"
	updated, err := repo.Update(ctx, "baan-01", in)

	require.NoError(t, err)
	assert.Equal(t, "baan-01", updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestHouseGetAndDeleteNotFound(t *testing.T) {
	repo := NewMemoryHouseRepository()

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFeaturedCapsAndFilters(t *testing.T) {
	repo := NewMemoryHouseRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := validHouseInput()
		in.Featured = i%2 == 0
		in.Order = i
		_, err := repo.Create(ctx, "", in)
		require.NoError(t, err)
	}

	featured, err := repo.ListFeatured(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
	for _, h := range featured {
		assert.True(t, h.Featured)
	}
}

func TestGalleryUnlinkHouseClearsField(t *testing.T) {
	repo := NewMemoryGalleryRepository()
	ctx := context.Background()

	in := models.GalleryItemInput{
		Description: "linked work",
		ImageURL:    "https://example.com/a.jpg",
		HouseID:     models.Some("baan-01"),
	}
	item, err := repo.Create(ctx, "work-1", in)
	require.NoError(t, err)
	assert.Equal(t, "baan-01", item.HouseID)

	in.HouseID = models.None[string]()
	updated, err := repo.Update(ctx, "work-1", in)

	require.NoError(t, err)
	assert.Empty(t, updated.HouseID)
}

func TestQuotationCreateRejectsWithoutConsent(t *testing.T) {
	repo := NewMemoryQuotationRepository()

	req := validQuotation()
	req.PDPAConsent = false
	_, err := repo.Create(context.Background(), req)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "pdpaConsent", validation.Field)

	requests, _ := repo.List(context.Background())
	assert.Empty(t, requests)
}

func TestQuotationCreateRequiresOtherWorkTypeText(t *testing.T) {
	repo := NewMemoryQuotationRepository()

	req := validQuotation()
	req.WorkTypes = []string{"สร้างบ้าน", models.WorkTypeOther}
	req.OtherWorkType = ""
	_, err := repo.Create(context.Background(), req)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "otherWorkType", validation.Field)

	requests, _ := repo.List(context.Background())
	assert.Empty(t, requests)
}

func TestQuotationCreateAssignsStatusAndDates(t *testing.T) {
	repo := NewMemoryQuotationRepository()

	created, err := repo.Create(context.Background(), validQuotation())

	require.NoError(t, err)
	assert.Equal(t, models.QuotationStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.PDPAConsentDate.IsZero())
}

func TestQuotationStatusTransitions(t *testing.T) {
	repo := NewMemoryQuotationRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, validQuotation())
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, created.ID.Hex(), models.QuotationStatusContacted)
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, created.ID.Hex(), "shipped")
	var validation *models.ValidationError
	assert.ErrorAs(t, err, &validation)

	err = repo.Delete(ctx, created.ID.Hex())
	require.NoError(t, err)
	requests, _ := repo.List(ctx)
	assert.Empty(t, requests)
}

func validQuotation() models.QuotationRequest {
	return models.QuotationRequest{
		Name:        "สมชาย ใจดี",
		Phone:       "0812345678",
		Email:       "somchai@example.com",
		LineID:      "somchai",
		WorkTypes:   []string{"สร้างบ้าน"},
		Area:        "120 ตร.ม.",
		SubDistrict: "บางรัก",
		District:    "บางรัก",
		Province:    "กรุงเทพมหานคร",
		PDPAConsent: true,
	}
}
