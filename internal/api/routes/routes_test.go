package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baanthai-construction-api/config"
	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/repository"
)

type fakeBlob struct {
	uploaded  int
	deleted   []string
	deleteErr error
}

func (f *fakeBlob) Upload(ctx context.Context, file io.Reader, contentType string) (string, error) {
	f.uploaded++
	return "https://cdn.example.com/uploaded.jpg", nil
}

func (f *fakeBlob) DeleteByURL(ctx context.Context, publicURL string) error {
	f.deleted = append(f.deleted, publicURL)
	return f.deleteErr
}

type testEnv struct {
	router     *gin.Engine
	houses     *repository.MemoryHouseRepository
	gallery    *repository.MemoryGalleryRepository
	content    *repository.MemoryContentRepository
	quotations *repository.MemoryQuotationRepository
	blob       *fakeBlob
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		houses:     repository.NewMemoryHouseRepository(),
		gallery:    repository.NewMemoryGalleryRepository(),
		content:    repository.NewMemoryContentRepository(),
		quotations: repository.NewMemoryQuotationRepository(),
		blob:       &fakeBlob{},
	}
	cfg := config.Config{Site: config.SiteConfig{FeaturedHouseLimit: 6}}
	env.router = SetupRouter(cfg, Deps{
		Houses:     env.houses,
		Gallery:    env.gallery,
		Content:    env.content,
		Quotations: env.quotations,
		Blob:       env.blob,
		Log:        zerolog.Nop(),
	})
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func validQuotationBody() map[string]any {
	return map[string]any{
		"name":        "สมชาย ใจดี",
		"phone":       "0812345678",
		"email":       "somchai@example.com",
		"lineId":      "somchai",
		"workTypes":   []string{"สร้างบ้าน"},
		"area":        "120 ตร.ม.",
		"subDistrict": "บางรัก",
		"district":    "บางรัก",
		"province":    "กรุงเทพมหานคร",
		"pdpaConsent": true,
	}
}

func validHouseBody() map[string]any {
	return map[string]any{
		"title":     "Modern Loft",
		"price":     "3.2 ล้านบาท",
		"mainImage": "https://cdn.example.com/main.jpg",
		"images":    []string{"https://cdn.example.com/main.jpg", "https://cdn.example.com/2.jpg"},
	}
}

func TestQuotationWithoutConsentWritesNothing(t *testing.T) {
	env := newTestEnv(t)

	body := validQuotationBody()
	body["pdpaConsent"] = false
	rec := env.do(t, http.MethodPost, "/api/v1/quotations", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	requests, _ := env.quotations.List(context.Background())
	assert.Empty(t, requests)
}

func TestQuotationOtherWorkTypeRequiresText(t *testing.T) {
	env := newTestEnv(t)

	body := validQuotationBody()
	body["workTypes"] = []string{"สร้างบ้าน", "อื่นๆ"}
	body["otherWorkType"] = ""
	rec := env.do(t, http.MethodPost, "/api/v1/quotations", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	requests, _ := env.quotations.List(context.Background())
	assert.Empty(t, requests)
}

func TestQuotationSubmitAndAdminLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/quotations", validQuotationBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.QuotationRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.QuotationStatusPending, created.Status)

	rec = env.do(t, http.MethodGet, "/api/v1/admin/quotations/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/v1/admin/quotations/"+created.ID.Hex()+"/status",
		map[string]any{"status": "contacted"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/quotations/"+created.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	requests, _ := env.quotations.List(context.Background())
	assert.Empty(t, requests)
}

func TestHouseCreateNormalizesSlugAndRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)

	body := validHouseBody()
	body["customId"] = " My House "
	rec := env.do(t, http.MethodPost, "/api/v1/admin/houses/", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.House
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "my-house", created.ID)
	assert.Equal(t, created.MainImage, created.Images[0])

	// same slug after normalization
	dup := validHouseBody()
	dup["customId"] = "my   HOUSE"
	dup["title"] = "Imposter"
	rec = env.do(t, http.MethodPost, "/api/v1/admin/houses/", dup)
	assert.Equal(t, http.StatusConflict, rec.Code)

	existing, err := env.houses.GetByID(context.Background(), "my-house")
	require.NoError(t, err)
	assert.Equal(t, "Modern Loft", existing.Title)
}

func TestHouseCreateRejectsNonHTTPImage(t *testing.T) {
	env := newTestEnv(t)

	body := validHouseBody()
	body["mainImage"] = "javascript:alert(1)"
	rec := env.do(t, http.MethodPost, "/api/v1/admin/houses/", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	houses, _ := env.houses.List(context.Background())
	assert.Empty(t, houses)
}

func TestGetHouseNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/houses/ghost", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeaturedHousesSortedAndCapped(t *testing.T) {
	env := newTestEnv(t)

	orders := []int{2, 0, 1}
	for i, order := range orders {
		body := validHouseBody()
		body["customId"] = "baan-" + string(rune('a'+i))
		body["featured"] = true
		body["order"] = order
		rec := env.do(t, http.MethodPost, "/api/v1/admin/houses/", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/v1/houses?featured=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var houses []models.House
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &houses))
	require.Len(t, houses, 3)
	for i := 1; i < len(houses); i++ {
		assert.LessOrEqual(t, houses[i-1].Order, houses[i].Order)
	}
}

func TestGalleryItemMinimalCreateOmitsOptionalKeys(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/gallery/", map[string]any{
		"description": "test",
		"imageUrl":    "https://example.com/a.jpg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "test", raw["description"])
	assert.Equal(t, "https://example.com/a.jpg", raw["imageUrl"])
	assert.Equal(t, float64(0), raw["order"])
	assert.NotContains(t, raw, "title")
	assert.NotContains(t, raw, "houseId")
}

func TestGalleryItemUnlinkHouse(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]any{
		"customId":    "work-1",
		"description": "linked",
		"imageUrl":    "https://example.com/a.jpg",
		"houseId":     "baan-01",
	}
	rec := env.do(t, http.MethodPost, "/api/v1/admin/gallery/", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// edit with the link cleared
	body["houseId"] = ""
	rec = env.do(t, http.MethodPut, "/api/v1/admin/gallery/work-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "houseId")
}

func TestGalleryDetailAttachesLinkedHouse(t *testing.T) {
	env := newTestEnv(t)

	houseBody := validHouseBody()
	houseBody["customId"] = "baan-01"
	rec := env.do(t, http.MethodPost, "/api/v1/admin/houses/", houseBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/admin/gallery/", map[string]any{
		"customId":    "work-1",
		"description": "linked",
		"imageUrl":    "https://example.com/a.jpg",
		"houseId":     "baan-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/gallery/work-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "house")
	house := raw["house"].(map[string]any)
	assert.Equal(t, "baan-01", house["id"])
}

func TestDeleteHouseSurvivesBlobCleanupFailure(t *testing.T) {
	env := newTestEnv(t)
	env.blob.deleteErr = errors.New("access denied")

	body := validHouseBody()
	body["customId"] = "baan-01"
	rec := env.do(t, http.MethodPost, "/api/v1/admin/houses/", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/admin/houses/baan-01", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := env.houses.GetByID(context.Background(), "baan-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NotEmpty(t, env.blob.deleted, "cleanup attempted")
}

func TestFooterSaveAndPublicRead(t *testing.T) {
	env := newTestEnv(t)

	// nothing seeded in tests
	rec := env.do(t, http.MethodGet, "/api/v1/content/footer", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/admin/content/footer", map[string]any{
		"companyName": "บ้านไทยรับสร้างบ้าน",
		"services":    []string{"รับสร้างบ้าน", "ต่อเติมบ้าน"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/content/footer", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var footer models.FooterContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &footer))
	assert.Equal(t, "บ้านไทยรับสร้างบ้าน", footer.CompanyName)
	assert.Equal(t, []string{"รับสร้างบ้าน", "ต่อเติมบ้าน"}, footer.Services)
}

func TestHeroSaveAndPublicRead(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/admin/content/hero", map[string]any{
		"title":       "สร้างบ้านในฝันของคุณ",
		"button1Text": "ขอใบเสนอราคา",
		"button1Link": "/quotation",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/content/hero", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var hero models.HeroContent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, "สร้างบ้านในฝันของคุณ", hero.Title)
}

func TestUploadEndpointResolvesFileToURL(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/uploads", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "https://cdn.example.com/uploaded.jpg", raw["url"])
	assert.Equal(t, 1, env.blob.uploaded)
}
