package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"baanthai-construction-api/internal/images"
	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/repository"
	"baanthai-construction-api/internal/webpath"
)

type HouseHandler struct {
	Houses        repository.HouseRepository
	Blob          BlobStore
	FeaturedLimit int
	Log           zerolog.Logger
}

type houseSpecificationsRequest struct {
	Bedrooms          string `json:"bedrooms"`
	Bathrooms         string `json:"bathrooms"`
	Area              string `json:"area"`
	WorkDetail1Label  string `json:"workDetail1Label"`
	WorkDetail1Detail string `json:"workDetail1Detail"`
	WorkDetail2Label  string `json:"workDetail2Label"`
	WorkDetail2Detail string `json:"workDetail2Detail"`
	WorkDetail3Label  string `json:"workDetail3Label"`
	WorkDetail3Detail string `json:"workDetail3Detail"`
}

type houseRequest struct {
	CustomID        string                     `json:"customId"`
	Title           string                     `json:"title" binding:"required"`
	Price           string                     `json:"price" binding:"required"`
	Description     string                     `json:"description"`
	FullDescription string                     `json:"fullDescription"`
	MainImage       string                     `json:"mainImage"`
	Images          []string                   `json:"images"`
	Specifications  houseSpecificationsRequest `json:"specifications"`
	Features        []string                   `json:"features"`
	Featured        bool                       `json:"featured"`
	Order           int                        `json:"order"`
}

// input resolves the request's image references and builds the repository
// input. Every incoming URL goes through an image slot, so a pasted URL that
// is not http(s) is rejected here before any write, and the main image is
// always first in the combined sequence.
func (req houseRequest) input(c *gin.Context, blob BlobStore) (models.HouseInput, error) {
	main := &images.Slot{}
	main.StageURL(req.MainImage)
	if err := main.ConfirmURL(); err != nil {
		return models.HouseInput{}, models.NewValidationError("mainImage", "main image is required and must be a valid URL")
	}

	var gallery []*images.Slot
	for _, url := range req.Images {
		if strings.TrimSpace(url) == "" || url == req.MainImage {
			continue
		}
		slot := &images.Slot{}
		slot.StageURL(url)
		if err := slot.ConfirmURL(); err != nil {
			return models.HouseInput{}, err
		}
		gallery = append(gallery, slot)
	}

	mainURL, all, err := images.CombineHouseImages(c.Request.Context(), blob, main, gallery)
	if err != nil {
		return models.HouseInput{}, err
	}

	return models.HouseInput{
		Title:           strings.TrimSpace(req.Title),
		Price:           strings.TrimSpace(req.Price),
		Description:     models.SomeIfNotEmpty(strings.TrimSpace(req.Description)),
		FullDescription: models.SomeIfNotEmpty(strings.TrimSpace(req.FullDescription)),
		MainImage:       mainURL,
		Images:          all,
		Specifications: models.HouseSpecifications{
			Bedrooms:          req.Specifications.Bedrooms,
			Bathrooms:         req.Specifications.Bathrooms,
			Area:              req.Specifications.Area,
			WorkDetail1Label:  req.Specifications.WorkDetail1Label,
			WorkDetail1Detail: req.Specifications.WorkDetail1Detail,
			WorkDetail2Label:  req.Specifications.WorkDetail2Label,
			WorkDetail2Detail: req.Specifications.WorkDetail2Detail,
			WorkDetail3Label:  req.Specifications.WorkDetail3Label,
			WorkDetail3Detail: req.Specifications.WorkDetail3Detail,
		},
		Features: req.Features,
		Featured: req.Featured,
		Order:    req.Order,
	}, nil
}

// ListHouses returns the portfolio, or only featured entries (capped) when
// ?featured=true.
func (h *HouseHandler) ListHouses(c *gin.Context) {
	var (
		houses []models.House
		err    error
	)
	if c.Query("featured") == "true" {
		houses, err = h.Houses.ListFeatured(c.Request.Context(), h.FeaturedLimit)
	} else {
		houses, err = h.Houses.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, houses)
}

func (h *HouseHandler) GetHouse(c *gin.Context) {
	path := c.Request.URL.Path
	id := webpath.Resolve(
		webpath.FromParam(c.Param("id")),
		webpath.FromPathRegex(path, "houses"),
		webpath.FromPathSplit(path, "houses"),
	)
	if id == "" {
		respondError(c, repository.ErrNotFound)
		return
	}

	house, err := h.Houses.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, house)
}

func (h *HouseHandler) CreateHouse(c *gin.Context) {
	var req houseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := req.input(c, h.Blob)
	if err != nil {
		respondError(c, err)
		return
	}

	house, err := h.Houses.Create(c.Request.Context(), req.CustomID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, house)
}

func (h *HouseHandler) UpdateHouse(c *gin.Context) {
	var req houseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := req.input(c, h.Blob)
	if err != nil {
		respondError(c, err)
		return
	}

	house, err := h.Houses.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, house)
}

// DeleteHouse removes the document first, then makes a best-effort pass over
// its stored images. Failed blob deletes are logged and swallowed; the
// document deletion is never rolled back.
func (h *HouseHandler) DeleteHouse(c *gin.Context) {
	id := c.Param("id")

	house, err := h.Houses.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Houses.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	for _, url := range house.Images {
		if err := h.Blob.DeleteByURL(c.Request.Context(), url); err != nil {
			h.Log.Warn().Err(err).Str("houseId", id).Str("url", url).
				Msg("image cleanup failed after house deletion")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "House deleted successfully"})
}
