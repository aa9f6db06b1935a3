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

type GalleryHandler struct {
	Gallery repository.GalleryRepository
	Houses  repository.HouseRepository
	Blob    BlobStore
	Log     zerolog.Logger
}

type galleryItemRequest struct {
	CustomID    string   `json:"customId"`
	Title       string   `json:"title"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	Order       int      `json:"order"`
	HouseID     string   `json:"houseId"`
}

// input validates the image URL through a slot and maps blank optional
// fields to Absent, so an editor clearing the house link removes the key
// from the document.
func (req galleryItemRequest) input(c *gin.Context, blob BlobStore) (models.GalleryItemInput, error) {
	slot := &images.Slot{}
	slot.StageURL(req.ImageURL)
	if err := slot.ConfirmURL(); err != nil {
		return models.GalleryItemInput{}, err
	}
	imageURL, err := slot.Resolve(c.Request.Context(), blob)
	if err != nil {
		return models.GalleryItemInput{}, err
	}

	var extra []string
	for _, url := range req.Images {
		if strings.TrimSpace(url) == "" {
			continue
		}
		s := &images.Slot{}
		s.StageURL(url)
		if err := s.ConfirmURL(); err != nil {
			return models.GalleryItemInput{}, err
		}
		resolved, err := s.Resolve(c.Request.Context(), blob)
		if err != nil {
			return models.GalleryItemInput{}, err
		}
		extra = append(extra, resolved)
	}

	return models.GalleryItemInput{
		Title:       models.SomeIfNotEmpty(strings.TrimSpace(req.Title)),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    imageURL,
		Images:      extra,
		Order:       req.Order,
		HouseID:     models.SomeIfNotEmpty(strings.TrimSpace(req.HouseID)),
	}, nil
}

func (h *GalleryHandler) ListGalleryItems(c *gin.Context) {
	items, err := h.Gallery.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetGalleryItem resolves the id from the routed parameter with the static
// export fallbacks and, when the item soft-links a house, attaches the
// linked house. A dangling link is not an error; the item renders without.
func (h *GalleryHandler) GetGalleryItem(c *gin.Context) {
	path := c.Request.URL.Path
	id := webpath.Resolve(
		webpath.FromParam(c.Param("id")),
		webpath.FromPathRegex(path, "gallery"),
		webpath.FromPathSplit(path, "gallery"),
	)
	if id == "" {
		respondError(c, repository.ErrNotFound)
		return
	}

	item, err := h.Gallery.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"item": item}
	if item.HouseID != "" {
		house, err := h.Houses.GetByID(c.Request.Context(), item.HouseID)
		if err == nil {
			response["house"] = house
		} else if err != repository.ErrNotFound {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, response)
}

func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	var req galleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := req.input(c, h.Blob)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.Gallery.Create(c.Request.Context(), req.CustomID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) UpdateGalleryItem(c *gin.Context) {
	var req galleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in, err := req.input(c, h.Blob)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.Gallery.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem deletes the document first and cleans up blobs
// best-effort, same contract as houses.
func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	id := c.Param("id")

	item, err := h.Gallery.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Gallery.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	urls := append([]string{item.ImageURL}, item.Images...)
	for _, url := range urls {
		if err := h.Blob.DeleteByURL(c.Request.Context(), url); err != nil {
			h.Log.Warn().Err(err).Str("galleryItemId", id).Str("url", url).
				Msg("image cleanup failed after gallery item deletion")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}
