package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/repository"
)

// BlobStore is the blob-side dependency of the admin handlers. Satisfied by
// *s3.Uploader.
type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, contentType string) (string, error)
	DeleteByURL(ctx context.Context, publicURL string) error
}

// respondError maps repository and validation errors onto HTTP statuses.
// Validation and duplicate-id failures carry their message to the client so
// the form can show it inline; anything else is a generic transient error.
func respondError(c *gin.Context, err error) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field})
		return
	}

	var duplicate *repository.DuplicateIDError
	if errors.As(err, &duplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "A document with this ID already exists", "id": duplicate.ID})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
}
