package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baanthai-construction-api/internal/images"
)

// UploadHandler backs the admin form's file mode: the browser posts the
// staged file here and gets back the public URL that the form then submits
// as a resolved image reference.
type UploadHandler struct {
	Blob BlobStore
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	slot := &images.Slot{}
	slot.StageFile(file, fileHeader.Header.Get("Content-Type"))

	url, err := slot.Resolve(c.Request.Context(), h.Blob)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
