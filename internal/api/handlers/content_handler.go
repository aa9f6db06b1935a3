package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/repository"
)

// ContentHandler serves and overwrites the footer and hero singletons.
type ContentHandler struct {
	Content repository.ContentRepository
}

type footerContentRequest struct {
	CompanyName  string   `json:"companyName" binding:"required"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description"`
	Address      string   `json:"address"`
	District     string   `json:"district"`
	City         string   `json:"city"`
	PostalCode   string   `json:"postalCode"`
	Phone        string   `json:"phone"`
	LineID       string   `json:"lineId"`
	LineURL      string   `json:"lineUrl"`
	FacebookURL  string   `json:"facebookUrl"`
	InstagramURL string   `json:"instagramUrl"`
	Keywords     []string `json:"keywords"`
	Services     []string `json:"services"`
	Experience   string   `json:"experience"`
	Warranty     string   `json:"warranty"`
}

type heroContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Button1Text string `json:"button1Text"`
	Button1Link string `json:"button1Link"`
	Button2Text string `json:"button2Text"`
	Button2Link string `json:"button2Link"`
}

func (h *ContentHandler) GetFooter(c *gin.Context) {
	content, err := h.Content.GetFooter(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// SaveFooter replaces the whole footer document with the submitted form.
func (h *ContentHandler) SaveFooter(c *gin.Context) {
	var req footerContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.Content.SaveFooter(c.Request.Context(), models.FooterContent{
		CompanyName:  req.CompanyName,
		Tagline:      req.Tagline,
		Description:  req.Description,
		Address:      req.Address,
		District:     req.District,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Phone:        req.Phone,
		LineID:       req.LineID,
		LineURL:      req.LineURL,
		FacebookURL:  req.FacebookURL,
		InstagramURL: req.InstagramURL,
		Keywords:     req.Keywords,
		Services:     req.Services,
		Experience:   req.Experience,
		Warranty:     req.Warranty,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) GetHero(c *gin.Context) {
	content, err := h.Content.GetHero(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) SaveHero(c *gin.Context) {
	var req heroContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.Content.SaveHero(c.Request.Context(), models.HeroContent{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Button1Text: req.Button1Text,
		Button1Link: req.Button1Link,
		Button2Text: req.Button2Text,
		Button2Link: req.Button2Link,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}
