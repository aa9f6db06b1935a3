package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"baanthai-construction-api/internal/models"
	"baanthai-construction-api/internal/repository"
)

type QuotationHandler struct {
	Quotations repository.QuotationRepository
}

type createQuotationRequest struct {
	Name              string   `json:"name"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	LineID            string   `json:"lineId"`
	WorkTypes         []string `json:"workTypes"`
	OtherWorkType     string   `json:"otherWorkType"`
	Area              string   `json:"area"`
	SubDistrict       string   `json:"subDistrict"`
	District          string   `json:"district"`
	Province          string   `json:"province"`
	AdditionalDetails string   `json:"additionalDetails"`
	PDPAConsent       bool     `json:"pdpaConsent"`
}

type updateQuotationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateQuotation handles the public quotation form. Required-field, PDPA,
// and other-work-type rules are enforced by the model before the repository
// writes anything, so a rejected submission has no side effects.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Quotations.Create(c.Request.Context(), models.QuotationRequest{
		Name:              strings.TrimSpace(req.Name),
		Phone:             strings.TrimSpace(req.Phone),
		Email:             strings.TrimSpace(req.Email),
		LineID:            strings.TrimSpace(req.LineID),
		WorkTypes:         req.WorkTypes,
		OtherWorkType:     strings.TrimSpace(req.OtherWorkType),
		Area:              strings.TrimSpace(req.Area),
		SubDistrict:       strings.TrimSpace(req.SubDistrict),
		District:          strings.TrimSpace(req.District),
		Province:          strings.TrimSpace(req.Province),
		AdditionalDetails: strings.TrimSpace(req.AdditionalDetails),
		PDPAConsent:       req.PDPAConsent,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	requests, err := h.Quotations.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	var req updateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Quotations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.Quotations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quotation request deleted successfully"})
}
