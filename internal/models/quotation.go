package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quotation request lifecycle, admin-driven after submission.
const (
	QuotationStatusPending   = "pending"
	QuotationStatusContacted = "contacted"
	QuotationStatusQuoted    = "quoted"
	QuotationStatusCompleted = "completed"
	QuotationStatusCancelled = "cancelled"
)

// WorkTypeOther is the "อื่นๆ" checkbox label on the quotation form. When it
// is selected the submitter must spell out the work in OtherWorkType.
const WorkTypeOther = "อื่นๆ"

// QuotationRequest is a public intake submission. Write-once from the public
// side; only admins change status or delete afterwards.
type QuotationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email" json:"email"`
	LineID            string             `bson:"lineId" json:"lineId"`
	WorkTypes         []string           `bson:"workTypes" json:"workTypes"`
	OtherWorkType     string             `bson:"otherWorkType,omitempty" json:"otherWorkType,omitempty"`
	Area              string             `bson:"area" json:"area"`
	SubDistrict       string             `bson:"subDistrict" json:"subDistrict"`
	District          string             `bson:"district" json:"district"`
	Province          string             `bson:"province" json:"province"`
	AdditionalDetails string             `bson:"additionalDetails,omitempty" json:"additionalDetails,omitempty"`
	PDPAConsent       bool               `bson:"pdpaConsent" json:"pdpaConsent"`
	PDPAConsentDate   time.Time          `bson:"pdpaConsentDate" json:"pdpaConsentDate"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate enforces the intake rules before any store call: all contact and
// location fields, PDPA consent, and a spelled-out work type when the
// "other" option is among the selections.
func (q QuotationRequest) Validate() error {
	required := []struct {
		field, value string
	}{
		{"name", q.Name},
		{"phone", q.Phone},
		{"email", q.Email},
		{"lineId", q.LineID},
		{"area", q.Area},
		{"subDistrict", q.SubDistrict},
		{"district", q.District},
		{"province", q.Province},
	}
	for _, r := range required {
		if r.value == "" {
			return NewValidationError(r.field, r.field+" is required")
		}
	}
	if !q.PDPAConsent {
		return NewValidationError("pdpaConsent", "PDPA consent must be given")
	}
	if q.HasOtherWorkType() && q.OtherWorkType == "" {
		return NewValidationError("otherWorkType", "other work type must be specified")
	}
	return nil
}

func (q QuotationRequest) HasOtherWorkType() bool {
	for _, wt := range q.WorkTypes {
		if wt == WorkTypeOther {
			return true
		}
	}
	return false
}

// IsValidQuotationStatus reports whether s is one of the known statuses.
func IsValidQuotationStatus(s string) bool {
	switch s {
	case QuotationStatusPending, QuotationStatusContacted, QuotationStatusQuoted,
		QuotationStatusCompleted, QuotationStatusCancelled:
		return true
	}
	return false
}
