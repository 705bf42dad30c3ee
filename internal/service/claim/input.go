package claim

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

// SubmitClaimInput holds the parameters for submitting a claim.
type SubmitClaimInput struct {
	Description string
}

// Validate checks all fields and collects all errors.
func (i SubmitClaimInput) Validate() error {
	if errs := validateDescription(i.Description); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListClaimsInput holds the admin listing filter.
type ListClaimsInput struct {
	OwnerID             *uuid.UUID
	Status              *domain.ClaimStatus
	IsFraudulent        *bool
	FraudCheckCompleted *bool
	Limit               int
	Offset              int
}

// Validate checks all fields and collects all errors.
func (i ListClaimsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListClaimsInput) filter() domain.ClaimFilter {
	limit := i.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	return domain.ClaimFilter{
		OwnerID:             i.OwnerID,
		Status:              i.Status,
		IsFraudulent:        i.IsFraudulent,
		FraudCheckCompleted: i.FraudCheckCompleted,
		Limit:               limit,
		Offset:              i.Offset,
	}
}

// AdminUpdateInput holds the fields an administrator may overwrite. Nil
// fields are left untouched; Remarks is only passed to the notification.
type AdminUpdateInput struct {
	Status      *domain.ClaimStatus
	Description *string
	Remarks     *string
}

// Validate checks all fields and collects all errors.
func (i AdminUpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Status == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "status or description is required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if i.Remarks != nil && utf8.RuneCountInString(*i.Remarks) > MaxRemarksLength {
		errs = append(errs, domain.FieldError{Field: "remarks", Message: fmt.Sprintf("max %d characters", MaxRemarksLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateDescription(raw string) []domain.FieldError {
	desc := strings.TrimSpace(raw)
	if desc == "" {
		return []domain.FieldError{{Field: "description", Message: "required"}}
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return []domain.FieldError{{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)}}
	}
	return nil
}
