package rest

import (
	"time"

	"github.com/heartmarshall/claims-backend/internal/domain"
)

type submitClaimRequest struct {
	Description string `json:"description"`
}

type adminUpdateRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
	Remarks     *string `json:"remarks"`
}

type claimResponse struct {
	ID                   string                 `json:"id"`
	OwnerID              string                 `json:"owner_id"`
	Description          string                 `json:"description"`
	Status               string                 `json:"status"`
	FraudCheckCompleted  bool                   `json:"fraud_check_completed"`
	IsFraudulent         bool                   `json:"is_fraudulent"`
	FraudConfidenceScore *float64               `json:"fraud_confidence_score"`
	FraudDetection       *domain.FraudDetection `json:"fraud_detection,omitempty"`
	Verdict              *domain.Verdict        `json:"verdict,omitempty"`
	Owner                *ownerResponse         `json:"owner,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

type ownerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type listResponse struct {
	Items []claimResponse `json:"items"`
	Count int             `json:"count"`
}

type statisticsResponse struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
	Flagged          int `json:"flagged"`
	Fraudulent       int `json:"fraudulent"`
	Screened         int `json:"screened"`
	ScreeningPending int `json:"screening_pending"`
}

type serviceStatusResponse struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message"`
}

func toClaimResponse(c *domain.Claim) claimResponse {
	resp := claimResponse{
		ID:                   c.ID.String(),
		OwnerID:              c.OwnerID.String(),
		Description:          c.Description,
		Status:               c.Status.String(),
		FraudCheckCompleted:  c.FraudCheckCompleted,
		IsFraudulent:         c.IsFraudulent,
		FraudConfidenceScore: c.FraudConfidenceScore,
		FraudDetection:       c.FraudDetection,
		Verdict:              c.Verdict,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
	if c.Owner != nil {
		resp.Owner = &ownerResponse{ID: c.Owner.ID.String(), Email: c.Owner.Email, Name: c.Owner.Name}
	}
	return resp
}

func toListResponse(claims []domain.Claim) listResponse {
	items := make([]claimResponse, 0, len(claims))
	for i := range claims {
		items = append(items, toClaimResponse(&claims[i]))
	}
	return listResponse{Items: items, Count: len(items)}
}

func toStatisticsResponse(s *domain.ClaimStatistics) statisticsResponse {
	return statisticsResponse{
		Total:            s.Total,
		Pending:          s.Pending,
		Approved:         s.Approved,
		Rejected:         s.Rejected,
		Flagged:          s.Flagged,
		Fraudulent:       s.Fraudulent,
		Screened:         s.Screened,
		ScreeningPending: s.ScreeningPending,
	}
}
