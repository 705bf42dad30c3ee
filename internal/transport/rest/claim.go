package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/domain"
	claimsvc "github.com/heartmarshall/claims-backend/internal/service/claim"
)

type claimService interface {
	SubmitClaim(ctx context.Context, input claimsvc.SubmitClaimInput) (*domain.Claim, error)
	GetClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)
	ListMyClaims(ctx context.Context) ([]domain.Claim, error)
	ListClaims(ctx context.Context, input claimsvc.ListClaimsInput) ([]domain.Claim, error)
	ProcessClaim(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)
	DeleteClaim(ctx context.Context, claimID uuid.UUID) error
	AdminUpdateClaim(ctx context.Context, claimID uuid.UUID, input claimsvc.AdminUpdateInput) (*domain.Claim, error)
	TriggerFraudScreening(ctx context.Context, claimID uuid.UUID) (*domain.Claim, error)
	GetStatistics(ctx context.Context) (*domain.ClaimStatistics, error)
	FraudServiceStatus(ctx context.Context) domain.ServiceStatus
}

// ClaimHandler serves the claim REST endpoints.
type ClaimHandler struct {
	svc claimService
	log *slog.Logger
}

// NewClaimHandler creates a ClaimHandler.
func NewClaimHandler(svc claimService, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{svc: svc, log: logger.With("handler", "claim")}
}

// Register mounts the claim routes on mux.
func (h *ClaimHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /claims", h.Submit)
	mux.HandleFunc("GET /claims", h.ListMine)
	mux.HandleFunc("GET /claims/{id}", h.Get)
	mux.HandleFunc("POST /claims/{id}/process", h.Process)
	mux.HandleFunc("DELETE /claims/{id}", h.Delete)

	mux.HandleFunc("GET /admin/claims", h.AdminList)
	mux.HandleFunc("PATCH /admin/claims/{id}", h.AdminUpdate)
	mux.HandleFunc("POST /admin/claims/{id}/fraud-check", h.AdminFraudCheck)
	mux.HandleFunc("GET /admin/statistics", h.Statistics)

	mux.HandleFunc("GET /fraud/status", h.FraudStatus)
}

// Submit handles POST /claims.
func (h *ClaimHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitClaimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := h.svc.SubmitClaim(r.Context(), claimsvc.SubmitClaimInput{Description: req.Description})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/claims/"+claim.ID.String())
	writeJSON(w, http.StatusCreated, toClaimResponse(claim))
}

// ListMine handles GET /claims.
func (h *ClaimHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := h.svc.ListMyClaims(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(claims))
}

// Get handles GET /claims/{id}.
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withClaimID(w, r, h.svc.GetClaim)
}

// Process handles POST /claims/{id}/process.
func (h *ClaimHandler) Process(w http.ResponseWriter, r *http.Request) {
	h.withClaimID(w, r, h.svc.ProcessClaim)
}

// Delete handles DELETE /claims/{id}.
func (h *ClaimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteClaim(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminList handles GET /admin/claims?status=&owner_id=&is_fraudulent=&fraud_check_completed=&limit=&offset=.
func (h *ClaimHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	claims, err := h.svc.ListClaims(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(claims))
}

// AdminUpdate handles PATCH /admin/claims/{id}.
func (h *ClaimHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req adminUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := claimsvc.AdminUpdateInput{Description: req.Description, Remarks: req.Remarks}
	if req.Status != nil {
		status := domain.ClaimStatus(*req.Status)
		input.Status = &status
	}

	claim, err := h.svc.AdminUpdateClaim(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(claim))
}

// AdminFraudCheck handles POST /admin/claims/{id}/fraud-check.
func (h *ClaimHandler) AdminFraudCheck(w http.ResponseWriter, r *http.Request) {
	h.withClaimID(w, r, h.svc.TriggerFraudScreening)
}

// Statistics handles GET /admin/statistics.
func (h *ClaimHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatisticsResponse(stats))
}

// FraudStatus handles GET /fraud/status.
func (h *ClaimHandler) FraudStatus(w http.ResponseWriter, r *http.Request) {
	st := h.svc.FraudServiceStatus(r.Context())
	writeJSON(w, http.StatusOK, serviceStatusResponse{Healthy: st.Healthy, Message: st.Message})
}

func (h *ClaimHandler) withClaimID(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Claim, error)) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	claim, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(claim))
}

func parseListQuery(r *http.Request) (claimsvc.ListClaimsInput, error) {
	q := r.URL.Query()
	var (
		input claimsvc.ListClaimsInput
		errs  []domain.FieldError
	)

	if v := q.Get("status"); v != "" {
		status := domain.ClaimStatus(v)
		input.Status = &status
	}
	if v := q.Get("owner_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "owner_id", Message: "must be a UUID"})
		} else {
			input.OwnerID = &id
		}
	}

	parseBool := func(field string, dst **bool) {
		v := q.Get(field)
		if v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a boolean"})
			return
		}
		*dst = &b
	}
	parseBool("is_fraudulent", &input.IsFraudulent)
	parseBool("fraud_check_completed", &input.FraudCheckCompleted)

	parseInt := func(field string, dst *int) {
		v := q.Get(field)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be an integer"})
			return
		}
		*dst = n
	}
	parseInt("limit", &input.Limit)
	parseInt("offset", &input.Offset)

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}
