package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClaimStatus represents the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "PENDING"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
	ClaimStatusFlagged  ClaimStatus = "FLAGGED"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected, ClaimStatusFlagged:
		return true
	}
	return false
}

// IsTerminal reports whether the automated protocol never moves the claim
// out of this status.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected || s == ClaimStatusFlagged
}

// CanTransitionTo reports whether next is reachable from s through the
// screening and verdict steps. Administrative updates do not consult it.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	if s != ClaimStatusPending {
		return false
	}
	switch next {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusRejected, ClaimStatusFlagged:
		return true
	}
	return false
}

// Raw verdict strings recognized by the orchestrator.
const (
	VerdictApproved = "approved"
	VerdictRejected = "rejected"
)

// VerdictStatus maps a raw oracle verdict to the claim status it implies.
// Unrecognized verdicts keep the claim pending.
func VerdictStatus(raw string) ClaimStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case VerdictApproved:
		return ClaimStatusApproved
	case VerdictRejected:
		return ClaimStatusRejected
	default:
		return ClaimStatusPending
	}
}

// Claim is a submitted request for approval or payout.
type Claim struct {
	ID                   uuid.UUID
	OwnerID              uuid.UUID
	Description          string
	Status               ClaimStatus
	FraudCheckCompleted  bool
	IsFraudulent         bool
	FraudConfidenceScore *float64
	FraudDetection       *FraudDetection
	Verdict              *Verdict
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Owner is resolved on read and never persisted with the claim.
	Owner *Owner
}

// IsOwnedBy returns true if the claim was submitted by userID.
func (c *Claim) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// FlaggedConsistent reports whether Status agrees with the fraud fields:
// FLAGGED exactly when screening completed with a positive determination.
func (c *Claim) FlaggedConsistent() bool {
	flagged := c.Status == ClaimStatusFlagged
	return flagged == (c.IsFraudulent && c.FraudCheckCompleted)
}

// ApplyFraudResult records a successful screening on the claim.
func (c *Claim) ApplyFraudResult(res FraudResult) {
	score := res.ConfidenceScore
	c.FraudCheckCompleted = true
	c.IsFraudulent = res.IsFraudulent
	c.FraudConfidenceScore = &score
	c.FraudDetection = &FraudDetection{
		Reason:       res.Reason,
		RiskFactors:  res.RiskFactors,
		ModelVersion: res.ModelVersion,
		DetectedAt:   res.Timestamp,
		Metadata:     res.Metadata,
	}
	if res.IsFraudulent {
		c.Status = ClaimStatusFlagged
	}
}

// ApplyVerdict records the raw oracle verdict and moves the claim to the
// status it maps to. It fails with ErrInvalidState, leaving the claim
// unchanged, when that status is not reachable from the current one.
func (c *Claim) ApplyVerdict(raw string, at time.Time) error {
	next := VerdictStatus(raw)
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("verdict %q on claim in status %s: %w", raw, c.Status, ErrInvalidState)
	}
	c.Verdict = &Verdict{Raw: raw, VerifiedAt: at}
	c.Status = next
	return nil
}

// FraudDetection is the write-once record of a completed screening.
type FraudDetection struct {
	Reason       string         `json:"reason"`
	RiskFactors  []string       `json:"risk_factors"`
	ModelVersion string         `json:"model_version"`
	DetectedAt   time.Time      `json:"detected_at"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Verdict is the raw oracle outcome recorded by the verdict step.
type Verdict struct {
	Raw        string    `json:"raw"`
	VerifiedAt time.Time `json:"verified_at"`
}

// FraudResult is what a fraud screener returns for a claim.
type FraudResult struct {
	IsFraudulent    bool
	ConfidenceScore float64
	Reason          string
	RiskFactors     []string
	ModelVersion    string
	Timestamp       time.Time
	Metadata        map[string]any
}

// ServiceStatus describes the health of an external collaborator.
type ServiceStatus struct {
	Healthy bool
	Message string
}

// DefaultServiceStatus is reported for collaborators without a status check.
func DefaultServiceStatus() ServiceStatus {
	return ServiceStatus{Healthy: true, Message: "status check not supported"}
}
