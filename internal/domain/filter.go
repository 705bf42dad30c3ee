package domain

import "github.com/google/uuid"

// ClaimFilter selects claims for listing and counting. Nil fields match all.
type ClaimFilter struct {
	OwnerID             *uuid.UUID
	Status              *ClaimStatus
	IsFraudulent        *bool
	FraudCheckCompleted *bool
	Limit               int
	Offset              int
}

// ClaimStatistics holds aggregate claim counts.
//
// Each counter is an independent COUNT query, so under concurrent writes the
// counters may be skewed relative to each other (for example Total may not
// equal the sum of the per-status counts). ScreeningPending is derived as
// Total - Screened and inherits that skew.
type ClaimStatistics struct {
	Total            int
	Pending          int
	Approved         int
	Rejected         int
	Flagged          int
	Fraudulent       int
	Screened         int
	ScreeningPending int
}
