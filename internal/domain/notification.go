package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent names a claim lifecycle notification.
type NotificationEvent string

const (
	NotificationSubmitted     NotificationEvent = "claim_submitted"
	NotificationStatusChanged NotificationEvent = "claim_status_changed"
	NotificationProcessed     NotificationEvent = "claim_processed"
)

func (e NotificationEvent) String() string { return string(e) }

// Notification is the content delivered to the claim owner.
type Notification struct {
	Event          NotificationEvent `json:"event"`
	ClaimID        uuid.UUID         `json:"claim_id"`
	OwnerID        uuid.UUID         `json:"owner_id"`
	OwnerEmail     string            `json:"owner_email,omitempty"`
	OwnerName      string            `json:"owner_name,omitempty"`
	Status         ClaimStatus       `json:"status"`
	PreviousStatus *ClaimStatus      `json:"previous_status,omitempty"`
	Remarks        *string           `json:"remarks,omitempty"`
	Verdict        *string           `json:"verdict,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// NewNotification builds the common part of a notification for claim.
// owner may be nil when the profile could not be resolved.
func NewNotification(event NotificationEvent, claim Claim, owner *Owner, at time.Time) Notification {
	n := Notification{
		Event:      event,
		ClaimID:    claim.ID,
		OwnerID:    claim.OwnerID,
		Status:     claim.Status,
		OccurredAt: at,
	}
	if owner != nil {
		n.OwnerEmail = owner.Email
		n.OwnerName = owner.Name
	}
	return n
}
