package domain

import "time"

// EventType represents the type of registry notification
type EventType string

const (
	EventTypeContentRegistered   EventType = "content.registered"
	EventTypeContentUpdated      EventType = "content.updated"
	EventTypeAccessGranted       EventType = "access.granted"
	EventTypeAccessRevoked       EventType = "access.revoked"
	EventTypeContentDisputed     EventType = "content.disputed"
	EventTypeDisputeResolved     EventType = "dispute.resolved"
	EventTypePaymentProcessed    EventType = "payment.processed"
	EventTypeFeeBpsUpdated       EventType = "fee.bps_updated"
	EventTypeFeeRecipientUpdated EventType = "fee.recipient_updated"
)

// RegistryEvent is a structured notification emitted by the registry core
// after a successful commit. It is the append-only record off-chain
// observers consume; every field relevant to the event type is populated,
// the rest are zero.
type RegistryEvent struct {
	EventID   string    `json:"event_id"`   // ULID, time-sortable
	EventType EventType `json:"event_type"` // e.g. content.registered
	Timestamp time.Time `json:"timestamp"`  // ledger block time of the operation

	ContentID   uint64    `json:"content_id,omitempty"`
	Owner       Principal `json:"owner,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Category    Category  `json:"category,omitempty"`

	// Access grant / revoke
	Principal Principal `json:"principal,omitempty"`

	// Dispute
	Reporter          Principal `json:"reporter,omitempty"`
	EvidenceReference string    `json:"evidence_reference,omitempty"`
	// OwnershipConfirmed is set on dispute.resolved: true when the
	// current owner was confirmed, false when ownership was transferred
	OwnershipConfirmed *bool `json:"ownership_confirmed,omitempty"`

	// Payment
	Payer  Principal `json:"payer,omitempty"`
	Seller Principal `json:"seller,omitempty"`
	Amount uint64    `json:"amount,omitempty"`
	Fee    uint64    `json:"fee,omitempty"`

	// Fee configuration changes carry before/after values
	OldFeeBps       uint32    `json:"old_fee_bps,omitempty"`
	NewFeeBps       uint32    `json:"new_fee_bps,omitempty"`
	OldFeeRecipient Principal `json:"old_fee_recipient,omitempty"`
	NewFeeRecipient Principal `json:"new_fee_recipient,omitempty"`
}

// Valid checks that the event carries the fields its type requires
func (e *RegistryEvent) Valid() bool {
	if e.EventID == "" || e.Timestamp.IsZero() {
		return false
	}

	switch e.EventType {
	case EventTypeContentRegistered:
		return e.ContentID > 0 && e.Owner != ZeroPrincipal && e.Fingerprint != ""
	case EventTypeContentUpdated:
		return e.ContentID > 0 && e.Owner != ZeroPrincipal
	case EventTypeAccessGranted, EventTypeAccessRevoked:
		return e.ContentID > 0 && e.Principal != ZeroPrincipal
	case EventTypeContentDisputed:
		return e.ContentID > 0 && e.Reporter != ZeroPrincipal
	case EventTypeDisputeResolved:
		return e.ContentID > 0 && e.OwnershipConfirmed != nil
	case EventTypePaymentProcessed:
		return e.Payer != ZeroPrincipal && e.Seller != ZeroPrincipal
	case EventTypeFeeBpsUpdated:
		return true
	case EventTypeFeeRecipientUpdated:
		return e.NewFeeRecipient != ZeroPrincipal
	default:
		return false
	}
}
