package webhook

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// EventTypeWildcard is a special filter that matches all event types
const EventTypeWildcard = "*"

// SupportedEventTypes lists the event types a client may subscribe to
var SupportedEventTypes = []string{
	EventTypeWildcard,
	string(domain.EventTypeContentRegistered),
	string(domain.EventTypeContentUpdated),
	string(domain.EventTypeAccessGranted),
	string(domain.EventTypeAccessRevoked),
	string(domain.EventTypeContentDisputed),
	string(domain.EventTypeDisputeResolved),
	string(domain.EventTypePaymentProcessed),
	string(domain.EventTypeFeeBpsUpdated),
	string(domain.EventTypeFeeRecipientUpdated),
}

// IsValidEventType checks whether a filter names a supported event type
func IsValidEventType(eventType string) bool {
	for _, supported := range SupportedEventTypes {
		if eventType == supported {
			return true
		}
	}
	return false
}

// WebhookEvent is the envelope delivered to webhook clients
type WebhookEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "content.registered")
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the full registry event payload
	Data domain.RegistryEvent `json:"data"`
}

// NewWebhookEvent wraps a registry event in a delivery envelope
func NewWebhookEvent(event *domain.RegistryEvent) WebhookEvent {
	return WebhookEvent{
		EventID:   event.EventID,
		EventType: string(event.EventType),
		Timestamp: event.Timestamp,
		Data:      *event,
	}
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains error details if delivery failed
	Error string
}
