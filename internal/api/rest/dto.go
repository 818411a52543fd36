package rest

import (
	"fmt"
	"time"

	"github.com/artledger/content-registry/internal/domain"
	apierrors "github.com/artledger/content-registry/internal/api/shared/errors"
	"github.com/artledger/content-registry/internal/settlement"
	"github.com/artledger/content-registry/internal/store/schema"
	internalTypes "github.com/artledger/content-registry/internal/types"
	"github.com/artledger/content-registry/internal/webhook"
)

// MaxRetryMaxAttempts caps the per-client webhook retry budget
const MaxRetryMaxAttempts = 10

// DefaultRetryMaxAttempts applies when a webhook client does not specify one
const DefaultRetryMaxAttempts = 5

// RegisterContentRequest represents the request body for registering content
type RegisterContentRequest struct {
	Fingerprint         string `json:"fingerprint"`
	MetadataFingerprint string `json:"metadata_fingerprint"`
	Category            string `json:"category"`
	Price               uint64 `json:"price"`
	AITrainingAllowed   bool   `json:"ai_training_allowed"`
}

// Validate validates the request body
func (r *RegisterContentRequest) Validate() error {
	if r.Fingerprint == "" {
		return apierrors.NewValidationError("fingerprint is required")
	}
	if !domain.IsValidCategory(domain.Category(r.Category)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported category: %s", r.Category))
	}
	return nil
}

// UpdateContentRequest represents the request body for updating content
type UpdateContentRequest struct {
	MetadataFingerprint string `json:"metadata_fingerprint"`
	Price               uint64 `json:"price"`
	AITrainingAllowed   bool   `json:"ai_training_allowed"`
}

// GrantAccessRequest represents the request body for granting access
type GrantAccessRequest struct {
	Principal string `json:"principal"`
}

// PurchaseRequest represents the request body for purchasing access
type PurchaseRequest struct {
	PaidAmount uint64 `json:"paid_amount"`
}

// ReportDisputeRequest represents the request body for reporting a dispute
type ReportDisputeRequest struct {
	EvidenceReference string `json:"evidence_reference"`
}

// ResolveDisputeRequest represents the request body for resolving a dispute
type ResolveDisputeRequest struct {
	ConfirmOwnership bool   `json:"confirm_ownership"`
	NewOwner         string `json:"new_owner,omitempty"`
}

// SetFeeBasisPointsRequest represents the request body for changing the platform fee
type SetFeeBasisPointsRequest struct {
	BasisPoints uint32 `json:"basis_points"`
}

// SetFeeRecipientRequest represents the request body for changing the fee recipient
type SetFeeRecipientRequest struct {
	Recipient string `json:"recipient"`
}

// AssignRoleRequest represents the request body for assigning a role
type AssignRoleRequest struct {
	Role string `json:"role"`
}

// CreditAccountRequest represents the request body for crediting an account
type CreditAccountRequest struct {
	Amount uint64 `json:"amount"`
}

// SetFrozenRequest represents the request body for freezing or unfreezing an account
type SetFrozenRequest struct {
	Frozen bool `json:"frozen"`
}

// CreateWebhookClientRequest represents the request body for creating a webhook client
type CreateWebhookClientRequest struct {
	WebhookURL       string   `json:"webhook_url"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts *int     `json:"retry_max_attempts,omitempty"`
}

// Validate validates the request body
func (r *CreateWebhookClientRequest) Validate(debug bool) error {
	// Validate: webhook URL must be provided
	if r.WebhookURL == "" {
		return apierrors.NewValidationError("webhook_url is required")
	}

	// Validate: webhook URL must be valid; plain HTTP is only allowed in debug
	if debug {
		if !internalTypes.IsValidURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid URL")
		}
	} else {
		if !internalTypes.IsHTTPSURL(r.WebhookURL) {
			return apierrors.NewValidationError("webhook_url must be a valid HTTPS URL")
		}
	}

	// Validate: event filters must be provided
	if len(r.EventFilters) == 0 {
		return apierrors.NewValidationError("event_filters is required and must not be empty")
	}

	// Validate: each event filter must be supported
	for _, eventType := range r.EventFilters {
		if !webhook.IsValidEventType(eventType) {
			return apierrors.NewValidationError(fmt.Sprintf("unsupported event type: %s. Supported types: %v", eventType, webhook.SupportedEventTypes))
		}
	}

	// Validate: retry_max_attempts must be valid if provided
	if r.RetryMaxAttempts != nil {
		if *r.RetryMaxAttempts < 0 || *r.RetryMaxAttempts > MaxRetryMaxAttempts {
			return apierrors.NewValidationError(fmt.Sprintf("retry_max_attempts must be between 0 and %d", MaxRetryMaxAttempts))
		}
	}

	return nil
}

// ContentResponse represents a content record in API responses
type ContentResponse struct {
	ID                  uint64    `json:"id"`
	Owner               string    `json:"owner"`
	Fingerprint         string    `json:"fingerprint"`
	MetadataFingerprint string    `json:"metadata_fingerprint"`
	Category            string    `json:"category"`
	Status              string    `json:"status"`
	Price               uint64    `json:"price"`
	AITrainingAllowed   bool      `json:"ai_training_allowed"`
	RegisteredAt        time.Time `json:"registered_at"`
}

// NewContentResponse maps a stored content record to its API representation
func NewContentResponse(record *schema.ContentRecord) ContentResponse {
	return ContentResponse{
		ID:                  record.ID,
		Owner:               record.Owner.String(),
		Fingerprint:         record.Fingerprint,
		MetadataFingerprint: record.MetadataFingerprint,
		Category:            string(record.Category),
		Status:              string(record.Status),
		Price:               record.Price,
		AITrainingAllowed:   record.AITrainingAllowed,
		RegisteredAt:        record.RegisteredAt,
	}
}

// ListOwnedResponse represents the ids owned by a principal
type ListOwnedResponse struct {
	Owner      string   `json:"owner"`
	ContentIDs []uint64 `json:"content_ids"`
}

// HasAccessResponse represents an access check result
type HasAccessResponse struct {
	ContentID uint64 `json:"content_id"`
	Principal string `json:"principal"`
	HasAccess bool   `json:"has_access"`
}

// AITrainingResponse represents an AI-training permission check result
type AITrainingResponse struct {
	ContentID         uint64 `json:"content_id"`
	AITrainingAllowed bool   `json:"ai_training_allowed"`
}

// DisputeStatusResponse represents a dispute status check result
type DisputeStatusResponse struct {
	ContentID uint64 `json:"content_id"`
	Disputed  bool   `json:"disputed"`
}

// PurchaseResponse represents the settlement receipt of a completed purchase
type PurchaseResponse struct {
	ContentID      uint64 `json:"content_id"`
	Payer          string `json:"payer"`
	Seller         string `json:"seller"`
	RequiredAmount uint64 `json:"required_amount"`
	Fee            uint64 `json:"fee"`
	SellerAmount   uint64 `json:"seller_amount"`
	Excess         uint64 `json:"excess"`
}

// NewPurchaseResponse maps a settlement receipt to its API representation
func NewPurchaseResponse(contentID uint64, receipt *settlement.Receipt) PurchaseResponse {
	return PurchaseResponse{
		ContentID:      contentID,
		Payer:          receipt.Payer.String(),
		Seller:         receipt.Seller.String(),
		RequiredAmount: receipt.RequiredAmount,
		Fee:            receipt.Fee,
		SellerAmount:   receipt.SellerAmount,
		Excess:         receipt.Excess,
	}
}

// FeeConfigResponse represents the current platform fee configuration
type FeeConfigResponse struct {
	BasisPoints uint32 `json:"basis_points"`
	Recipient   string `json:"recipient"`
}

// AccountResponse represents a ledger account in API responses
type AccountResponse struct {
	Principal string `json:"principal"`
	Balance   uint64 `json:"balance"`
	Frozen    bool   `json:"frozen"`
}

// CreateWebhookClientResponse represents the response after creating a webhook client.
// The secret is only returned once, at creation time.
type CreateWebhookClientResponse struct {
	ClientID         string   `json:"client_id"`
	WebhookURL       string   `json:"webhook_url"`
	WebhookSecret    string   `json:"webhook_secret"`
	EventFilters     []string `json:"event_filters"`
	RetryMaxAttempts int      `json:"retry_max_attempts"`
}
