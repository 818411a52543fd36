package store

import (
	"context"
	"time"

	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/store/schema"
)

// CreateContentInput holds the fields for registering a new content record
type CreateContentInput struct {
	Owner               domain.Principal
	Fingerprint         string
	MetadataFingerprint string
	Category            domain.Category
	Price               uint64
	AITrainingAllowed   bool
	RegisteredAt        time.Time
}

// UpdateContentInput holds the mutable fields of a content record. Status,
// owner, and the content fingerprint are immutable through this path.
type UpdateContentInput struct {
	MetadataFingerprint string
	Price               uint64
	AITrainingAllowed   bool
}

// Ledger is the value-transfer surface the payment settler executes against.
// Implementations must fail the whole transfer when the source cannot cover
// the amount or the recipient cannot accept it.
type Ledger interface {
	// Transfer moves amount base units between two accounts. A zero amount is a no-op.
	Transfer(ctx context.Context, from, to domain.Principal, amount uint64) error
	// GetAccount retrieves an account, or nil if it does not exist
	GetAccount(ctx context.Context, principal domain.Principal) (*schema.Account, error)
}

// CredentialStore is the persistence surface behind the ownership credential
// mirror.
type CredentialStore interface {
	// MintCredential creates the one credential for a content id
	MintCredential(ctx context.Context, holder domain.Principal, contentID uint64, metadataRef string) error
	// TransferCredential reassigns a credential between holders
	TransferCredential(ctx context.Context, from, to domain.Principal, contentID uint64) error
	// CredentialHolder returns the current holder of a credential
	CredentialHolder(ctx context.Context, contentID uint64) (domain.Principal, error)
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	Ledger
	CredentialStore

	// Atomically runs fn against a transaction-scoped Store. Every effect
	// applied through the scoped Store commits or rolls back as one unit;
	// this is the single-transaction guarantee every registry operation
	// relies on.
	Atomically(ctx context.Context, fn func(tx Store) error) error

	// CreateContent inserts a new record and appends it to the owner's
	// reverse index. Fails with domain.ErrFingerprintExists on a duplicate
	// fingerprint.
	CreateContent(ctx context.Context, input CreateContentInput) (*schema.ContentRecord, error)
	// GetContent retrieves a record by id, or nil if it does not exist
	GetContent(ctx context.Context, id uint64) (*schema.ContentRecord, error)
	// GetContentForUpdate retrieves a record by id under a row lock, so a
	// check inside Atomically stays valid until the transaction commits.
	// Returns nil if the record does not exist.
	GetContentForUpdate(ctx context.Context, id uint64) (*schema.ContentRecord, error)
	// GetContentByFingerprint retrieves a record by content fingerprint, or nil
	GetContentByFingerprint(ctx context.Context, fingerprint string) (*schema.ContentRecord, error)
	// UpdateContent mutates the metadata fingerprint, price, and AI flag
	UpdateContent(ctx context.Context, id uint64, input UpdateContentInput) error
	// UpdateContentStatus moves a record between lifecycle states
	UpdateContentStatus(ctx context.Context, id uint64, status domain.ContentStatus) error
	// ListOwnedContent returns the ids owned by a principal in index order
	ListOwnedContent(ctx context.Context, owner domain.Principal) ([]uint64, error)
	// TransferOwnership reassigns a record's owner and fixes up both sides
	// of the reverse index (swap-with-last removal, append to the new owner)
	TransferOwnership(ctx context.Context, id uint64, from, to domain.Principal) error

	// UpsertAccessGrant adds a principal to a record's authorized set; granting twice is a no-op
	UpsertAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal, source schema.GrantSource) error
	// DeleteAccessGrant removes a principal from the authorized set; absent grants are a no-op
	DeleteAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal) error
	// HasAccessGrant checks membership in the explicit authorized set
	HasAccessGrant(ctx context.Context, contentID uint64, principal domain.Principal) (bool, error)

	// CreditAccount adds funds to an account, creating it if absent
	CreditAccount(ctx context.Context, principal domain.Principal, amount uint64) error
	// SetAccountFrozen toggles whether an account can receive value
	SetAccountFrozen(ctx context.Context, principal domain.Principal, frozen bool) error

	// RoleOf returns the role assigned to a principal (RoleNone when unassigned)
	RoleOf(ctx context.Context, principal domain.Principal) (domain.Role, error)
	// SetRole assigns a role to a principal
	SetRole(ctx context.Context, principal domain.Principal, role domain.Role, assignedBy domain.Principal) error

	// GetSetting retrieves a configuration value, or "" if unset
	GetSetting(ctx context.Context, key string) (string, error)
	// SetSetting stores a configuration value
	SetSetting(ctx context.Context, key string, value string) error

	// CreateWebhookClient registers an observer endpoint
	CreateWebhookClient(ctx context.Context, client *schema.WebhookClient) error
	// ListActiveWebhookClients returns the clients eligible for delivery
	ListActiveWebhookClients(ctx context.Context) ([]schema.WebhookClient, error)
	// CreateWebhookDelivery records a new delivery attempt row
	CreateWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
	// SaveWebhookDelivery persists the outcome of a delivery attempt
	SaveWebhookDelivery(ctx context.Context, delivery *schema.WebhookDelivery) error
}
