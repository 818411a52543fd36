package registry

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
	"github.com/artledger/content-registry/internal/messaging"
	"github.com/artledger/content-registry/internal/roles"
	"github.com/artledger/content-registry/internal/settlement"
	"github.com/artledger/content-registry/internal/store"
	"github.com/artledger/content-registry/internal/store/schema"
	"github.com/artledger/content-registry/internal/token"
)

// RegisterInput holds the caller-supplied fields of a new content record
type RegisterInput struct {
	Fingerprint         string
	MetadataFingerprint string
	Category            domain.Category
	Price               uint64
	AITrainingAllowed   bool
}

// UpdateInput holds the mutable fields of a content record
type UpdateInput struct {
	MetadataFingerprint string
	Price               uint64
	AITrainingAllowed   bool
}

// Registry is the content ownership and access registry. Every mutating
// operation either applies all of its effects or none; notifications are
// published only after the effects have committed.
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockRegistry
type Registry interface {
	// Register creates a new content record owned by the caller and mints
	// its ownership credential
	Register(ctx context.Context, caller domain.Principal, input RegisterInput) (*schema.ContentRecord, error)
	// Get retrieves a content record by id
	Get(ctx context.Context, id uint64) (*schema.ContentRecord, error)
	// IsRegistered resolves a content fingerprint to its registered id,
	// or 0 when the fingerprint is unknown
	IsRegistered(ctx context.Context, fingerprint string) (uint64, error)
	// ListOwned returns the content ids owned by a principal in registration order
	ListOwned(ctx context.Context, owner domain.Principal) ([]uint64, error)
	// Update mutates the metadata fingerprint, price, and AI-training flag; owner only
	Update(ctx context.Context, caller domain.Principal, id uint64, input UpdateInput) error

	// GrantAccess adds a principal to a record's authorized set; owner only
	GrantAccess(ctx context.Context, caller domain.Principal, id uint64, principal domain.Principal) error
	// RevokeAccess removes a principal from a record's authorized set; owner only
	RevokeAccess(ctx context.Context, caller domain.Principal, id uint64, principal domain.Principal) error
	// HasAccess reports whether a principal may view a record: the owner,
	// anyone for free content, and explicitly granted principals
	HasAccess(ctx context.Context, id uint64, principal domain.Principal) (bool, error)
	// PurchaseAccess settles a paid access purchase and grants the caller
	// access. The settlement and the grant commit as one unit.
	PurchaseAccess(ctx context.Context, caller domain.Principal, id uint64, paidAmount uint64) (*settlement.Receipt, error)
	// IsAITrainingAllowed reports whether the owner permits AI training use
	IsAITrainingAllowed(ctx context.Context, id uint64) (bool, error)

	// ReportDispute marks a record disputed on behalf of a non-owner reporter
	ReportDispute(ctx context.Context, caller domain.Principal, id uint64, evidenceReference string) error
	// ResolveDispute closes a dispute; admin only. Confirming ownership
	// returns the record to active unchanged; rejecting it reassigns the
	// record and its credential to newOwner.
	ResolveDispute(ctx context.Context, caller domain.Principal, id uint64, confirmOwnership bool, newOwner domain.Principal) error
	// IsDisputed reports whether a record has an unresolved dispute
	IsDisputed(ctx context.Context, id uint64) (bool, error)
}

type contentRegistry struct {
	store     store.Store
	settler   settlement.Settler
	authority roles.Authority
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewRegistry creates the content registry over its collaborators
func NewRegistry(
	st store.Store,
	settler settlement.Settler,
	authority roles.Authority,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Registry {
	return &contentRegistry{
		store:     st,
		settler:   settler,
		authority: authority,
		publisher: publisher,
		clock:     clock,
	}
}

func (r *contentRegistry) Register(ctx context.Context, caller domain.Principal, input RegisterInput) (*schema.ContentRecord, error) {
	if !caller.Valid() {
		return nil, domain.ErrInvalidPrincipal
	}
	if input.Fingerprint == "" {
		return nil, domain.ErrEmptyFingerprint
	}
	if !domain.IsValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, input.Category)
	}

	var record *schema.ContentRecord
	err := r.store.Atomically(ctx, func(tx store.Store) error {
		var err error
		record, err = tx.CreateContent(ctx, store.CreateContentInput{
			Owner:               caller,
			Fingerprint:         input.Fingerprint,
			MetadataFingerprint: input.MetadataFingerprint,
			Category:            input.Category,
			Price:               input.Price,
			AITrainingAllowed:   input.AITrainingAllowed,
			RegisteredAt:        r.clock.Now(),
		})
		if err != nil {
			return err
		}

		return token.NewCredentials(tx).Mint(ctx, caller, record.ID, input.MetadataFingerprint)
	})
	if err != nil {
		return nil, err
	}

	event := r.newEvent(domain.EventTypeContentRegistered)
	event.ContentID = record.ID
	event.Owner = caller
	event.Fingerprint = record.Fingerprint
	event.Category = record.Category
	r.emit(ctx, event)

	return record, nil
}

func (r *contentRegistry) Get(ctx context.Context, id uint64) (*schema.ContentRecord, error) {
	return r.loadContent(ctx, r.store, id)
}

func (r *contentRegistry) IsRegistered(ctx context.Context, fingerprint string) (uint64, error) {
	record, err := r.store.GetContentByFingerprint(ctx, fingerprint)
	if err != nil {
		return 0, err
	}
	if record == nil {
		return 0, nil
	}
	return record.ID, nil
}

func (r *contentRegistry) ListOwned(ctx context.Context, owner domain.Principal) ([]uint64, error) {
	return r.store.ListOwnedContent(ctx, owner)
}

func (r *contentRegistry) Update(ctx context.Context, caller domain.Principal, id uint64, input UpdateInput) error {
	var record *schema.ContentRecord
	err := r.store.Atomically(ctx, func(tx store.Store) error {
		var err error
		record, err = r.lockContent(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Owner != caller {
			return domain.ErrNotOwner
		}

		return tx.UpdateContent(ctx, id, store.UpdateContentInput{
			MetadataFingerprint: input.MetadataFingerprint,
			Price:               input.Price,
			AITrainingAllowed:   input.AITrainingAllowed,
		})
	})
	if err != nil {
		return err
	}

	event := r.newEvent(domain.EventTypeContentUpdated)
	event.ContentID = id
	event.Owner = record.Owner
	r.emit(ctx, event)

	return nil
}

func (r *contentRegistry) GrantAccess(ctx context.Context, caller domain.Principal, id uint64, principal domain.Principal) error {
	if !principal.Valid() {
		return domain.ErrInvalidPrincipal
	}

	record, err := r.loadContent(ctx, r.store, id)
	if err != nil {
		return err
	}
	if record.Owner != caller {
		return domain.ErrNotOwner
	}

	if err := r.store.UpsertAccessGrant(ctx, id, principal, schema.GrantSourceOwner); err != nil {
		return err
	}

	event := r.newEvent(domain.EventTypeAccessGranted)
	event.ContentID = id
	event.Principal = principal
	r.emit(ctx, event)

	return nil
}

func (r *contentRegistry) RevokeAccess(ctx context.Context, caller domain.Principal, id uint64, principal domain.Principal) error {
	record, err := r.loadContent(ctx, r.store, id)
	if err != nil {
		return err
	}
	if record.Owner != caller {
		return domain.ErrNotOwner
	}

	if err := r.store.DeleteAccessGrant(ctx, id, principal); err != nil {
		return err
	}

	event := r.newEvent(domain.EventTypeAccessRevoked)
	event.ContentID = id
	event.Principal = principal
	r.emit(ctx, event)

	return nil
}

func (r *contentRegistry) HasAccess(ctx context.Context, id uint64, principal domain.Principal) (bool, error) {
	record, err := r.loadContent(ctx, r.store, id)
	if err != nil {
		return false, err
	}

	if record.Owner == principal {
		return true, nil
	}
	if record.Price == 0 {
		return true, nil
	}

	return r.store.HasAccessGrant(ctx, id, principal)
}

func (r *contentRegistry) PurchaseAccess(ctx context.Context, caller domain.Principal, id uint64, paidAmount uint64) (*settlement.Receipt, error) {
	if !caller.Valid() {
		return nil, domain.ErrInvalidPrincipal
	}

	// Price and owner are read under the row lock so a concurrent Update
	// or dispute resolution cannot change the terms mid-purchase
	var receipt *settlement.Receipt
	err := r.store.Atomically(ctx, func(tx store.Store) error {
		record, err := r.lockContent(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Price == 0 {
			return domain.ErrFreeContent
		}
		if paidAmount < record.Price {
			return domain.ErrInsufficientPayment
		}

		receipt, err = r.settler.Settle(ctx, tx, settlement.SettleParams{
			Payer:          caller,
			Seller:         record.Owner,
			RequiredAmount: record.Price,
			PaidAmount:     paidAmount,
		})
		if err != nil {
			return err
		}

		return tx.UpsertAccessGrant(ctx, id, caller, schema.GrantSourcePurchase)
	})
	if err != nil {
		return nil, err
	}

	payment := r.newEvent(domain.EventTypePaymentProcessed)
	payment.ContentID = id
	payment.Payer = receipt.Payer
	payment.Seller = receipt.Seller
	payment.Amount = receipt.RequiredAmount
	payment.Fee = receipt.Fee
	r.emit(ctx, payment)

	granted := r.newEvent(domain.EventTypeAccessGranted)
	granted.ContentID = id
	granted.Principal = caller
	r.emit(ctx, granted)

	return receipt, nil
}

func (r *contentRegistry) IsAITrainingAllowed(ctx context.Context, id uint64) (bool, error) {
	record, err := r.loadContent(ctx, r.store, id)
	if err != nil {
		return false, err
	}
	return record.AITrainingAllowed, nil
}

func (r *contentRegistry) ReportDispute(ctx context.Context, caller domain.Principal, id uint64, evidenceReference string) error {
	// The status check holds the row lock until the transition commits,
	// so two concurrent reporters cannot both observe Active
	err := r.store.Atomically(ctx, func(tx store.Store) error {
		record, err := r.lockContent(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Owner == caller {
			return domain.ErrOwnerDispute
		}
		if record.Status == domain.StatusDisputed {
			return domain.ErrAlreadyDisputed
		}

		return tx.UpdateContentStatus(ctx, id, domain.StatusDisputed)
	})
	if err != nil {
		return err
	}

	event := r.newEvent(domain.EventTypeContentDisputed)
	event.ContentID = id
	event.Reporter = caller
	event.EvidenceReference = evidenceReference
	r.emit(ctx, event)

	return nil
}

func (r *contentRegistry) ResolveDispute(ctx context.Context, caller domain.Principal, id uint64, confirmOwnership bool, newOwner domain.Principal) error {
	isAdmin, err := r.authority.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrNotAdmin
	}

	if !confirmOwnership && !newOwner.Valid() {
		return domain.ErrInvalidPrincipal
	}

	err = r.store.Atomically(ctx, func(tx store.Store) error {
		record, err := r.lockContent(ctx, tx, id)
		if err != nil {
			return err
		}
		if record.Status != domain.StatusDisputed {
			return domain.ErrNotDisputed
		}

		if err := tx.UpdateContentStatus(ctx, id, domain.StatusActive); err != nil {
			return err
		}
		if confirmOwnership {
			return nil
		}

		if err := tx.TransferOwnership(ctx, id, record.Owner, newOwner); err != nil {
			return err
		}
		return token.NewCredentials(tx).Transfer(ctx, record.Owner, newOwner, id)
	})
	if err != nil {
		return err
	}

	event := r.newEvent(domain.EventTypeDisputeResolved)
	event.ContentID = id
	event.OwnershipConfirmed = &confirmOwnership
	r.emit(ctx, event)

	return nil
}

func (r *contentRegistry) IsDisputed(ctx context.Context, id uint64) (bool, error) {
	record, err := r.loadContent(ctx, r.store, id)
	if err != nil {
		return false, err
	}
	return record.Status == domain.StatusDisputed, nil
}

// loadContent resolves an id to a record or domain.ErrContentNotFound
func (r *contentRegistry) loadContent(ctx context.Context, st store.Store, id uint64) (*schema.ContentRecord, error) {
	record, err := st.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrContentNotFound
	}
	return record, nil
}

// lockContent is loadContent under a row lock, for use inside Atomically
// when a precondition check must stay valid through the mutation
func (r *contentRegistry) lockContent(ctx context.Context, tx store.Store, id uint64) (*schema.ContentRecord, error) {
	record, err := tx.GetContentForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrContentNotFound
	}
	return record, nil
}

func (r *contentRegistry) newEvent(eventType domain.EventType) *domain.RegistryEvent {
	now := r.clock.Now()
	return &domain.RegistryEvent{
		EventID:   ulid.MustNewDefault(now).String(),
		EventType: eventType,
		Timestamp: now,
	}
}

// emit publishes a notification for an already committed state change.
// Publish failures are logged and swallowed; the state change stands.
func (r *contentRegistry) emit(ctx context.Context, event *domain.RegistryEvent) {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_type", string(event.EventType)),
			zap.String("event_id", event.EventID),
		)
	}
}
