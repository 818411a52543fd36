package token

import (
	"context"

	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/store"
)

// Credentials manages the ownership credentials minted for registered
// content. One credential exists per content id and its holder tracks the
// record's owner exactly; it moves only when ownership moves.
//
//go:generate mockgen -source=credential.go -destination=../mocks/credentials.go -package=mocks -mock_names=Credentials=MockCredentials
type Credentials interface {
	// Mint issues the credential for a newly registered content record
	Mint(ctx context.Context, holder domain.Principal, contentID uint64, metadataRef string) error
	// Transfer moves the credential to a new holder. Fails with
	// domain.ErrCredentialHolderMismatch when from is not the current holder.
	Transfer(ctx context.Context, from, to domain.Principal, contentID uint64) error
	// HolderOf returns the current holder of a credential
	HolderOf(ctx context.Context, contentID uint64) (domain.Principal, error)
}

type credentials struct {
	store store.CredentialStore
}

// NewCredentials creates a credential manager backed by the given store.
// Pass a transaction-scoped store to bind credential moves to the enclosing
// operation.
func NewCredentials(st store.CredentialStore) Credentials {
	return &credentials{store: st}
}

func (c *credentials) Mint(ctx context.Context, holder domain.Principal, contentID uint64, metadataRef string) error {
	return c.store.MintCredential(ctx, holder, contentID, metadataRef)
}

func (c *credentials) Transfer(ctx context.Context, from, to domain.Principal, contentID uint64) error {
	return c.store.TransferCredential(ctx, from, to, contentID)
}

func (c *credentials) HolderOf(ctx context.Context, contentID uint64) (domain.Principal, error) {
	return c.store.CredentialHolder(ctx, contentID)
}
