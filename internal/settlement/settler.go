package settlement

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
	"github.com/artledger/content-registry/internal/messaging"
	"github.com/artledger/content-registry/internal/store"
)

// Setting keys for the persisted fee configuration
const (
	settingFeeBasisPoints = "settlement:fee_basis_points"
	settingFeeRecipient   = "settlement:fee_recipient"
)

// SettleParams describes a single purchase settlement
type SettleParams struct {
	Payer          domain.Principal
	Seller         domain.Principal
	RequiredAmount uint64
	PaidAmount     uint64
}

// Receipt records the outcome of a successful settlement
type Receipt struct {
	Payer          domain.Principal
	Seller         domain.Principal
	RequiredAmount uint64
	Fee            uint64
	SellerAmount   uint64
	Excess         uint64
}

// Settings is the persistence surface for the fee configuration
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key string, value string) error
}

// Settler executes the atomic three-way value split for a paid access
// purchase: seller payout, platform fee, and buyer refund of any excess
//
//go:generate mockgen -source=settler.go -destination=../mocks/settler.go -package=mocks -mock_names=Settler=MockSettler
type Settler interface {
	// Settle executes the split on the given transaction-scoped ledger.
	// Any failed transfer aborts with no partial payout; rollback of the
	// enclosing operation is the caller's transaction's concern.
	Settle(ctx context.Context, ledger store.Ledger, params SettleParams) (*Receipt, error)
	// FeeBasisPoints returns the configured platform fee in basis points
	FeeBasisPoints(ctx context.Context) (uint32, error)
	// FeeRecipient returns the configured platform fee recipient
	FeeRecipient(ctx context.Context) (domain.Principal, error)
	// SetFeeBasisPoints updates the platform fee; admin only, capped at 3000 bps
	SetFeeBasisPoints(ctx context.Context, caller domain.Principal, bps uint32) error
	// SetFeeRecipient updates the platform fee recipient; admin only, must not be empty
	SetFeeRecipient(ctx context.Context, caller domain.Principal, recipient domain.Principal) error
}

// Config holds the settler configuration
type Config struct {
	// Admin is the only principal allowed to change the fee configuration
	Admin domain.Principal
	// Escrow is the account funds pass through during a settlement
	Escrow domain.Principal
	// DefaultFeeBps applies until a fee has been configured
	DefaultFeeBps uint32
	// DefaultFeeRecipient applies until a recipient has been configured
	DefaultFeeRecipient domain.Principal
}

type settler struct {
	settings  Settings
	publisher messaging.Publisher
	clock     adapter.Clock
	config    Config
}

// NewSettler creates a new payment settler
func NewSettler(settings Settings, publisher messaging.Publisher, clock adapter.Clock, cfg Config) Settler {
	return &settler{
		settings:  settings,
		publisher: publisher,
		clock:     clock,
		config:    cfg,
	}
}

// Settle executes the three-way split through the escrow account. The full
// paid amount moves into escrow first, then out to the seller, the fee
// recipient, and back to the payer for any excess. All transfers run on the
// caller-supplied ledger, so a failure in any leg aborts every other.
func (s *settler) Settle(ctx context.Context, ledger store.Ledger, params SettleParams) (*Receipt, error) {
	if params.PaidAmount < params.RequiredAmount {
		return nil, domain.ErrInsufficientPayment
	}

	feeBps, err := s.FeeBasisPoints(ctx)
	if err != nil {
		return nil, err
	}
	feeRecipient, err := s.FeeRecipient(ctx)
	if err != nil {
		return nil, err
	}

	fee, sellerAmount := domain.SplitFee(params.RequiredAmount, feeBps)
	excess := params.PaidAmount - params.RequiredAmount

	if fee > 0 && feeRecipient == domain.ZeroPrincipal {
		return nil, domain.ErrEmptyFeeRecipient
	}

	if err := ledger.Transfer(ctx, params.Payer, s.config.Escrow, params.PaidAmount); err != nil {
		return nil, fmt.Errorf("failed to collect payment: %w", err)
	}
	if err := ledger.Transfer(ctx, s.config.Escrow, params.Seller, sellerAmount); err != nil {
		return nil, fmt.Errorf("failed to pay seller: %w", err)
	}
	if fee > 0 {
		if err := ledger.Transfer(ctx, s.config.Escrow, feeRecipient, fee); err != nil {
			return nil, fmt.Errorf("failed to pay platform fee: %w", err)
		}
	}
	if excess > 0 {
		if err := ledger.Transfer(ctx, s.config.Escrow, params.Payer, excess); err != nil {
			return nil, fmt.Errorf("failed to refund excess: %w", err)
		}
	}

	return &Receipt{
		Payer:          params.Payer,
		Seller:         params.Seller,
		RequiredAmount: params.RequiredAmount,
		Fee:            fee,
		SellerAmount:   sellerAmount,
		Excess:         excess,
	}, nil
}

// FeeBasisPoints returns the configured platform fee in basis points
func (s *settler) FeeBasisPoints(ctx context.Context) (uint32, error) {
	value, err := s.settings.GetSetting(ctx, settingFeeBasisPoints)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return s.config.DefaultFeeBps, nil
	}

	bps, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse fee basis points: %w", err)
	}

	return uint32(bps), nil
}

// FeeRecipient returns the configured platform fee recipient
func (s *settler) FeeRecipient(ctx context.Context) (domain.Principal, error) {
	value, err := s.settings.GetSetting(ctx, settingFeeRecipient)
	if err != nil {
		return domain.ZeroPrincipal, err
	}
	if value == "" {
		return s.config.DefaultFeeRecipient, nil
	}

	return domain.Principal(value), nil
}

// SetFeeBasisPoints updates the platform fee
func (s *settler) SetFeeBasisPoints(ctx context.Context, caller domain.Principal, bps uint32) error {
	if caller != s.config.Admin {
		return domain.ErrNotAdmin
	}
	if bps > domain.MaxFeeBasisPoints {
		return domain.ErrFeeTooHigh
	}

	old, err := s.FeeBasisPoints(ctx)
	if err != nil {
		return err
	}

	if err := s.settings.SetSetting(ctx, settingFeeBasisPoints, strconv.FormatUint(uint64(bps), 10)); err != nil {
		return err
	}

	s.publish(ctx, &domain.RegistryEvent{
		EventID:   ulid.MustNewDefault(s.clock.Now()).String(),
		EventType: domain.EventTypeFeeBpsUpdated,
		Timestamp: s.clock.Now(),
		OldFeeBps: old,
		NewFeeBps: bps,
	})

	return nil
}

// SetFeeRecipient updates the platform fee recipient
func (s *settler) SetFeeRecipient(ctx context.Context, caller domain.Principal, recipient domain.Principal) error {
	if caller != s.config.Admin {
		return domain.ErrNotAdmin
	}
	if recipient == domain.ZeroPrincipal {
		return domain.ErrEmptyFeeRecipient
	}

	old, err := s.FeeRecipient(ctx)
	if err != nil {
		return err
	}

	if err := s.settings.SetSetting(ctx, settingFeeRecipient, recipient.String()); err != nil {
		return err
	}

	s.publish(ctx, &domain.RegistryEvent{
		EventID:         ulid.MustNewDefault(s.clock.Now()).String(),
		EventType:       domain.EventTypeFeeRecipientUpdated,
		Timestamp:       s.clock.Now(),
		OldFeeRecipient: old,
		NewFeeRecipient: recipient,
	})

	return nil
}

// publish sends a notification; publish failures are logged, never fatal,
// because the configuration change has already committed
func (s *settler) publish(ctx context.Context, event *domain.RegistryEvent) {
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("event_type", string(event.EventType)))
	}
}
