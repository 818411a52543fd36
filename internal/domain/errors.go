package domain

import "errors"

var (
	// ErrFingerprintExists is returned when registering a content fingerprint that is already registered
	ErrFingerprintExists = errors.New("content fingerprint already registered")

	// ErrInvalidCategory is returned when a content category is not one of the supported kinds
	ErrInvalidCategory = errors.New("invalid content category")

	// ErrInvalidPrincipal is returned when a principal address is malformed
	ErrInvalidPrincipal = errors.New("invalid principal address")

	// ErrInvalidRole is returned when assigning a role that is not one of the assignable roles
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyFingerprint is returned when registering content without a fingerprint
	ErrEmptyFingerprint = errors.New("content fingerprint must not be empty")

	// ErrFreeContent is returned when purchasing access to free content
	ErrFreeContent = errors.New("content is free, no purchase needed")

	// ErrFeeTooHigh is returned when configuring a fee above the basis-point cap
	ErrFeeTooHigh = errors.New("fee exceeds maximum basis points")

	// ErrEmptyFeeRecipient is returned when configuring an empty fee recipient
	ErrEmptyFeeRecipient = errors.New("fee recipient must not be empty")

	// ErrContentNotFound is returned when a content record does not exist
	ErrContentNotFound = errors.New("content not found")

	// ErrCredentialNotFound is returned when no ownership credential exists for a content id
	ErrCredentialNotFound = errors.New("ownership credential not found")

	// ErrAccountNotFound is returned when a ledger account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotOwner is returned when a caller attempts an owner-only operation
	ErrNotOwner = errors.New("caller is not the content owner")

	// ErrNotAdmin is returned when a caller attempts an admin-only operation
	ErrNotAdmin = errors.New("caller is not an admin")

	// ErrInsufficientPayment is returned when the paid amount is below the content price
	ErrInsufficientPayment = errors.New("paid amount below content price")

	// ErrInsufficientFunds is returned when a ledger account cannot cover a transfer
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountFrozen is returned when a transfer recipient cannot accept value
	ErrAccountFrozen = errors.New("account is frozen")

	// ErrOwnerDispute is returned when an owner reports a dispute against their own content
	ErrOwnerDispute = errors.New("owner cannot dispute own content")

	// ErrAlreadyDisputed is returned when reporting a dispute on an already disputed record
	ErrAlreadyDisputed = errors.New("content is already disputed")

	// ErrNotDisputed is returned when resolving a record that is not disputed
	ErrNotDisputed = errors.New("content is not disputed")

	// ErrCredentialHolderMismatch is returned when a credential transfer names the wrong holder
	ErrCredentialHolderMismatch = errors.New("credential holder mismatch")
)

// ErrorKind is the coarse error taxonomy callers observe. Every failed
// operation aborts in its entirety and surfaces exactly one kind.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindAuthorization ErrorKind = "authorization"
	KindPayment       ErrorKind = "payment"
	KindState         ErrorKind = "state"
	KindInternal      ErrorKind = "internal"
)

// KindOf classifies an error into the taxonomy. Unrecognized errors are
// internal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFingerprintExists),
		errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidPrincipal),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrEmptyFingerprint),
		errors.Is(err, ErrFreeContent),
		errors.Is(err, ErrFeeTooHigh),
		errors.Is(err, ErrEmptyFeeRecipient):
		return KindValidation
	case errors.Is(err, ErrContentNotFound),
		errors.Is(err, ErrCredentialNotFound),
		errors.Is(err, ErrAccountNotFound):
		return KindNotFound
	case errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrNotAdmin):
		return KindAuthorization
	case errors.Is(err, ErrInsufficientPayment),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrAccountFrozen):
		return KindPayment
	case errors.Is(err, ErrOwnerDispute),
		errors.Is(err, ErrAlreadyDisputed),
		errors.Is(err, ErrNotDisputed),
		errors.Is(err, ErrCredentialHolderMismatch):
		return KindState
	default:
		return KindInternal
	}
}
