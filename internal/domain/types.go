package domain

import (
	"math/bits"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Principal is the calling identity attempting an operation, encoded as a
// hex ledger address (owner, buyer, admin, etc.)
type Principal string

// ZeroPrincipal is the empty principal used as a "nobody" sentinel
const ZeroPrincipal Principal = ""

// NewPrincipal normalizes a raw address into a Principal.
// Hex addresses are checksummed via go-ethereum so that lookups are
// case-insensitive.
func NewPrincipal(address string) (Principal, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return ZeroPrincipal, ErrInvalidPrincipal
	}
	return Principal(common.HexToAddress(address).String()), nil
}

// String returns the string representation of the Principal
func (p Principal) String() string {
	return string(p)
}

// Valid checks if the principal is a well-formed address
func (p Principal) Valid() bool {
	return common.IsHexAddress(string(p))
}

// Category classifies the kind of content a record describes
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryAudio Category = "audio"
	CategoryText  Category = "text"
)

// IsValidCategory checks if a category is one of the supported kinds
func IsValidCategory(c Category) bool {
	return c == CategoryImage || c == CategoryVideo || c == CategoryAudio || c == CategoryText
}

// ContentStatus represents the lifecycle state of a content record
type ContentStatus string

const (
	// StatusActive is the initial and steady state of every record
	StatusActive ContentStatus = "active"
	// StatusInactive is declared but reserved; no transition enters it
	StatusInactive ContentStatus = "inactive"
	// StatusDisputed marks a record with an unresolved ownership dispute.
	// A disputed record is still readable but not transitionable until
	// resolved.
	StatusDisputed ContentStatus = "disputed"
)

// Role classifies principals for authorization decisions
type Role string

const (
	RoleNone        Role = "none"
	RoleUser        Role = "user"
	RolePremiumUser Role = "premium_user"
	RoleModerator   Role = "moderator"
	RoleAdmin       Role = "admin"
)

// IsValidRole checks if a role is one of the assignable roles
func IsValidRole(r Role) bool {
	switch r {
	case RoleNone, RoleUser, RolePremiumUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

const (
	// FeeDenominator is the basis-point denominator: 10000 bps = 100%
	FeeDenominator = 10000
	// MaxFeeBasisPoints caps the platform fee at 30%
	MaxFeeBasisPoints = 3000
)

// SplitFee computes the platform fee and seller payout for a purchase.
// Amounts are integer base units; the fee rounds down so that
// fee + sellerAmount == requiredAmount always holds. The product is
// computed in 128 bits so wei-scale amounts never overflow; requires
// feeBps <= FeeDenominator.
func SplitFee(requiredAmount uint64, feeBps uint32) (fee uint64, sellerAmount uint64) {
	hi, lo := bits.Mul64(requiredAmount, uint64(feeBps))
	fee, _ = bits.Div64(hi, lo, FeeDenominator)
	return fee, requiredAmount - fee
}
