package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// AccessGrant represents the access_grants table - the per-content set of
// explicitly authorized principals, kept as its own table keyed by
// (content_id, principal) rather than nested in the record. The owner is
// implicitly authorized and never appears here.
type AccessGrant struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContentID references the content this grant applies to
	ContentID uint64 `gorm:"column:content_id;not null;uniqueIndex:uq_access_grants_content_principal,priority:1"`
	// Principal is the authorized principal
	Principal domain.Principal `gorm:"column:principal;not null;type:text;uniqueIndex:uq_access_grants_content_principal,priority:2"`
	// Source records how the grant came to be (owner grant or purchase)
	Source GrantSource `gorm:"column:source;not null;type:text;default:owner"`
	// CreatedAt is the timestamp when this grant was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// GrantSource records the origin of an access grant
type GrantSource string

const (
	// GrantSourceOwner marks a grant issued directly by the content owner
	GrantSourceOwner GrantSource = "owner"
	// GrantSourcePurchase marks a grant acquired through a paid purchase
	GrantSourcePurchase GrantSource = "purchase"
)

// TableName specifies the table name for the AccessGrant model
func (AccessGrant) TableName() string {
	return "access_grants"
}
