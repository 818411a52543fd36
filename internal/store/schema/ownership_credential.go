package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// OwnershipCredential represents the ownership_credentials table - the
// one-certificate-per-content credential minted at registration. The holder
// mirrors the record's owner field 1:1 but is never the source of truth; it
// is kept synchronized by explicit mint/transfer calls in the same
// transaction as the owner change.
type OwnershipCredential struct {
	// ContentID is the content this credential certifies, one per record
	ContentID uint64 `gorm:"column:content_id;primaryKey"`
	// Holder is the current credential holder
	Holder domain.Principal `gorm:"column:holder;not null;type:text;index"`
	// MetadataRef is the metadata reference recorded at mint time
	MetadataRef string `gorm:"column:metadata_ref;not null;type:text"`
	// MintedAt is the timestamp the credential was minted
	MintedAt time.Time `gorm:"column:minted_at;not null;type:timestamptz"`
	// UpdatedAt is the timestamp of the last transfer
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipCredential model
func (OwnershipCredential) TableName() string {
	return "ownership_credentials"
}
