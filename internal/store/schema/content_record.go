package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// ContentRecord represents the content_records table - the primary entity of
// the registry. The id is assigned by the database sequence and is therefore
// positive, monotonic, and never reused; 0 is the "not found" sentinel.
type ContentRecord struct {
	// ID is the content identifier assigned at registration
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Owner is the owning principal. This field is authoritative; the
	// ownership credential only mirrors it.
	Owner domain.Principal `gorm:"column:owner;not null;type:text;index"`
	// Fingerprint is the content-addressed identifier of the content bytes,
	// globally unique among records
	Fingerprint string `gorm:"column:fingerprint;not null;uniqueIndex;type:text"`
	// MetadataFingerprint is the content-addressed identifier of the record's
	// metadata document (mutable)
	MetadataFingerprint string `gorm:"column:metadata_fingerprint;not null;type:text"`
	// Category classifies the content (image, video, audio, text)
	Category domain.Category `gorm:"column:category;not null;type:text"`
	// Status is the lifecycle state (active, inactive, disputed)
	Status domain.ContentStatus `gorm:"column:status;not null;type:text;default:active"`
	// Price is the access price in base units; 0 means free
	Price uint64 `gorm:"column:price;not null;default:0"`
	// AITrainingAllowed indicates whether the owner permits AI training use
	AITrainingAllowed bool `gorm:"column:ai_training_allowed;not null;default:false"`
	// RegisteredAt is the ledger time of registration, set once
	RegisteredAt time.Time `gorm:"column:registered_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Grants     []AccessGrant        `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
	Credential *OwnershipCredential `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ContentRecord model
func (ContentRecord) TableName() string {
	return "content_records"
}
