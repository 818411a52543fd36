package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// OwnedIndexEntry represents the owned_index table - the reverse index from
// owner to the ids they own, in insertion order. It must always agree with
// the forward owner field on content_records; both are only ever mutated in
// the same transaction. Removal on ownership transfer is swap-with-last, so
// positions stay dense but not sorted after a transfer.
type OwnedIndexEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Owner is the owning principal
	Owner domain.Principal `gorm:"column:owner;not null;type:text;uniqueIndex:uq_owned_index_owner_position,priority:1;uniqueIndex:uq_owned_index_owner_content,priority:1"`
	// ContentID is the owned content id
	ContentID uint64 `gorm:"column:content_id;not null;uniqueIndex:uq_owned_index_owner_content,priority:2"`
	// Position is the zero-based slot in the owner's list
	Position uint64 `gorm:"column:position;not null;uniqueIndex:uq_owned_index_owner_position,priority:2"`
	// CreatedAt is the timestamp when this entry was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnedIndexEntry model
func (OwnedIndexEntry) TableName() string {
	return "owned_index"
}
