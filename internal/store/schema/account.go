package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// Account represents the accounts table - per-principal value balances the
// payment settler moves funds between. A frozen account cannot receive
// value, which is the ledger's "recipient unable to accept" failure mode.
type Account struct {
	// Principal is the account holder
	Principal domain.Principal `gorm:"column:principal;primaryKey;type:text"`
	// Balance is the current balance in base units
	Balance uint64 `gorm:"column:balance;not null;default:0"`
	// Frozen blocks incoming transfers when true
	Frozen bool `gorm:"column:frozen;not null;default:false"`
	// CreatedAt is the timestamp when this account was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this account was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
