package schema

import (
	"time"

	"github.com/artledger/content-registry/internal/domain"
)

// RoleAssignment represents the role_assignments table - the role authority's
// principal classification. Principals without a row have RoleNone.
type RoleAssignment struct {
	// Principal is the classified principal
	Principal domain.Principal `gorm:"column:principal;primaryKey;type:text"`
	// Role is the assigned role
	Role domain.Role `gorm:"column:role;not null;type:text"`
	// AssignedBy is the admin that granted the role (empty for seeded admins)
	AssignedBy domain.Principal `gorm:"column:assigned_by;type:text"`
	// CreatedAt is the timestamp when this assignment was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this assignment was last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RoleAssignment model
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
