package roles

import (
	"context"
	"fmt"

	"github.com/artledger/content-registry/internal/domain"
)

// Roles is the persistence surface for role assignments
type Roles interface {
	RoleOf(ctx context.Context, principal domain.Principal) (domain.Role, error)
	SetRole(ctx context.Context, principal domain.Principal, role domain.Role, assignedBy domain.Principal) error
}

// Authority answers authorization questions for registry operations
//
//go:generate mockgen -source=authority.go -destination=../mocks/authority.go -package=mocks -mock_names=Authority=MockAuthority
type Authority interface {
	// RoleOf returns the role assigned to a principal
	RoleOf(ctx context.Context, principal domain.Principal) (domain.Role, error)
	// IsAdmin reports whether a principal holds the admin role
	IsAdmin(ctx context.Context, principal domain.Principal) (bool, error)
	// AssignRole assigns a role to a principal; only admins may assign roles
	AssignRole(ctx context.Context, caller domain.Principal, principal domain.Principal, role domain.Role) error
	// SeedAdmins grants the admin role to the bootstrap principals. It is
	// idempotent and bypasses the caller check so a fresh deployment has at
	// least one admin.
	SeedAdmins(ctx context.Context, principals []domain.Principal) error
}

type authority struct {
	roles Roles
}

// NewAuthority creates a role-based authority over the given store
func NewAuthority(roles Roles) Authority {
	return &authority{roles: roles}
}

func (a *authority) RoleOf(ctx context.Context, principal domain.Principal) (domain.Role, error) {
	return a.roles.RoleOf(ctx, principal)
}

func (a *authority) IsAdmin(ctx context.Context, principal domain.Principal) (bool, error) {
	role, err := a.roles.RoleOf(ctx, principal)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

func (a *authority) AssignRole(ctx context.Context, caller domain.Principal, principal domain.Principal, role domain.Role) error {
	if !domain.IsValidRole(role) {
		return fmt.Errorf("unknown role %q: %w", role, domain.ErrInvalidRole)
	}

	isAdmin, err := a.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !isAdmin {
		return domain.ErrNotAdmin
	}

	return a.roles.SetRole(ctx, principal, role, caller)
}

func (a *authority) SeedAdmins(ctx context.Context, principals []domain.Principal) error {
	for _, principal := range principals {
		role, err := a.roles.RoleOf(ctx, principal)
		if err != nil {
			return err
		}
		if role == domain.RoleAdmin {
			continue
		}
		if err := a.roles.SetRole(ctx, principal, domain.RoleAdmin, principal); err != nil {
			return err
		}
	}
	return nil
}
