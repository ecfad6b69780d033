// Package access decides whether a verified identity may run an operation.
//
// Every privileged operation declares the roles it accepts as a RoleSet and
// calls Authorize before touching storage. Authorize never reads storage: the
// role comes from the token the identity was verified from, so a role change
// would only take effect once the holder obtains a new token.
package access

import (
	"github.com/samber/lo"

	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

// Identity is the caller as established by token verification.
type Identity struct {
	AccountID uint
	Role      models.Role
}

func (i Identity) IsZero() bool {
	return i.AccountID == 0
}

type RoleSet []models.Role

var (
	AdminOnly = RoleSet{models.RoleAdmin}
	UserOnly  = RoleSet{models.RoleUser}
	OwnerOnly = RoleSet{models.RoleOwner}
	AnyRole   = RoleSet{models.RoleAdmin, models.RoleUser, models.RoleOwner}
)

func (s RoleSet) Contains(role models.Role) bool {
	return lo.Contains(s, role)
}

var (
	ErrMissingIdentity = httperr.ErrAuth("auth_missing", "Access denied")
	ErrForbidden       = httperr.ErrForbidden("forbidden", "Forbidden")
)

// Authorize returns the identity unchanged when its role is in allowed.
// A zero identity is an authentication failure, not a forbidden one.
func Authorize(id Identity, allowed RoleSet) (Identity, error) {
	if id.IsZero() {
		return Identity{}, ErrMissingIdentity
	}
	if !allowed.Contains(id.Role) {
		return Identity{}, ErrForbidden
	}
	return id, nil
}
