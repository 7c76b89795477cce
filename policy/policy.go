// Package policy holds the pure authorization checks. Both checks run before
// any mutating operation touches storage.
package policy

import (
	"lms/apperr"
)

// Identity is the resolved caller: who they are and their single role.
type Identity struct {
	UserID uint
	Role   string
}

func RequireRole(identity Identity, role string) error {
	if identity.Role != role {
		return apperr.Newf(apperr.Forbidden, "%s access required", role)
	}
	return nil
}

// RequireOwnership compares owner IDs by value.
func RequireOwnership(identity Identity, resourceOwnerID uint) error {
	if identity.UserID != resourceOwnerID {
		return apperr.New(apperr.Forbidden, "not allowed")
	}
	return nil
}
