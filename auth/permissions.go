package auth

import "github.com/nbui/fitstore-api/apperrors"

// Permission values stored on a user. PermissionUpdate and ItemDelete are
// narrower grants than Admin for their respective actions.
const (
	PermUser             = "USER"
	PermAdmin            = "ADMIN"
	PermItemDelete       = "ITEMDELETE"
	PermPermissionUpdate = "PERMISSIONUPDATE"
)

// Authorize succeeds if the held permission set intersects anyOf. Callers
// must have already handled the signed-out case; this only answers whether a
// known identity is allowed.
func Authorize(held []string, anyOf ...string) error {
	for _, h := range held {
		for _, want := range anyOf {
			if h == want {
				return nil
			}
		}
	}
	return apperrors.ErrForbidden
}

// Owns reports whether the actor is the owner of a resource. Resource gates
// combine this with Authorize as a disjunction: owner OR elevated permission.
func Owns(actorID, ownerID uint) bool {
	return actorID == ownerID
}
