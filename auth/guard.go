package auth

import "github.com/google/uuid"

// AuthorizeOwnership decides whether the caller may mutate a resource it
// claims to own. Pure equality between the caller's resolved id and the
// resource's recorded owner id; distinct from authentication.
func AuthorizeOwnership(callerID, ownerID uuid.UUID) error {
	if callerID == uuid.Nil || callerID != ownerID {
		return ErrNotResourceOwner
	}
	return nil
}

// HasRole checks if the identity carries a specific role
func HasRole(identity Identity, role string) bool {
	if identity == nil {
		return false
	}
	for _, r := range identity.Roles() {
		if r == role {
			return true
		}
	}
	return false
}
