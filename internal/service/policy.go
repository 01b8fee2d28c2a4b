package service

import "fmt"

// CanModify reports whether actorID may mutate a resource owned by ownerID.
// Ownership is plain id equality; a user owns their own account.
func CanModify(actorID, ownerID string) bool {
	return actorID != "" && actorID == ownerID
}

// authorize returns a Forbidden error carrying detail when actorID is not the owner.
// Callers must have confirmed the resource exists first.
func authorize(actorID, ownerID, detail string) error {
	if !CanModify(actorID, ownerID) {
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	}
	return nil
}
