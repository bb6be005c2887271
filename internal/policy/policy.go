package policy

import (
	"tasktrack/internal/apperr"
	"tasktrack/internal/model"

	"github.com/google/uuid"
)

// CanActOnEmployee is the self-or-admin rule: the actor may act on a
// resource owned by the given employee iff the actor is that employee or
// holds the Admin role. The action name is only used in the denial reason.
func CanActOnEmployee(actor *model.Employee, ownerID uuid.UUID, action string) error {
	if actor.ID == ownerID || actor.IsAdmin() {
		return nil
	}
	return apperr.Forbidden("only the owner or an admin may %s", action)
}

// RequireAdmin is the admin-only rule: ownership is irrelevant, the actor
// must hold the Admin role.
func RequireAdmin(actor *model.Employee, action string) error {
	if actor.IsAdmin() {
		return nil
	}
	return apperr.Forbidden("only admins may %s", action)
}
