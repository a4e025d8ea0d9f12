package commands

import (
	"context"

	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/errs"
)

// SetUserActiveCommandHandler activates or deactivates an account of any role.
// Deactivated users cannot log in, supervisors cannot open orders and
// technicians receive no new assignments.
type SetUserActiveCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetUserActiveCommandHandler creates the handler.
func NewSetUserActiveCommandHandler(uowFactory AccountUoWFactory) SetUserActiveCommandHandler {
	return SetUserActiveCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the role has no user with the
// given identifier. Setting the current state again is not an error.
func (h SetUserActiveCommandHandler) Handle(ctx context.Context, command SetUserActiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.apply(ctx, uow, command); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SetUserActiveCommandHandler) apply(ctx context.Context, uow AccountUoW, command SetUserActiveCommand) error {
	switch command.Role() {
	case user.RoleAdmin:
		repo := uow.AdminRepository()
		admin, err := repo.Get(ctx, command.UserID())
		if err != nil {
			return err
		}
		toggle(&admin.Profile, command.Active())
		return repo.Update(ctx, admin)
	case user.RoleSupervisor:
		repo := uow.SupervisorRepository()
		supervisor, err := repo.Get(ctx, command.UserID())
		if err != nil {
			return err
		}
		toggle(&supervisor.Profile, command.Active())
		return repo.Update(ctx, supervisor)
	case user.RoleTechnician:
		repo := uow.TechnicianRepository()
		technician, err := repo.Get(ctx, command.UserID())
		if err != nil {
			return err
		}
		toggle(&technician.Profile, command.Active())
		return repo.Update(ctx, technician)
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

func toggle(profile *user.Profile, active bool) {
	if active {
		profile.Activate()
		return
	}
	profile.Deactivate()
}
