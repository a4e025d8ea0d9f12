package commands

import (
	"context"
	"errors"

	"maintenance/internal/pkg/errs"
)

// UpdateSupervisorCommandHandler rewrites a supervisor's name, email and area.
type UpdateSupervisorCommandHandler struct {
	uowFactory SupervisorUoWFactory
}

// NewUpdateSupervisorCommandHandler creates the handler.
func NewUpdateSupervisorCommandHandler(uowFactory SupervisorUoWFactory) UpdateSupervisorCommandHandler {
	return UpdateSupervisorCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectAlreadyExists when the new email belongs to
// another supervisor. Keeping the current email is always allowed.
func (h UpdateSupervisorCommandHandler) Handle(ctx context.Context, command UpdateSupervisorCommand) error {
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

	repo := uow.SupervisorRepository()

	supervisor, err := repo.Get(ctx, command.SupervisorID())
	if err != nil {
		return err
	}

	if !supervisor.Email().IsEqual(command.Email()) {
		exists, existsErr := repo.ExistsByEmail(ctx, command.Email())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("email", command.Email().String())
		}
	}

	if err = errors.Join(
		supervisor.Rename(command.FirstName(), command.LastName()),
		supervisor.ChangeEmail(command.Email()),
		supervisor.ChangeArea(command.Area()),
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, supervisor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
