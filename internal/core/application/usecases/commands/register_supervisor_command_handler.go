package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

// RegisterSupervisorCommandHandler stores a new supervisor. Emails are unique
// among supervisors only; an admin may share one.
type RegisterSupervisorCommandHandler struct {
	uowFactory SupervisorUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterSupervisorCommandHandler creates the handler.
func NewRegisterSupervisorCommandHandler(
	uowFactory SupervisorUoWFactory,
	hasher ports.PasswordHasher,
) RegisterSupervisorCommandHandler {
	return RegisterSupervisorCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the identifier of the new supervisor. Emails are unique among
// supervisors only.
func (h RegisterSupervisorCommandHandler) Handle(
	ctx context.Context,
	command RegisterSupervisorCommand,
) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	hash, err := h.hasher.Hash(command.password)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SupervisorRepository()

	exists, err := repo.ExistsByEmail(ctx, command.Email())
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.NewObjectAlreadyExistsError("email", command.Email().String())
	}

	profile, err := command.profile(hash)
	if err != nil {
		return 0, err
	}

	supervisor, err := user.NewSupervisor(profile, command.Area())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, supervisor); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return supervisor.ID(), nil
}
