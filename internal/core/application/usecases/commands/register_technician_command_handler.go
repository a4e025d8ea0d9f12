package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

// RegisterTechnicianCommandHandler stores a new technician with the active-order
// limit already checked by NewRegisterTechnicianCommand.
type RegisterTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterTechnicianCommandHandler creates the handler.
func NewRegisterTechnicianCommandHandler(
	uowFactory TechnicianUoWFactory,
	hasher ports.PasswordHasher,
) RegisterTechnicianCommandHandler {
	return RegisterTechnicianCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the identifier of the new technician, or
// errs.ErrObjectAlreadyExists when the email is taken.
func (h RegisterTechnicianCommandHandler) Handle(
	ctx context.Context,
	command RegisterTechnicianCommand,
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

	repo := uow.TechnicianRepository()

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

	technician, err := user.NewTechnician(profile, command.MaxActiveOrders())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, technician); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return technician.ID(), nil
}
