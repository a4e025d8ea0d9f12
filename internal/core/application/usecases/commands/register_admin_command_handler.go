package commands

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

// RegisterAdminCommandHandler stores a new admin after checking that no other
// admin uses the same email.
type RegisterAdminCommandHandler struct {
	uowFactory AdminUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterAdminCommandHandler creates the handler. The password is hashed
// with hasher before the transaction starts.
func NewRegisterAdminCommandHandler(uowFactory AdminUoWFactory, hasher ports.PasswordHasher) RegisterAdminCommandHandler {
	return RegisterAdminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the identifier of the new admin. A duplicate email yields
// errs.ErrObjectAlreadyExists and nothing is inserted.
func (h RegisterAdminCommandHandler) Handle(ctx context.Context, command RegisterAdminCommand) (kernel.ID, error) {
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

	repo := uow.AdminRepository()

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

	admin, err := user.NewAdmin(profile, command.Department())
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, admin); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return admin.ID(), nil
}
