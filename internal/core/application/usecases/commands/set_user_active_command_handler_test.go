package commands_test

import (
	"testing"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetUserActiveCommandHandler_Handle_DeactivatesTechnician(t *testing.T) {
	ctx := testContext(t)
	technician := restoreTechnician(t, 3, 4, true)
	cmd, err := commands.NewSetUserActiveCommand(user.RoleTechnician, 3, false)
	require.NoError(t, err)

	repo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnicianRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(3)).Return(technician, nil).Once(),
		repo.On("Update", ctx, technician).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewSetUserActiveCommandHandler(newFactory[commands.AccountUoW](uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, technician.IsActive())
	uow.AssertExpectations(t)
}

func TestSetUserActiveCommandHandler_Handle_ActivatesAdmin(t *testing.T) {
	ctx := testContext(t)
	admin := restoreAdmin(t, 1)
	admin.Deactivate()
	cmd, err := commands.NewSetUserActiveCommand(user.RoleAdmin, 1, true)
	require.NoError(t, err)

	repo := new(MockAdminRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AdminRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(1)).Return(admin, nil).Once(),
		repo.On("Update", ctx, admin).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewSetUserActiveCommandHandler(newFactory[commands.AccountUoW](uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, admin.IsActive())
}

func TestSetUserActiveCommandHandler_Handle_SupervisorNotFound(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewSetUserActiveCommand(user.RoleSupervisor, 8, false)
	require.NoError(t, err)

	repo := new(MockSupervisorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupervisorRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(8)).Return(nil, errs.NewObjectNotFoundError("supervisor", 8)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewSetUserActiveCommandHandler(newFactory[commands.AccountUoW](uow)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
