package commands_test

import (
	"errors"
	"testing"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAssetCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewCreateAssetCommand("Pump", "KSB-200", "Line 2", "05/01/2020")
	require.NoError(t, err)

	repo := new(MockAssetRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*asset.IndustrialAsset")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	id, err := commands.NewCreateAssetCommandHandler(newFactory[commands.AssetUoW](uow)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(4), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateAssetCommandHandler_Handle_AddError(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewCreateAssetCommand("Pump", "KSB-200", "Line 2", "05/01/2020")
	require.NoError(t, err)

	repo := new(MockAssetRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewCreateAssetCommandHandler(newFactory[commands.AssetUoW](uow)).Handle(ctx, cmd)

	require.EqualError(t, err, "insert error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
