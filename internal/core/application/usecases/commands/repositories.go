package commands

import (
	"context"

	"maintenance/internal/core/ports"
)

// Handlers depend on the narrowest unit of work that covers the repositories
// they touch, so tests mock only what a handler uses.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AdminRepoFactory interface {
		AdminRepository() ports.AdminRepository
	}

	SupervisorRepoFactory interface {
		SupervisorRepository() ports.SupervisorRepository
	}

	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	AssetRepoFactory interface {
		AssetRepository() ports.AssetRepository
	}

	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	AdminUoW interface {
		TxManager
		AdminRepoFactory
	}

	AdminUoWFactory interface {
		Create() AdminUoW
	}

	SupervisorUoW interface {
		TxManager
		SupervisorRepoFactory
	}

	SupervisorUoWFactory interface {
		Create() SupervisorUoW
	}

	TechnicianUoW interface {
		TxManager
		TechnicianRepoFactory
	}

	TechnicianUoWFactory interface {
		Create() TechnicianUoW
	}

	AccountUoW interface {
		TxManager
		AdminRepoFactory
		SupervisorRepoFactory
		TechnicianRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	AssetUoW interface {
		TxManager
		AssetRepoFactory
	}

	AssetUoWFactory interface {
		Create() AssetUoW
	}

	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	DispatchUoW interface {
		TxManager
		TechnicianRepoFactory
		WorkOrderRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	UoW interface {
		TxManager
		SupervisorRepoFactory
		AssetRepoFactory
		WorkOrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
