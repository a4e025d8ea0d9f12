// Package postgres provides the GORM-backed persistence of the maintenance
// console: the Unit of Work, connection setup and schema migration.
//
// The Unit of Work maintains the aggregates touched by one business transaction
// and coordinates writing them out through repositories bound to a single
// database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	count, err := uow.WorkOrderRepository().CountInProgressByTechnician(ctx, technicianID)
//	if err != nil {
//	    return err
//	}
//	// ... admit, assign, update
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning gorm.ErrInvalidTransaction,
// which is why handlers ignore its result in the deferred call.
package postgres

import (
	"context"

	"maintenance/internal/adapters/out/postgres/assetrepo"
	"maintenance/internal/adapters/out/postgres/userrepo"
	"maintenance/internal/adapters/out/postgres/workorderrepo"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormUnitOfWorkFactory binds the factory to an open connection pool.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *zap.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewPersistenceError("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.logger.Debug("transaction started")
	return nil
}

// Commit makes every write of the transaction permanent and closes it.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.logger.Warn("transaction commit failed", zap.Error(err))
		return errs.NewPersistenceError("commit transaction", err)
	}

	uow.logger.Debug("transaction committed", zap.Int("aggregates", len(uow.trackedAggregates)))
	return nil
}

// Rollback discards every write of the transaction and closes it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.logger.Warn("transaction rolled back",
		zap.Int("discarded_aggregates", len(uow.trackedAggregates)),
		zap.Error(err),
	)
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// AdminRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) AdminRepository() ports.AdminRepository {
	return userrepo.NewGormAdminRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SupervisorRepository() ports.SupervisorRepository {
	return userrepo.NewGormSupervisorRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TechnicianRepository() ports.TechnicianRepository {
	return userrepo.NewGormTechnicianRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AssetRepository() ports.AssetRepository {
	return assetrepo.NewGormAssetRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return workorderrepo.NewGormWorkOrderRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after every successful add or update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written in the current transaction.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

// conn returns the open transaction, or the pool when none is open so that
// read-only callers can use repositories without Begin.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
