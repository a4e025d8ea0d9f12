package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	postgresadapter "maintenance/internal/adapters/out/postgres"
	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnitOfWorkTestSuite exercises the unit of work against whatever database
// the embedding test opens: in-memory SQLite here, PostgreSQL in the
// integration test.
type UnitOfWorkTestSuite struct {
	suite.Suite
	db      *gorm.DB
	factory ports.UnitOfWorkFactory
	reset   func() error
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.Require().NoError(suite.reset())
}

func (suite *UnitOfWorkTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.AdminRepository())
	suite.NotNil(uow1.SupervisorRepository())
	suite.NotNil(uow1.TechnicianRepository())
	suite.NotNil(uow1.AssetRepository())
	suite.NotNil(uow1.WorkOrderRepository())
}

func (suite *UnitOfWorkTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestCommitAndRollbackWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestCommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	supervisor := suite.newSupervisor("carla@plant.io")
	suite.Require().NoError(uow.SupervisorRepository().Add(ctx, supervisor))

	pump := suite.newAsset()
	suite.Require().NoError(uow.AssetRepository().Add(ctx, pump))

	order := suite.newOrder(supervisor.ID(), pump.ID())
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))

	suite.Require().NoError(uow.Commit(ctx))
	suite.Equal(3, uow.(*postgresadapter.GormUnitOfWork).TrackedCount())

	reader := suite.factory.Create()
	got, err := reader.WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(supervisor.ID(), got.CreatedBy())
	suite.Equal(pump.ID(), got.AssetID())
}

func (suite *UnitOfWorkTestSuite) TestRollbackDiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	supervisor := suite.newSupervisor("leo@plant.io")
	suite.Require().NoError(uow.SupervisorRepository().Add(ctx, supervisor))
	pump := suite.newAsset()
	suite.Require().NoError(uow.AssetRepository().Add(ctx, pump))

	_, err := uow.SupervisorRepository().Get(ctx, supervisor.ID())
	suite.Require().NoError(err, "writes are visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.SupervisorRepository().Get(ctx, supervisor.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.AssetRepository().Get(ctx, pump.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestAssignmentInOneTransaction() {
	ctx := context.Background()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	supervisor := suite.newSupervisor("sara@plant.io")
	suite.Require().NoError(setup.SupervisorRepository().Add(ctx, supervisor))
	technician := suite.newTechnician("tomas@plant.io", 2)
	suite.Require().NoError(setup.TechnicianRepository().Add(ctx, technician))
	pump := suite.newAsset()
	suite.Require().NoError(setup.AssetRepository().Add(ctx, pump))
	order := suite.newOrder(supervisor.ID(), pump.ID())
	suite.Require().NoError(setup.WorkOrderRepository().Add(ctx, order))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.TechnicianRepository().GetForUpdate(ctx, technician.ID())
	suite.Require().NoError(err)
	count, err := uow.WorkOrderRepository().CountInProgressByTechnician(ctx, locked.ID())
	suite.Require().NoError(err)
	suite.Zero(count)

	stored, err := uow.WorkOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stored.AssignTo(locked.ID()))
	suite.Require().NoError(uow.WorkOrderRepository().Update(ctx, stored))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	count, err = reader.WorkOrderRepository().CountInProgressByTechnician(ctx, technician.ID())
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *UnitOfWorkTestSuite) newSupervisor(email string) *user.Supervisor {
	e, err := kernel.NewEmail(email)
	suite.Require().NoError(err)
	p, err := user.NewProfile("Carla", "Mendez", e, "hash")
	suite.Require().NoError(err)
	s, err := user.NewSupervisor(p, "Boilers")
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkTestSuite) newTechnician(email string, limit int) *user.Technician {
	e, err := kernel.NewEmail(email)
	suite.Require().NoError(err)
	p, err := user.NewProfile("Tomas", "Vidal", e, "hash")
	suite.Require().NoError(err)
	tech, err := user.NewTechnician(p, limit)
	suite.Require().NoError(err)
	return tech
}

func (suite *UnitOfWorkTestSuite) newAsset() *asset.IndustrialAsset {
	a, err := asset.NewIndustrialAsset("Pump", "P-300", "Hall D", time.Date(2018, 4, 9, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	return a
}

func (suite *UnitOfWorkTestSuite) newOrder(createdBy, assetID kernel.ID) *workorder.WorkOrder {
	estimate, err := workorder.NewEstimate(1, workorder.Days)
	suite.Require().NoError(err)
	wo, err := workorder.NewWorkOrder("Replace impeller", "Impeller worn out", createdBy, assetID,
		workorder.Corrective, workorder.Urgent, estimate, time.Now().UTC())
	suite.Require().NoError(err)
	return wo
}

var maintenanceTables = []string{"work_orders", "industrial_assets", "technicians", "supervisors", "admins"}

func TestUnitOfWorkSQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:uow_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := postgresadapter.Connect(postgresadapter.ConnectionConfig{
		Driver:       postgresadapter.DriverSQLite,
		DSN:          dsn,
		MaxOpenConns: 1,
		LogLevel:     "silent",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err = postgresadapter.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	suite.Run(t, &UnitOfWorkTestSuite{
		db:      db,
		factory: postgresadapter.NewGormUnitOfWorkFactory(db, zap.NewNop()),
		reset: func() error {
			for _, table := range maintenanceTables {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
