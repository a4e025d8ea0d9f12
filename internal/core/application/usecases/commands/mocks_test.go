package commands_test

import (
	"context"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAdminRepository struct{ mock.Mock }

func (m *MockAdminRepository) Add(ctx context.Context, a *user.Admin) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		_ = a.AssignID(kernel.ID(1))
	}
	return args.Error(0)
}

func (m *MockAdminRepository) Update(ctx context.Context, a *user.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminRepository) Get(ctx context.Context, id kernel.ID) (*user.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Admin), args.Error(1)
}

func (m *MockAdminRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Admin, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Admin), args.Error(1)
}

func (m *MockAdminRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSupervisorRepository struct{ mock.Mock }

func (m *MockSupervisorRepository) Add(ctx context.Context, s *user.Supervisor) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		_ = s.AssignID(kernel.ID(2))
	}
	return args.Error(0)
}

func (m *MockSupervisorRepository) Update(ctx context.Context, s *user.Supervisor) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupervisorRepository) Get(ctx context.Context, id kernel.ID) (*user.Supervisor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Supervisor), args.Error(1)
}

func (m *MockSupervisorRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Supervisor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Supervisor), args.Error(1)
}

func (m *MockSupervisorRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupervisorRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Supervisor, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Supervisor), args.Error(1)
}

func (m *MockSupervisorRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTechnicianRepository struct{ mock.Mock }

func (m *MockTechnicianRepository) Add(ctx context.Context, t *user.Technician) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil {
		_ = t.AssignID(kernel.ID(3))
	}
	return args.Error(0)
}

func (m *MockTechnicianRepository) Update(ctx context.Context, t *user.Technician) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTechnicianRepository) Get(ctx context.Context, id kernel.ID) (*user.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*user.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.Technician, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockTechnicianRepository) List(ctx context.Context, criteria ports.Criteria) ([]*user.Technician, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.Technician), args.Error(1)
}

func (m *MockTechnicianRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAssetRepository struct{ mock.Mock }

func (m *MockAssetRepository) Add(ctx context.Context, a *asset.IndustrialAsset) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		_ = a.AssignID(kernel.ID(4))
	}
	return args.Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, a *asset.IndustrialAsset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssetRepository) Get(ctx context.Context, id kernel.ID) (*asset.IndustrialAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asset.IndustrialAsset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context, criteria ports.Criteria) ([]*asset.IndustrialAsset, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*asset.IndustrialAsset), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		_ = o.AssignID(kernel.ID(5))
	}
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, o *workorder.WorkOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.ID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) List(ctx context.Context, criteria ports.Criteria) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workorder.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) CountInProgressByTechnician(ctx context.Context, id kernel.ID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AdminRepository() ports.AdminRepository {
	args := m.Called()
	return args.Get(0).(ports.AdminRepository)
}

func (m *MockUoW) SupervisorRepository() ports.SupervisorRepository {
	args := m.Called()
	return args.Get(0).(ports.SupervisorRepository)
}

func (m *MockUoW) TechnicianRepository() ports.TechnicianRepository {
	args := m.Called()
	return args.Get(0).(ports.TechnicianRepository)
}

func (m *MockUoW) AssetRepository() ports.AssetRepository {
	args := m.Called()
	return args.Get(0).(ports.AssetRepository)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

// MockUoWFactory hands out one prepared unit of work as whichever
// narrow interface U the handler under test expects.
type MockUoWFactory[U any] struct{ mock.Mock }

func (m *MockUoWFactory[U]) Create() U {
	args := m.Called()
	return args.Get(0).(U)
}

func newFactory[U any](uow *MockUoW) *MockUoWFactory[U] {
	factory := new(MockUoWFactory[U])
	factory.On("Create").Return(uow).Once()
	return factory
}
