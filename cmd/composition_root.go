package cmd

import (
	"context"
	"errors"

	"maintenance/internal/adapters/in/console"
	"maintenance/internal/adapters/out/bcrypt"
	"maintenance/internal/adapters/out/postgres"
	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires handlers to the GORM unit of work, the bcrypt hasher
// and the clock. Commands get a fresh unit of work per call.
type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     bcrypt.Hasher
	clock      kernel.Clock
}

// NewCompositionRoot fails when the configured bcrypt cost is out of range.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	hasher, err := bcrypt.NewHasher(cfg.Security.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		hasher:     hasher,
		clock:      kernel.SystemClock,
	}, nil
}

// WithClock replaces the clock used to stamp and time work orders.
func (c CompositionRoot) WithClock(clock kernel.Clock) CompositionRoot {
	c.clock = clock
	return c
}

// reader serves queries outside any transaction.
func (c *CompositionRoot) reader() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateRegisterAdminCommandHandler() commands.RegisterAdminCommandHandler {
	var f commands.AdminUoWFactory = FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAdminCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRegisterSupervisorCommandHandler() commands.RegisterSupervisorCommandHandler {
	var f commands.SupervisorUoWFactory = FuncSupervisorUoWFactory(func() commands.SupervisorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterSupervisorCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateRegisterTechnicianCommandHandler() commands.RegisterTechnicianCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTechnicianCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateUpdateSupervisorCommandHandler() commands.UpdateSupervisorCommandHandler {
	var f commands.SupervisorUoWFactory = FuncSupervisorUoWFactory(func() commands.SupervisorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSupervisorCommandHandler(f)
}

func (c *CompositionRoot) CreateSetUserActiveCommandHandler() commands.SetUserActiveCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetUserActiveCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssetCommandHandler() commands.CreateAssetCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssetCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAssetCommandHandler() commands.UpdateAssetCommandHandler {
	var f commands.AssetUoWFactory = FuncAssetUoWFactory(func() commands.AssetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAssetCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveWorkOrderCommandHandler() commands.ResolveWorkOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveWorkOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.reader(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetAssetQueryHandler() queries.GetAssetQueryHandler {
	return queries.NewGetAssetQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateListAssetsQueryHandler() queries.ListAssetsQueryHandler {
	return queries.NewListAssetsQueryHandler(c.reader())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.reader(), c.clock)
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() queries.ListWorkOrdersQueryHandler {
	return queries.NewListWorkOrdersQueryHandler(c.reader(), c.clock)
}

func (c *CompositionRoot) CreateListAssignedWorkOrdersQueryHandler() queries.ListAssignedWorkOrdersQueryHandler {
	return queries.NewListAssignedWorkOrdersQueryHandler(c.reader(), c.clock)
}

// ConsoleHandlers returns every handler the console menus dispatch to.
func (c *CompositionRoot) ConsoleHandlers() console.Handlers {
	return console.Handlers{
		RegisterAdmin:      c.CreateRegisterAdminCommandHandler(),
		RegisterSupervisor: c.CreateRegisterSupervisorCommandHandler(),
		RegisterTechnician: c.CreateRegisterTechnicianCommandHandler(),
		UpdateSupervisor:   c.CreateUpdateSupervisorCommandHandler(),
		SetUserActive:      c.CreateSetUserActiveCommandHandler(),
		CreateAsset:        c.CreateCreateAssetCommandHandler(),
		UpdateAsset:        c.CreateUpdateAssetCommandHandler(),
		CreateWorkOrder:    c.CreateCreateWorkOrderCommandHandler(),
		AssignTechnician:   c.CreateAssignTechnicianCommandHandler(),
		ResolveWorkOrder:   c.CreateResolveWorkOrderCommandHandler(),
		DeleteWorkOrder:    c.CreateDeleteWorkOrderCommandHandler(),

		Authenticate:           c.CreateAuthenticateQueryHandler(),
		GetUser:                c.CreateGetUserQueryHandler(),
		ListUsers:              c.CreateListUsersQueryHandler(),
		GetAsset:               c.CreateGetAssetQueryHandler(),
		ListAssets:             c.CreateListAssetsQueryHandler(),
		GetWorkOrder:           c.CreateGetWorkOrderQueryHandler(),
		ListWorkOrders:         c.CreateListWorkOrdersQueryHandler(),
		ListAssignedWorkOrders: c.CreateListAssignedWorkOrdersQueryHandler(),
	}
}

// BootstrapAdmin registers the configured admin unless one with the same
// email already exists.
func (c *CompositionRoot) BootstrapAdmin(ctx context.Context) error {
	admin := c.cfg.Admin
	if admin.Email == "" {
		return nil
	}

	cmd, err := commands.NewRegisterAdminCommand(
		admin.FirstName, admin.LastName, admin.Email, admin.Password, admin.Department,
	)
	if err != nil {
		return err
	}

	id, err := c.CreateRegisterAdminCommandHandler().Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		c.logger.Debug("bootstrap admin already present", zap.String("email", cmd.Email().String()))
		return nil
	}
	if err != nil {
		return err
	}

	c.logger.Info("bootstrap admin created", zap.Int64("id", int64(id)), zap.String("email", cmd.Email().String()))
	return nil
}

type FuncAdminUoWFactory func() commands.AdminUoW

func (f FuncAdminUoWFactory) Create() commands.AdminUoW {
	return f()
}

type FuncSupervisorUoWFactory func() commands.SupervisorUoW

func (f FuncSupervisorUoWFactory) Create() commands.SupervisorUoW {
	return f()
}

type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncAssetUoWFactory func() commands.AssetUoW

func (f FuncAssetUoWFactory) Create() commands.AssetUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
