package console

import (
	"context"
	"errors"
	"strconv"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/pkg/errs"

	"go.uber.org/zap"
)

func (c *Console) mainActions() []action {
	return []action{
		{"Register supervisor", c.registerSupervisor},
		{"Register technician", c.registerTechnician},
		{"Log in as supervisor", c.loginAs(user.RoleSupervisor)},
		{"Log in as technician", c.loginAs(user.RoleTechnician)},
		{"Log in as admin", c.loginAs(user.RoleAdmin)},
	}
}

func (c *Console) registerSupervisor(ctx context.Context) error {
	in, err := c.form(ctx, "First name", "Last name", "Email", "Password", "Area")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterSupervisorCommand(in[0], in[1], in[2], in[3], in[4])
	if err != nil {
		return err
	}

	id, err := c.handlers.RegisterSupervisor.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("Supervisor %s registered\n", id)
	return nil
}

func (c *Console) registerTechnician(ctx context.Context) error {
	in, err := c.form(ctx, "First name", "Last name", "Email", "Password", "Max active work orders (2-6)")
	if err != nil {
		return err
	}

	limit, err := parseInt("max active work orders", in[4])
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterTechnicianCommand(in[0], in[1], in[2], in[3], limit)
	if err != nil {
		return err
	}

	id, err := c.handlers.RegisterTechnician.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("Technician %s registered\n", id)
	return nil
}

func (c *Console) registerAdmin(ctx context.Context) error {
	in, err := c.form(ctx, "First name", "Last name", "Email", "Password", "Department")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterAdminCommand(in[0], in[1], in[2], in[3], in[4])
	if err != nil {
		return err
	}

	id, err := c.handlers.RegisterAdmin.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("Admin %s registered\n", id)
	return nil
}

// loginAs authenticates and runs the role's menu until the user logs out.
func (c *Console) loginAs(role user.Role) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		in, err := c.form(ctx, "Email", "Password")
		if err != nil {
			return err
		}

		query, err := queries.NewAuthenticateQuery(role, in[0], in[1])
		if err != nil {
			return err
		}

		session, err := c.handlers.Authenticate.Handle(ctx, query)
		if err != nil {
			return err
		}

		c.session = session
		defer func() { c.session = queries.Session{} }()

		c.logger.Info("logged in",
			zap.Stringer("session", session.ID),
			zap.Stringer("role", session.Role),
			zap.Int64("user_id", int64(session.UserID)),
		)
		c.printf("Welcome, %s\n", session.FullName)

		switch role {
		case user.RoleSupervisor:
			err = c.menu(ctx, "Supervisor menu", c.supervisorActions())
		case user.RoleTechnician:
			err = c.menu(ctx, "Technician menu", c.technicianActions())
		default:
			err = c.menu(ctx, "Admin menu", c.adminActions())
		}

		c.logger.Info("logged out", zap.Stringer("session", session.ID))
		return err
	}
}

func parseInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(field, errors.New(strconv.Quote(raw)+" is not a whole number"))
	}
	return n, nil
}
