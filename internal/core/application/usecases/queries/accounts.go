package queries

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

// Each role lives in its own table; these helpers pick the repository by role.

func getAccount(ctx context.Context, reader AccountReader, role user.Role, id kernel.ID) (user.Account, error) {
	switch role {
	case user.RoleAdmin:
		return unwrap(reader.AdminRepository().Get(ctx, id))
	case user.RoleSupervisor:
		return unwrap(reader.SupervisorRepository().Get(ctx, id))
	case user.RoleTechnician:
		return unwrap(reader.TechnicianRepository().Get(ctx, id))
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}

func findAccount(ctx context.Context, reader AccountReader, role user.Role, email kernel.Email) (user.Account, error) {
	switch role {
	case user.RoleAdmin:
		return unwrap(reader.AdminRepository().GetByEmail(ctx, email))
	case user.RoleSupervisor:
		return unwrap(reader.SupervisorRepository().GetByEmail(ctx, email))
	case user.RoleTechnician:
		return unwrap(reader.TechnicianRepository().GetByEmail(ctx, email))
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}

func listAccounts(
	ctx context.Context,
	reader AccountReader,
	role user.Role,
	criteria ports.Criteria,
) ([]UserView, error) {
	switch role {
	case user.RoleAdmin:
		return toUserViews(reader.AdminRepository().List(ctx, criteria))
	case user.RoleSupervisor:
		return toUserViews(reader.SupervisorRepository().List(ctx, criteria))
	case user.RoleTechnician:
		return toUserViews(reader.TechnicianRepository().List(ctx, criteria))
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}

// unwrap keeps a nil pointer from turning into a non-nil user.Account.
func unwrap[A user.Account](account A, err error) (user.Account, error) {
	if err != nil {
		return nil, err
	}
	return account, nil
}

func toUserViews[A user.Account](accounts []A, err error) ([]UserView, error) {
	if err != nil {
		return nil, err
	}
	views := make([]UserView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, newUserView(a))
	}
	return views, nil
}
