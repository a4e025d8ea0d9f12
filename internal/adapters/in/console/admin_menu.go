package console

import (
	"context"
	"strings"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"
)

func (c *Console) adminActions() []action {
	return []action{
		{"Register admin", c.registerAdmin},
		{"Register supervisor", c.registerSupervisor},
		{"Register technician", c.registerTechnician},
		{"List users", c.listUsers},
		{"List assets", c.listAssets},
		{"Update asset", c.updateAsset},
		{"List work orders by filter", c.listWorkOrders},
		{"Activate or deactivate user", c.setUserActive},
		{"Delete work order", c.deleteWorkOrder},
	}
}

// askCriteria reads "field=value" pairs separated by commas; an empty answer
// matches everything.
func (c *Console) askCriteria(ctx context.Context) (ports.Criteria, error) {
	raw, err := c.ask(ctx, "Filter (field=value, ... or empty)")
	if err != nil {
		return ports.Criteria{}, err
	}

	criteria := ports.NewCriteria()
	for _, pair := range strings.Split(raw, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return ports.Criteria{}, errs.NewValueIsInvalidError("filter " + strings.TrimSpace(pair))
		}
		criteria = criteria.Where(strings.TrimSpace(field), value)
	}
	return criteria, nil
}

func (c *Console) askRole(ctx context.Context) (user.Role, error) {
	raw, err := c.ask(ctx, "Role (ADMIN/SUPERVISOR/TECHNICIAN)")
	if err != nil {
		return user.UnknownRole, err
	}
	return user.ParseRole(raw)
}

func (c *Console) listUsers(ctx context.Context) error {
	role, err := c.askRole(ctx)
	if err != nil {
		return err
	}
	criteria, err := c.askCriteria(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(role, criteria)
	if err != nil {
		return err
	}

	users, err := c.handlers.ListUsers.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printUsers(users)
	return nil
}

func (c *Console) listAssets(ctx context.Context) error {
	criteria, err := c.askCriteria(ctx)
	if err != nil {
		return err
	}

	assets, err := c.handlers.ListAssets.Handle(ctx, queries.NewListAssetsQuery(criteria))
	if err != nil {
		return err
	}

	c.printAssets(assets)
	return nil
}

func (c *Console) updateAsset(ctx context.Context) error {
	raw, err := c.ask(ctx, "Asset id")
	if err != nil {
		return err
	}
	id, err := kernel.ParseID(raw)
	if err != nil {
		return err
	}

	get, err := queries.NewGetAssetQuery(id)
	if err != nil {
		return err
	}
	current, err := c.handlers.GetAsset.Handle(ctx, get)
	if err != nil {
		return err
	}
	c.printAssets([]queries.AssetView{current})

	in, err := c.form(ctx, "Asset type", "Model", "Location", "Acquisition date (dd/mm/yyyy)")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAssetCommand(id, in[0], in[1], in[2], in[3])
	if err != nil {
		return err
	}
	if err = c.handlers.UpdateAsset.Handle(ctx, cmd); err != nil {
		return err
	}

	c.printf("Asset %s updated (acquired %s)\n", id, asset.FormatDate(cmd.AcquisitionDate()))
	return nil
}

func (c *Console) listWorkOrders(ctx context.Context) error {
	criteria, err := c.askCriteria(ctx)
	if err != nil {
		return err
	}

	orders, err := c.handlers.ListWorkOrders.Handle(ctx, queries.NewListWorkOrdersQuery(criteria))
	if err != nil {
		return err
	}

	c.printWorkOrders(orders)
	return nil
}

func (c *Console) setUserActive(ctx context.Context) error {
	role, err := c.askRole(ctx)
	if err != nil {
		return err
	}
	in, err := c.form(ctx, "User id", "Active (yes/no)")
	if err != nil {
		return err
	}

	id, err := kernel.ParseID(in[0])
	if err != nil {
		return err
	}
	active, err := parseYesNo("active", in[1])
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetUserActiveCommand(role, id, active)
	if err != nil {
		return err
	}
	if err = c.handlers.SetUserActive.Handle(ctx, cmd); err != nil {
		return err
	}

	c.printf("%s %s is now %s\n", role, id, activeLabel(active))
	return nil
}

func (c *Console) deleteWorkOrder(ctx context.Context) error {
	raw, err := c.ask(ctx, "Work order id")
	if err != nil {
		return err
	}
	id, err := kernel.ParseID(raw)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteWorkOrderCommand(id)
	if err != nil {
		return err
	}
	if err = c.handlers.DeleteWorkOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	c.printf("Work order %s deleted\n", id)
	return nil
}

func parseYesNo(field, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errs.NewValueIsInvalidError(field)
	}
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
