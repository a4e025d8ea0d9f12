package console

import (
	"context"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/core/ports"
)

func (c *Console) supervisorActions() []action {
	return []action{
		{"Register asset", c.createAsset},
		{"Open work order", c.createWorkOrder},
		{"Assign technician", c.assignTechnician},
		{"List unassigned work orders", c.listUnassigned},
		{"Show my profile", c.showProfile},
		{"Update my profile", c.updateProfile},
	}
}

func (c *Console) createAsset(ctx context.Context) error {
	in, err := c.form(ctx, "Asset type", "Model", "Location", "Acquisition date (dd/mm/yyyy)")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateAssetCommand(in[0], in[1], in[2], in[3])
	if err != nil {
		return err
	}

	id, err := c.handlers.CreateAsset.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("Asset %s registered\n", id)
	return nil
}

func (c *Console) createWorkOrder(ctx context.Context) error {
	in, err := c.form(ctx,
		"Asset id",
		"Title",
		"Description",
		"Maintenance type (PREVENTIVE/CORRECTIVE)",
		"Priority (LOW/MEDIUM/HIGH/URGENT/CRITICAL)",
		"Estimated time",
		"Time unit (HOURS/DAYS/WEEKS)",
	)
	if err != nil {
		return err
	}

	assetID, err := kernel.ParseID(in[0])
	if err != nil {
		return err
	}
	amount, err := parseInt("estimated time", in[5])
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateWorkOrderCommand(c.session.UserID, assetID, in[1], in[2], in[3], in[4], amount, in[6])
	if err != nil {
		return err
	}

	id, err := c.handlers.CreateWorkOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	c.printf("Work order %s opened\n", id)
	return nil
}

func (c *Console) assignTechnician(ctx context.Context) error {
	in, err := c.form(ctx, "Work order id", "Technician id")
	if err != nil {
		return err
	}

	orderID, err := kernel.ParseID(in[0])
	if err != nil {
		return err
	}
	technicianID, err := kernel.ParseID(in[1])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignTechnicianCommand(orderID, technicianID)
	if err != nil {
		return err
	}
	if err = c.handlers.AssignTechnician.Handle(ctx, cmd); err != nil {
		return err
	}

	return c.showWorkOrder(ctx, orderID)
}

func (c *Console) listUnassigned(ctx context.Context) error {
	criteria := ports.NewCriteria().Where("status", workorder.Unassigned.String())
	orders, err := c.handlers.ListWorkOrders.Handle(ctx, queries.NewListWorkOrdersQuery(criteria))
	if err != nil {
		return err
	}
	c.printWorkOrders(orders)
	return nil
}

func (c *Console) showProfile(ctx context.Context) error {
	query, err := queries.NewGetUserQuery(c.session.Role, c.session.UserID)
	if err != nil {
		return err
	}

	view, err := c.handlers.GetUser.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printUsers([]queries.UserView{view})
	return nil
}

func (c *Console) updateProfile(ctx context.Context) error {
	in, err := c.form(ctx, "First name", "Last name", "Email", "Area")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSupervisorCommand(c.session.UserID, in[0], in[1], in[2], in[3])
	if err != nil {
		return err
	}
	if err = c.handlers.UpdateSupervisor.Handle(ctx, cmd); err != nil {
		return err
	}

	c.printf("Profile updated\n")
	return nil
}

func (c *Console) showWorkOrder(ctx context.Context, id kernel.ID) error {
	query, err := queries.NewGetWorkOrderQuery(id)
	if err != nil {
		return err
	}

	view, err := c.handlers.GetWorkOrder.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printWorkOrders([]queries.WorkOrderView{view})
	return nil
}
