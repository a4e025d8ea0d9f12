package console

import (
	"context"

	"maintenance/internal/core/application/usecases/commands"
	"maintenance/internal/core/application/usecases/queries"
	"maintenance/internal/core/domain/model/kernel"
)

func (c *Console) technicianActions() []action {
	return []action{
		{"List my work orders", c.listAssigned},
		{"Resolve work order", c.resolveWorkOrder},
	}
}

func (c *Console) listAssigned(ctx context.Context) error {
	query, err := queries.NewListAssignedWorkOrdersQuery(c.session.UserID)
	if err != nil {
		return err
	}

	orders, err := c.handlers.ListAssignedWorkOrders.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printWorkOrders(orders)
	return nil
}

func (c *Console) resolveWorkOrder(ctx context.Context) error {
	in, err := c.form(ctx, "Work order id", "Closure comments")
	if err != nil {
		return err
	}

	orderID, err := kernel.ParseID(in[0])
	if err != nil {
		return err
	}

	if in[1] == "" {
		answer, err := c.ask(ctx, "Resolve without closure comments? (yes/no)")
		if err != nil {
			return err
		}
		confirmed, err := parseYesNo("confirmation", answer)
		if err != nil {
			return err
		}
		if !confirmed {
			c.printf("Work order %s left open\n", orderID)
			return nil
		}
	}

	cmd, err := commands.NewResolveWorkOrderCommand(c.session.UserID, orderID, in[1])
	if err != nil {
		return err
	}
	if err = c.handlers.ResolveWorkOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	return c.showWorkOrder(ctx, orderID)
}
