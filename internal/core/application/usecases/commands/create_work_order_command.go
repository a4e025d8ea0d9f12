package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
	"maintenance/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand opens an UNASSIGNED work order for an asset on
// behalf of a supervisor. Enumerations are accepted by name, e.g.
// "CORRECTIVE", "HIGH", "DAYS".
type CreateWorkOrderCommand struct {
	supervisorID    kernel.ID
	assetID         kernel.ID
	title           string
	description     string
	maintenanceType workorder.MaintenanceType
	priority        workorder.Priority
	estimate        workorder.Estimate
	guard           guard.ConstructorGuard
}

func NewCreateWorkOrderCommand(
	supervisorID, assetID kernel.ID,
	title, description string,
	maintenanceType, priority string,
	estimatedTime int,
	timeUnit string,
) (CreateWorkOrderCommand, error) {
	cleanTitle, titleErr := kernel.RequireText("title", title, kernel.MinNameLength)
	cleanDescription, descriptionErr := kernel.RequireText("description", description, kernel.MinNameLength)
	kind, kindErr := workorder.ParseMaintenanceType(maintenanceType)
	level, levelErr := workorder.ParsePriority(priority)
	unit, unitErr := workorder.ParseTimeUnit(timeUnit)

	var (
		estimate    workorder.Estimate
		estimateErr error
	)
	if unitErr == nil {
		estimate, estimateErr = workorder.NewEstimate(estimatedTime, unit)
	}

	if err := errors.Join(
		supervisorID.Validate(),
		assetID.Validate(),
		titleErr,
		descriptionErr,
		kindErr,
		levelErr,
		unitErr,
		estimateErr,
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return CreateWorkOrderCommand{
		supervisorID:    supervisorID,
		assetID:         assetID,
		title:           cleanTitle,
		description:     cleanDescription,
		maintenanceType: kind,
		priority:        level,
		estimate:        estimate,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// SupervisorID returns the supervisor opening the order.
func (c CreateWorkOrderCommand) SupervisorID() kernel.ID {
	return c.supervisorID
}

// AssetID returns the asset the work is about.
func (c CreateWorkOrderCommand) AssetID() kernel.ID {
	return c.assetID
}

// Title returns the short summary of the work.
func (c CreateWorkOrderCommand) Title() string {
	return c.title
}

// Description returns the detailed problem statement.
func (c CreateWorkOrderCommand) Description() string {
	return c.description
}

// MaintenanceType returns the parsed maintenance type.
func (c CreateWorkOrderCommand) MaintenanceType() workorder.MaintenanceType {
	return c.maintenanceType
}

// Priority returns the parsed priority.
func (c CreateWorkOrderCommand) Priority() workorder.Priority {
	return c.priority
}

// Estimate returns the expected effort.
func (c CreateWorkOrderCommand) Estimate() workorder.Estimate {
	return c.estimate
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed otherwise.
func (c *CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}
