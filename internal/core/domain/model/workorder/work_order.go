package workorder

import (
	"errors"
	"fmt"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

// minTextLength applies to title and description after trimming.
const minTextLength = 2

// ErrWorkOrderIsNotConstructed is returned by Validate for a zero or nil WorkOrder.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

// WorkOrder is the aggregate root of the maintenance lifecycle.
//
// Invariants:
//   - resolvedAt is set only when assignedTo is set
//   - resolvedAt never precedes openedAt
//   - status always equals what assignedTo and resolvedAt imply
type WorkOrder struct {
	id              kernel.ID
	title           string
	description     string
	createdBy       kernel.ID
	assetID         kernel.ID
	maintenanceType MaintenanceType
	priority        Priority
	estimate        Estimate
	assignedTo      *kernel.ID
	openedAt        time.Time
	resolvedAt      *time.Time
	closureComments *string
	status          Status
	guard           guard.ConstructorGuard
}

// NewWorkOrder opens an UNASSIGNED work order.
//
// Example:
//
//	estimate, _ := workorder.NewEstimate(4, workorder.Hours)
//	wo, err := workorder.NewWorkOrder("Replace seal", "Pump P-1 leaks oil",
//	    supervisor.ID(), pump.ID(), workorder.Corrective, workorder.High, estimate, now)
func NewWorkOrder(
	title, description string,
	createdBy, assetID kernel.ID,
	maintenanceType MaintenanceType,
	priority Priority,
	estimate Estimate,
	openedAt time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		maintenanceType: maintenanceType,
		priority:        priority,
		estimate:        estimate,
		guard:           guard.NewConstructorGuard(),
	}

	var openedErr error
	if openedAt.IsZero() {
		openedErr = errs.NewValueIsRequiredError("opened at")
	}

	if err := errors.Join(
		wo.setTitle(title),
		wo.setDescription(description),
		wo.setCreatedBy(createdBy),
		wo.setAssetID(assetID),
		maintenanceType.Validate(),
		priority.Validate(),
		estimate.Validate(),
		openedErr,
	); err != nil {
		return nil, err
	}

	wo.openedAt = openedAt.UTC()
	wo.status = wo.deriveStatus()
	return wo, nil
}

// RestoreWorkOrder rebuilds a stored work order. The stored status must agree
// with the assignment and resolution fields.
func RestoreWorkOrder(
	id kernel.ID,
	title, description string,
	createdBy, assetID kernel.ID,
	maintenanceType MaintenanceType,
	priority Priority,
	estimate Estimate,
	openedAt time.Time,
	assignedTo *kernel.ID,
	resolvedAt *time.Time,
	closureComments *string,
	storedStatus Status,
) (*WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	wo, err := NewWorkOrder(title, description, createdBy, assetID, maintenanceType, priority, estimate, openedAt)
	if err != nil {
		return nil, err
	}
	wo.id = id

	if assignedTo != nil {
		if err = assignedTo.Validate(); err != nil {
			return nil, err
		}
		technician := *assignedTo
		wo.assignedTo = &technician
	}

	if resolvedAt != nil {
		if wo.assignedTo == nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("resolved at", errors.New("resolved without a technician"))
		}
		if err = wo.setResolvedAt(*resolvedAt); err != nil {
			return nil, err
		}
		wo.closureComments = closureComments
	}

	wo.status = wo.deriveStatus()
	if storedStatus != wo.status {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("stored %s does not match derived %s", storedStatus, wo.status),
		)
	}

	return wo, nil
}

// Validate reports whether the order was built by NewWorkOrder or RestoreWorkOrder.
// Repositories call it before mapping an order to storage.
func (wo *WorkOrder) Validate() error {
	if wo == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return wo.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// ID returns the storage identifier, zero before the first insert.
func (wo *WorkOrder) ID() kernel.ID {
	return wo.id
}

// Title returns the trimmed title.
func (wo *WorkOrder) Title() string {
	return wo.title
}

// Description returns the trimmed description.
func (wo *WorkOrder) Description() string {
	return wo.description
}

// CreatedBy returns the identifier of the supervisor who opened the order.
func (wo *WorkOrder) CreatedBy() kernel.ID {
	return wo.createdBy
}

// AssetID returns the identifier of the asset the order is about.
func (wo *WorkOrder) AssetID() kernel.ID {
	return wo.assetID
}

// MaintenanceType returns PREVENTIVE or CORRECTIVE.
func (wo *WorkOrder) MaintenanceType() MaintenanceType {
	return wo.maintenanceType
}

// Priority returns how pressing the order is.
func (wo *WorkOrder) Priority() Priority {
	return wo.priority
}

// Estimate returns the expected effort; Deadline is derived from it.
func (wo *WorkOrder) Estimate() Estimate {
	return wo.estimate
}

// AssignedTo returns the technician's ID, nil while UNASSIGNED.
func (wo *WorkOrder) AssignedTo() *kernel.ID {
	return wo.assignedTo
}

// OpenedAt returns the moment the order was created, in UTC.
func (wo *WorkOrder) OpenedAt() time.Time {
	return wo.openedAt
}

// ResolvedAt returns nil until the order is resolved.
func (wo *WorkOrder) ResolvedAt() *time.Time {
	return wo.resolvedAt
}

// ClosureComments returns nil until the order is resolved.
func (wo *WorkOrder) ClosureComments() *string {
	return wo.closureComments
}

// Status returns the state derived from the assignment and resolution:
// UNASSIGNED without a technician, IN_PROGRESS with one, RESOLVED once
// resolved. It is never set directly.
func (wo *WorkOrder) Status() Status {
	return wo.status
}

// IsAssignedTo reports whether technicianID currently holds the order.
func (wo *WorkOrder) IsAssignedTo(technicianID kernel.ID) bool {
	return wo.assignedTo != nil && wo.assignedTo.IsEqual(technicianID)
}

// AssignID records the identifier produced by storage on first insert.
func (wo *WorkOrder) AssignID(id kernel.ID) error {
	if !wo.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("already assigned as %s", wo.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	wo.id = id
	return nil
}

// AssignTo hands the order to a technician. An UNASSIGNED order becomes
// IN_PROGRESS; an IN_PROGRESS order is reassigned. RESOLVED orders reject it.
func (wo *WorkOrder) AssignTo(technicianID kernel.ID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	if err := wo.status.ValidateAssign(); err != nil {
		return err
	}

	wo.assignedTo = &technicianID
	wo.status = wo.deriveStatus()
	return nil
}

// Resolve closes an IN_PROGRESS order. The comments are stored as given.
func (wo *WorkOrder) Resolve(closureComments string, at time.Time) error {
	if err := wo.status.ValidateResolve(); err != nil {
		return err
	}
	if err := wo.setResolvedAt(at); err != nil {
		return err
	}

	wo.closureComments = &closureComments
	wo.status = wo.deriveStatus()
	return nil
}

// Deadline is the opening instant plus the estimate.
func (wo *WorkOrder) Deadline() time.Time {
	return wo.openedAt.Add(wo.estimate.Duration())
}

// RemainingTime is the time left until the deadline; negative once it has passed.
func (wo *WorkOrder) RemainingTime(now time.Time) time.Duration {
	return wo.Deadline().Sub(now)
}

// ResolvedOnTime reports whether the order was resolved no later than its
// deadline, or nil while it is not resolved.
func (wo *WorkOrder) ResolvedOnTime() *bool {
	if wo.resolvedAt == nil {
		return nil
	}
	onTime := !wo.resolvedAt.After(wo.Deadline())
	return &onTime
}

func (wo *WorkOrder) deriveStatus() Status {
	switch {
	case wo.resolvedAt != nil:
		return Resolved
	case wo.assignedTo != nil:
		return InProgress
	default:
		return Unassigned
	}
}

func (wo *WorkOrder) setTitle(title string) error {
	t, err := kernel.RequireText("title", title, minTextLength)
	if err != nil {
		return err
	}
	wo.title = t
	return nil
}

func (wo *WorkOrder) setDescription(description string) error {
	d, err := kernel.RequireText("description", description, minTextLength)
	if err != nil {
		return err
	}
	wo.description = d
	return nil
}

func (wo *WorkOrder) setCreatedBy(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created by", err)
	}
	wo.createdBy = id
	return nil
}

func (wo *WorkOrder) setAssetID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("asset", err)
	}
	wo.assetID = id
	return nil
}

func (wo *WorkOrder) setResolvedAt(at time.Time) error {
	if at.Before(wo.openedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"resolved at",
			fmt.Errorf("%s is before opening at %s", at.Format(time.RFC3339), wo.openedAt.Format(time.RFC3339)),
		)
	}
	resolved := at.UTC()
	wo.resolvedAt = &resolved
	return nil
}
