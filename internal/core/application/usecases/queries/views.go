package queries

import (
	"time"

	"maintenance/internal/core/domain/model/asset"
	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
	"maintenance/internal/core/domain/model/workorder"
)

// UserView is the read model of an account of any role. Role-specific fields
// are left zero for the other roles.
type UserView struct {
	ID              kernel.ID
	Role            user.Role
	FirstName       string
	LastName        string
	Email           string
	Active          bool
	Department      string
	Area            string
	MaxActiveOrders int
}

// FullName joins first and last name with a single space.
func (v UserView) FullName() string {
	return v.FirstName + " " + v.LastName
}

func newUserView(account user.Account) UserView {
	view := UserView{
		ID:        account.ID(),
		Role:      account.Role(),
		FirstName: account.FirstName(),
		LastName:  account.LastName(),
		Email:     account.Email().String(),
		Active:    account.IsActive(),
	}

	switch a := account.(type) {
	case *user.Admin:
		view.Department = a.Department()
	case *user.Supervisor:
		view.Area = a.Area()
	case *user.Technician:
		view.MaxActiveOrders = a.MaxActiveOrders()
	}
	return view
}

// AssetView is the read model of an industrial asset.
type AssetView struct {
	ID              kernel.ID
	AssetType       string
	Model           string
	Location        string
	AcquisitionDate time.Time
}

func newAssetView(a *asset.IndustrialAsset) AssetView {
	return AssetView{
		ID:              a.ID(),
		AssetType:       a.AssetType(),
		Model:           a.Model(),
		Location:        a.Location(),
		AcquisitionDate: a.AcquisitionDate(),
	}
}

// WorkOrderView is the read model of a work order. RemainingTime is measured
// against the clock of the handler that built the view and turns negative
// once the deadline has passed. ResolvedOnTime is nil until the order is resolved.
type WorkOrderView struct {
	ID              kernel.ID
	Title           string
	Description     string
	CreatedBy       kernel.ID
	AssetID         kernel.ID
	MaintenanceType workorder.MaintenanceType
	Priority        workorder.Priority
	Estimate        workorder.Estimate
	Status          workorder.Status
	AssignedTo      *kernel.ID
	OpenedAt        time.Time
	Deadline        time.Time
	ResolvedAt      *time.Time
	ClosureComments *string
	RemainingTime   time.Duration
	ResolvedOnTime  *bool
}

func newWorkOrderView(wo *workorder.WorkOrder, now time.Time) WorkOrderView {
	return WorkOrderView{
		ID:              wo.ID(),
		Title:           wo.Title(),
		Description:     wo.Description(),
		CreatedBy:       wo.CreatedBy(),
		AssetID:         wo.AssetID(),
		MaintenanceType: wo.MaintenanceType(),
		Priority:        wo.Priority(),
		Estimate:        wo.Estimate(),
		Status:          wo.Status(),
		AssignedTo:      wo.AssignedTo(),
		OpenedAt:        wo.OpenedAt(),
		Deadline:        wo.Deadline(),
		ResolvedAt:      wo.ResolvedAt(),
		ClosureComments: wo.ClosureComments(),
		RemainingTime:   wo.RemainingTime(now),
		ResolvedOnTime:  wo.ResolvedOnTime(),
	}
}

func newWorkOrderViews(orders []*workorder.WorkOrder, now time.Time) []WorkOrderView {
	views := make([]WorkOrderView, 0, len(orders))
	for _, wo := range orders {
		views = append(views, newWorkOrderView(wo, now))
	}
	return views
}
