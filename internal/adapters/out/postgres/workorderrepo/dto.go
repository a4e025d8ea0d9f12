package workorderrepo

import (
	"errors"
	"time"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/workorder"
)

// WorkOrderDTO keeps enums as their names so partial-match filters such as
// status LIKE '%progress%' work directly on the column.
type WorkOrderDTO struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	Title             string     `gorm:"size:200;not null"`
	Description       string     `gorm:"type:text;not null"`
	CreatedBy         int64      `gorm:"not null;index"`
	AssetID           int64      `gorm:"not null;index"`
	MaintenanceType   string     `gorm:"size:20;not null"`
	Priority          string     `gorm:"size:20;not null"`
	EstimatedTime     int        `gorm:"not null"`
	EstimatedTimeUnit string     `gorm:"size:10;not null"`
	AssignedTo        *int64     `gorm:"index"`
	OpenedAt          time.Time  `gorm:"not null"`
	ResolvedAt        *time.Time `gorm:"default:null"`
	ClosureComments   *string    `gorm:"type:text"`
	Status            string     `gorm:"size:20;not null;index"`
	ResolvedOnTime    *bool      `gorm:"default:null"`
}

func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

var workOrderColumns = map[string]string{
	"id":                  "id",
	"title":               "title",
	"description":         "description",
	"created_by":          "created_by",
	"asset_id":            "asset_id",
	"maintenance_type":    "maintenance_type",
	"priority":            "priority",
	"estimated_time":      "estimated_time",
	"estimated_time_unit": "estimated_time_unit",
	"assigned_to":         "assigned_to",
	"opened_at":           "opened_at",
	"resolved_at":         "resolved_at",
	"closure_comments":    "closure_comments",
	"status":              "status",
	"resolved_on_time":    "resolved_on_time",
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	var assignedTo *int64
	if id := wo.AssignedTo(); id != nil {
		raw := int64(*id)
		assignedTo = &raw
	}

	return WorkOrderDTO{
		ID:                int64(wo.ID()),
		Title:             wo.Title(),
		Description:       wo.Description(),
		CreatedBy:         int64(wo.CreatedBy()),
		AssetID:           int64(wo.AssetID()),
		MaintenanceType:   wo.MaintenanceType().String(),
		Priority:          wo.Priority().String(),
		EstimatedTime:     wo.Estimate().Amount(),
		EstimatedTimeUnit: wo.Estimate().Unit().String(),
		AssignedTo:        assignedTo,
		OpenedAt:          wo.OpenedAt(),
		ResolvedAt:        wo.ResolvedAt(),
		ClosureComments:   wo.ClosureComments(),
		Status:            wo.Status().String(),
		ResolvedOnTime:    wo.ResolvedOnTime(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	maintenanceType, mtErr := workorder.ParseMaintenanceType(dto.MaintenanceType)
	priority, prErr := workorder.ParsePriority(dto.Priority)
	unit, unitErr := workorder.ParseTimeUnit(dto.EstimatedTimeUnit)
	status, stErr := workorder.ParseStatus(dto.Status)
	if err := errors.Join(mtErr, prErr, unitErr, stErr); err != nil {
		return nil, err
	}

	estimate, err := workorder.NewEstimate(dto.EstimatedTime, unit)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.ID
	if dto.AssignedTo != nil {
		id := kernel.ID(*dto.AssignedTo)
		assignedTo = &id
	}

	var resolvedAt *time.Time
	if dto.ResolvedAt != nil {
		at := dto.ResolvedAt.UTC()
		resolvedAt = &at
	}

	return workorder.RestoreWorkOrder(
		kernel.ID(dto.ID),
		dto.Title,
		dto.Description,
		kernel.ID(dto.CreatedBy),
		kernel.ID(dto.AssetID),
		maintenanceType,
		priority,
		estimate,
		dto.OpenedAt.UTC(),
		assignedTo,
		resolvedAt,
		dto.ClosureComments,
		status,
	)
}
