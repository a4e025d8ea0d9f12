// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the console and never modify data.
package queries

import (
	"maintenance/internal/core/ports"
)

// Readers expose repositories outside a transaction. The unit of work
// satisfies all of them before Begin is called.
type (
	AccountReader interface {
		AdminRepository() ports.AdminRepository
		SupervisorRepository() ports.SupervisorRepository
		TechnicianRepository() ports.TechnicianRepository
	}

	AssetReader interface {
		AssetRepository() ports.AssetRepository
	}

	WorkOrderReader interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}
)
