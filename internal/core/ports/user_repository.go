// Package ports defines the contracts between the maintenance core and its adapters:
// repositories, the unit of work that scopes them to one transaction, and the
// password hashing boundary.
package ports

import (
	"context"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
)

// AdminRepository persists admins. Get and GetByEmail return an
// errs.ObjectNotFoundError on a miss; List returns an empty slice, never nil.
type AdminRepository interface {
	// Add inserts a new admin and assigns its storage identifier.
	Add(ctx context.Context, admin *user.Admin) error
	Update(ctx context.Context, admin *user.Admin) error
	Get(ctx context.Context, id kernel.ID) (*user.Admin, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*user.Admin, error)
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
	List(ctx context.Context, criteria Criteria) ([]*user.Admin, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// SupervisorRepository persists supervisors with the same contract as AdminRepository.
type SupervisorRepository interface {
	Add(ctx context.Context, supervisor *user.Supervisor) error
	Update(ctx context.Context, supervisor *user.Supervisor) error
	Get(ctx context.Context, id kernel.ID) (*user.Supervisor, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*user.Supervisor, error)
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
	List(ctx context.Context, criteria Criteria) ([]*user.Supervisor, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// TechnicianRepository persists technicians with the same contract as AdminRepository.
type TechnicianRepository interface {
	Add(ctx context.Context, technician *user.Technician) error
	Update(ctx context.Context, technician *user.Technician) error
	Get(ctx context.Context, id kernel.ID) (*user.Technician, error)

	// GetForUpdate reads a technician and locks the row until the surrounding
	// transaction ends, so concurrent assignments to the same technician serialise.
	// Stores without row locks treat it as Get.
	GetForUpdate(ctx context.Context, id kernel.ID) (*user.Technician, error)

	GetByEmail(ctx context.Context, email kernel.Email) (*user.Technician, error)
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
	List(ctx context.Context, criteria Criteria) ([]*user.Technician, error)
	Delete(ctx context.Context, id kernel.ID) error
}
