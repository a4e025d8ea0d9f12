package user

import (
	"errors"
	"fmt"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var (
	ErrAdminIsNotConstructed      = errors.New("Admin must be created via NewAdmin or RestoreAdmin")
	ErrSupervisorIsNotConstructed = errors.New("Supervisor must be created via NewSupervisor or RestoreSupervisor")
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician or RestoreTechnician")
)

// Account is the behaviour shared by admins, supervisors and technicians.
type Account interface {
	ID() kernel.ID
	Role() Role
	FirstName() string
	LastName() string
	FullName() string
	Email() kernel.Email
	PasswordHash() string
	IsActive() bool
	Validate() error
}

var (
	_ Account = (*Admin)(nil)
	_ Account = (*Supervisor)(nil)
	_ Account = (*Technician)(nil)
)

// Admin oversees the whole plant.
type Admin struct {
	Profile
	department string
	guard      guard.ConstructorGuard
}

// NewAdmin builds an admin that has not been stored yet. The department must
// have at least two characters and a letter.
func NewAdmin(profile Profile, department string) (*Admin, error) {
	a := &Admin{Profile: profile, guard: guard.NewConstructorGuard()}
	if err := a.ChangeDepartment(department); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAdmin rebuilds a stored admin; profile must come from RestoreProfile.
func RestoreAdmin(profile Profile, department string) (*Admin, error) {
	if err := profile.id.Validate(); err != nil {
		return nil, err
	}
	return NewAdmin(profile, department)
}

func (a *Admin) Role() Role {
	return RoleAdmin
}

func (a *Admin) Department() string {
	return a.department
}

func (a *Admin) ChangeDepartment(department string) error {
	d, err := kernel.RequireText("department", department, kernel.MinNameLength)
	if err != nil {
		return err
	}
	a.department = d
	return nil
}

func (a *Admin) Validate() error {
	if a == nil {
		return ErrAdminIsNotConstructed
	}
	return a.guard.Validate(ErrAdminIsNotConstructed)
}

// Supervisor runs the maintenance of one plant area.
type Supervisor struct {
	Profile
	area  string
	guard guard.ConstructorGuard
}

// NewSupervisor builds a supervisor that has not been stored yet. The area must
// have at least two characters and a letter.
func NewSupervisor(profile Profile, area string) (*Supervisor, error) {
	s := &Supervisor{Profile: profile, guard: guard.NewConstructorGuard()}
	if err := s.ChangeArea(area); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSupervisor rebuilds a stored supervisor; profile must come from RestoreProfile.
func RestoreSupervisor(profile Profile, area string) (*Supervisor, error) {
	if err := profile.id.Validate(); err != nil {
		return nil, err
	}
	return NewSupervisor(profile, area)
}

func (s *Supervisor) Role() Role {
	return RoleSupervisor
}

func (s *Supervisor) Area() string {
	return s.area
}

func (s *Supervisor) ChangeArea(area string) error {
	a, err := kernel.RequireName("area", area)
	if err != nil {
		return err
	}
	s.area = a
	return nil
}

func (s *Supervisor) Validate() error {
	if s == nil {
		return ErrSupervisorIsNotConstructed
	}
	return s.guard.Validate(ErrSupervisorIsNotConstructed)
}

// Technician resolves work orders. maxActiveOrders caps how many IN_PROGRESS
// work orders may be assigned to them at once; the accepted range is a policy
// of the assignment services, the model only requires a positive number.
type Technician struct {
	Profile
	maxActiveOrders int
	guard           guard.ConstructorGuard
}

// NewTechnician builds a technician that has not been stored yet. Any positive
// limit is accepted here; the 2 to 6 range is a registration policy enforced by
// services.QuotaPolicy.
//
// Example:
//
//	profile, _ := user.NewProfile("Tom", "Reyes", email, hash)
//	technician, err := user.NewTechnician(profile, 4)
func NewTechnician(profile Profile, maxActiveOrders int) (*Technician, error) {
	t := &Technician{Profile: profile, guard: guard.NewConstructorGuard()}
	if err := t.ChangeMaxActiveOrders(maxActiveOrders); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTechnician rebuilds a stored technician; profile must come from RestoreProfile.
func RestoreTechnician(profile Profile, maxActiveOrders int) (*Technician, error) {
	if err := profile.id.Validate(); err != nil {
		return nil, err
	}
	return NewTechnician(profile, maxActiveOrders)
}

func (t *Technician) Role() Role {
	return RoleTechnician
}

// MaxActiveOrders is the number of IN_PROGRESS orders the technician may hold.
func (t *Technician) MaxActiveOrders() int {
	return t.maxActiveOrders
}

func (t *Technician) ChangeMaxActiveOrders(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max active orders", fmt.Errorf("%d is not greater than 0", limit))
	}
	t.maxActiveOrders = limit
	return nil
}

func (t *Technician) Validate() error {
	if t == nil {
		return ErrTechnicianIsNotConstructed
	}
	return t.guard.Validate(ErrTechnicianIsNotConstructed)
}
