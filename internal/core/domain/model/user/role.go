package user

import (
	"fmt"
	"strings"

	"maintenance/internal/pkg/errs"
)

// Role identifies the kind of account.
type Role int

const (
	UnknownRole Role = iota
	RoleAdmin
	RoleSupervisor
	RoleTechnician
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:      "ADMIN",
		RoleSupervisor: "SUPERVISOR",
		RoleTechnician: "TECHNICIAN",
	}
}

// ParseRole accepts the role name in any letter case.
func ParseRole(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if str == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects roles other than Admin, Supervisor and Technician.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
