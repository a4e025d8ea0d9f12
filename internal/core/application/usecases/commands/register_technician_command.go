package commands

import (
	"errors"

	"maintenance/internal/core/domain/services"
	"maintenance/internal/pkg/guard"
)

var ErrRegisterTechnicianCommandIsNotConstructed = errors.New(
	"RegisterTechnicianCommand must be created via NewRegisterTechnicianCommand constructor",
)

// RegisterTechnicianCommand creates a technician with a personal limit of
// simultaneous IN_PROGRESS work orders.
type RegisterTechnicianCommand struct {
	registration
	maxActiveOrders int
	guard           guard.ConstructorGuard
}

// NewRegisterTechnicianCommand rejects limits outside the quota policy range.
func NewRegisterTechnicianCommand(
	firstName, lastName, email, password string,
	maxActiveOrders int,
) (RegisterTechnicianCommand, error) {
	reg, regErr := newRegistration(firstName, lastName, email, password)
	limitErr := services.NewQuotaPolicy().ValidateLimit(maxActiveOrders)
	if err := errors.Join(regErr, limitErr); err != nil {
		return RegisterTechnicianCommand{}, err
	}

	return RegisterTechnicianCommand{
		registration:    reg,
		maxActiveOrders: maxActiveOrders,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// MaxActiveOrders returns the requested limit of simultaneous orders.
func (c RegisterTechnicianCommand) MaxActiveOrders() int {
	return c.maxActiveOrders
}

func (c *RegisterTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTechnicianCommandIsNotConstructed)
}
