package workorder

import (
	"errors"
	"fmt"
	"time"

	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var ErrEstimateIsNotConstructed = errs.NewValueIsRequiredError("estimate must be created via NewEstimate")

// Estimate is the expected effort of a work order, e.g. 3 DAYS.
type Estimate struct {
	amount int
	unit   TimeUnit
	guard  guard.ConstructorGuard
}

// NewEstimate requires a positive amount and a known unit.
//
// Example:
//
//	estimate, err := workorder.NewEstimate(3, workorder.Days)
//	// estimate.Duration() == 72 * time.Hour
func NewEstimate(amount int, unit TimeUnit) (Estimate, error) {
	var amountErr error
	if amount <= 0 {
		amountErr = errs.NewValueIsInvalidErrorWithCause("estimated time", fmt.Errorf("%d is not greater than 0", amount))
	}
	if err := errors.Join(amountErr, unit.Validate()); err != nil {
		return Estimate{}, err
	}
	return Estimate{amount: amount, unit: unit, guard: guard.NewConstructorGuard()}, nil
}

func (e Estimate) Validate() error {
	return e.guard.Validate(ErrEstimateIsNotConstructed)
}

func (e Estimate) Amount() int {
	return e.amount
}

func (e Estimate) Unit() TimeUnit {
	return e.unit
}

// Duration converts the estimate to wall-clock time; a day is 24 hours and a
// week 7 days.
func (e Estimate) Duration() time.Duration {
	return e.unit.Duration(e.amount)
}

func (e Estimate) String() string {
	return fmt.Sprintf("%d %s", e.amount, e.unit)
}
