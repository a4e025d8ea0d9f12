package kernel

import (
	"errors"
	"strings"

	"maintenance/internal/pkg/errs"
	"maintenance/internal/pkg/guard"
)

var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

// Email is a trimmed, lower-cased address with a non-empty local part and domain.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail trims and lower-cases raw and requires exactly one "@" with text on
// both sides.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	local, domain, found := strings.Cut(value, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") || strings.ContainsAny(value, " \t") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", errors.New(value+" is not an e-mail address"))
	}

	return Email{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.value
}

// IsEqual compares normalized addresses, so case differences never matter.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
