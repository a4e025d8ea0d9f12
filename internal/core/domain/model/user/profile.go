package user

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/pkg/errs"
)

// MinPasswordLength is the shortest accepted clear-text password.
const MinPasswordLength = 8

// ValidatePassword checks a clear-text password before it is hashed.
func ValidatePassword(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(raw); n < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("%d characters, at least %d required", n, MinPasswordLength))
	}
	if !strings.ContainsFunc(raw, unicode.IsLetter) {
		return errs.NewValueIsInvalidErrorWithCause("password", errors.New("must contain at least one letter"))
	}
	return nil
}

// Profile is the data every account kind shares.
type Profile struct {
	id           kernel.ID
	firstName    string
	lastName     string
	email        kernel.Email
	passwordHash string
	active       bool
}

// NewProfile builds the profile of an account that has not been stored yet.
// New accounts are active.
func NewProfile(firstName, lastName string, email kernel.Email, passwordHash string) (Profile, error) {
	p := Profile{active: true}

	if err := errors.Join(
		p.setNames(firstName, lastName),
		p.setEmail(email),
		p.setPasswordHash(passwordHash),
	); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// RestoreProfile rebuilds a stored profile.
func RestoreProfile(
	id kernel.ID,
	firstName, lastName string,
	email kernel.Email,
	passwordHash string,
	active bool,
) (Profile, error) {
	p, err := NewProfile(firstName, lastName, email, passwordHash)
	if err != nil {
		return Profile{}, err
	}
	if err = id.Validate(); err != nil {
		return Profile{}, err
	}
	p.id = id
	p.active = active
	return p, nil
}

// ID returns the storage identifier, zero before the first insert.
func (p *Profile) ID() kernel.ID {
	return p.id
}

func (p *Profile) FirstName() string {
	return p.firstName
}

func (p *Profile) LastName() string {
	return p.lastName
}

// FullName joins the first and last name with a space.
func (p *Profile) FullName() string {
	return p.firstName + " " + p.lastName
}

// Email returns the normalized, lower-cased address.
func (p *Profile) Email() kernel.Email {
	return p.email
}

// PasswordHash returns the stored hash; the plain password is never kept.
func (p *Profile) PasswordHash() string {
	return p.passwordHash
}

// IsActive reports whether the account may log in and take part in work orders.
func (p *Profile) IsActive() bool {
	return p.active
}

// AssignID records the identifier produced by storage on first insert.
func (p *Profile) AssignID(id kernel.ID) error {
	if !p.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("already assigned as %s", p.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// Rename replaces both names; each must have at least two characters and a letter.
func (p *Profile) Rename(firstName, lastName string) error {
	return p.setNames(firstName, lastName)
}

// ChangeEmail sets a new address. Uniqueness is checked by the caller against
// the repository.
func (p *Profile) ChangeEmail(email kernel.Email) error {
	return p.setEmail(email)
}

func (p *Profile) ChangePasswordHash(hash string) error {
	return p.setPasswordHash(hash)
}

// Activate and Deactivate toggle IsActive. Both are idempotent.
func (p *Profile) Activate() {
	p.active = true
}

func (p *Profile) Deactivate() {
	p.active = false
}

func (p *Profile) setNames(firstName, lastName string) error {
	first, firstErr := kernel.RequireName("first name", firstName)
	last, lastErr := kernel.RequireName("last name", lastName)
	if err := errors.Join(firstErr, lastErr); err != nil {
		return err
	}
	p.firstName = first
	p.lastName = last
	return nil
}

func (p *Profile) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	p.email = email
	return nil
}

func (p *Profile) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	p.passwordHash = hash
	return nil
}
