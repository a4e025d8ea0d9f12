package commands

import (
	"errors"

	"maintenance/internal/core/domain/model/kernel"
	"maintenance/internal/core/domain/model/user"
)

// registration carries the profile fields every register command takes.
type registration struct {
	firstName string
	lastName  string
	email     kernel.Email
	password  string
}

func newRegistration(firstName, lastName, email, password string) (registration, error) {
	var r registration

	first, firstErr := kernel.RequireName("first name", firstName)
	last, lastErr := kernel.RequireName("last name", lastName)
	mail, mailErr := kernel.NewEmail(email)
	if err := errors.Join(firstErr, lastErr, mailErr, user.ValidatePassword(password)); err != nil {
		return r, err
	}

	r.firstName = first
	r.lastName = last
	r.email = mail
	r.password = password
	return r, nil
}

func (r registration) FirstName() string {
	return r.firstName
}

func (r registration) LastName() string {
	return r.lastName
}

// Email returns the validated login address.
func (r registration) Email() kernel.Email {
	return r.email
}

func (r registration) profile(passwordHash string) (user.Profile, error) {
	return user.NewProfile(r.firstName, r.lastName, r.email, passwordHash)
}
