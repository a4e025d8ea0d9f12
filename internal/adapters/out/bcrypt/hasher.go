// Package bcrypt implements ports.PasswordHasher with golang.org/x/crypto/bcrypt.
package bcrypt

import (
	"fmt"

	"maintenance/internal/core/ports"
	"maintenance/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost
)

// Hasher implements ports.PasswordHasher with bcrypt.
type Hasher struct {
	cost int
}

var _ ports.PasswordHasher = Hasher{}

// NewHasher returns a hasher with the given cost; bcrypt accepts 4 to 31.
func NewHasher(cost int) (Hasher, error) {
	if cost < MinCost || cost > MaxCost {
		return Hasher{}, errs.NewValueIsOutOfRangeError("bcrypt cost", cost, MinCost, MaxCost)
	}
	return Hasher{cost: cost}, nil
}

// Hash returns the bcrypt digest of password at the configured cost.
func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports a mismatch and a malformed stored hash the same way, so
// callers cannot tell a corrupt row from a wrong password.
func (h Hasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errs.NewPermissionDeniedError("invalid credentials")
	}
	return nil
}
