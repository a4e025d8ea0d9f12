package ports

// PasswordHasher turns clear-text passwords into stored hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and an
	// errs.PermissionDeniedError otherwise.
	Compare(hash, password string) error
}
