// Package service declares the ports the usecases reach external systems through.
package service

// PasswordHasher hashes and checks the admin password. The configured value
// (admin.passwordHash) is only ever stored hashed.
type PasswordHasher interface {
	// Hash returns a salted hash, e.g. for `locatorctl hash-password`.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Empty or malformed hashes never match.
	Check(password, hash string) bool
}
