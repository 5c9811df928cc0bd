// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes and verifies the owner credentials used to sign in
// against the API. The interface keeps the hashing algorithm out of the
// domain; the concrete implementation uses bcrypt.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
