// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrInvalidHashFormat is returned by Check when the stored hash is corrupt
// beyond what can be treated as a simple mismatch.
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls on the
	// same input produce different outputs because of the per-call salt.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// A mismatch is (false, nil); an unusable stored hash is (false, ErrInvalidHashFormat).
	Check(password, hash string) (bool, error)
}
