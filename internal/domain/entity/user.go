// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a single account.
// PasswordHash is the only credential material that is ever persisted;
// the plaintext password exists solely at submission time.
type User struct {
	ID           int64      // Numeric identifier, assigned by the database.
	Email        string     // The unique login identifier.
	Username     string     // The unique public handle.
	PublicName   string     // The display name. Defaults to Username at registration.
	PasswordHash string     // Opaque bcrypt hash, salt and cost embedded.
	Birthdate    *time.Time // Optional date of birth.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}
