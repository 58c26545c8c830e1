// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity in the system: one registered person of the
// mobile app, identified by the handle they chose at registration.
type Account struct {
	Handle       string    // Unique, case-sensitive identifier; acts as the natural key.
	PasswordHash string    // Output of the credential hasher. Never the plaintext password.
	City         string    // Free-form location label shown on the profile.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
