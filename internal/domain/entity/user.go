// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User represents a registered account. The record is created at signup and
// is immutable afterwards; no exposed operation deletes it.
type User struct {
	ID           uint64    // Unique identifier, assigned by the store on creation.
	Name         string    // The user's display name.
	Username     string    // Unique login key.
	PasswordHash string    // One-way salted hash; the plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
