// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Hospital is the account entity of the system. Each hospital logs in with
// its LoginID and manages its own wards, rooms, patients and reservations.
type Hospital struct {
	ID          uint   // Auto-increment primary key.
	LoginID     string // Unique login identifier, immutable after registration.
	Name        string // Display name of the hospital.
	PhoneNumber string
	Address     string

	// PasswordHash stores the bcrypt-hashed password. Never serialized
	// outward; stripped before the entity crosses the auth boundary.
	PasswordHash string

	// CurrentRefreshHash stores a SHA-256 hash of the currently valid
	// refresh token. Empty when the hospital has never logged in or the
	// session was invalidated. Only the auth usecase mutates this field.
	CurrentRefreshHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sanitized returns a copy with both credential hashes stripped.
func (h *Hospital) Sanitized() *Hospital {
	if h == nil {
		return nil
	}
	clone := *h
	clone.PasswordHash = ""
	clone.CurrentRefreshHash = ""

	return &clone
}
