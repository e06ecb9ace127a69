// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wardlink/internal/domain/entity"
)

// Domain-specific errors for hospital persistence.
var (
	// ErrHospitalNotFound is returned when no hospital matches the lookup key.
	ErrHospitalNotFound = errors.New("hospital not found")
	// ErrRefreshHashStale is returned when a conditional refresh-hash
	// rotation matched no row: the stored hash changed between the check
	// and the write, or the session was invalidated.
	ErrRefreshHashStale = errors.New("stored refresh hash changed concurrently")
)

// HospitalRepository defines the standard operations for hospital account persistence.
type HospitalRepository interface {
	// FindByID retrieves a single hospital by its primary key.
	FindByID(ctx context.Context, id uint) (*entity.Hospital, error)

	// FindByLoginID retrieves a single hospital by its unique login identifier.
	FindByLoginID(ctx context.Context, loginID string) (*entity.Hospital, error)

	// Create persists a new hospital account.
	Create(ctx context.Context, hospital *entity.Hospital) error

	// UpdateRefreshHash overwrites the stored refresh-token hash
	// unconditionally. Used on login, where any previously issued refresh
	// token is deliberately invalidated.
	UpdateRefreshHash(ctx context.Context, id uint, hash string) error

	// RotateRefreshHash replaces the stored refresh-token hash only when
	// it still equals oldHash. Returns ErrRefreshHashStale when no row
	// matched, which keeps two concurrent refresh calls from both
	// succeeding on the same token.
	RotateRefreshHash(ctx context.Context, id uint, oldHash, newHash string) error
}
