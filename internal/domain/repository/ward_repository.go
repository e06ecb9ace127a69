package repository

import (
	"context"
	"errors"

	"wardlink/internal/domain/entity"
)

// Domain-specific errors for ward and room persistence.
var (
	// ErrWardNotFound is returned when no ward matches the scoped lookup.
	ErrWardNotFound = errors.New("ward not found")
	// ErrRoomNotFound is returned when no room matches the scoped lookup.
	ErrRoomNotFound = errors.New("room not found")
)

// WardRepository defines the standard operations for ward persistence.
// All lookups are scoped by the owning hospital to prevent cross-tenant access.
type WardRepository interface {
	// Create persists a new ward.
	Create(ctx context.Context, ward *entity.Ward) error

	// FindByID retrieves a ward by id, constrained to the given hospital.
	FindByID(ctx context.Context, hospitalID, id uint) (*entity.Ward, error)

	// FindByName retrieves a ward by name within the given hospital.
	FindByName(ctx context.Context, hospitalID uint, name string) (*entity.Ward, error)

	// ListByHospital retrieves all wards of a hospital.
	ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Ward, error)

	// UpdateName renames a ward, constrained to the given hospital.
	UpdateName(ctx context.Context, hospitalID, id uint, name string) error

	// Delete removes a ward, constrained to the given hospital.
	Delete(ctx context.Context, hospitalID, id uint) error
}

// RoomRepository defines the standard operations for room persistence.
type RoomRepository interface {
	// Create persists a new room.
	Create(ctx context.Context, room *entity.Room) error

	// FindByID retrieves a room by id, with its owning ward populated.
	FindByID(ctx context.Context, id uint) (*entity.Room, error)

	// FindByNumber retrieves a room by number within the given ward.
	FindByNumber(ctx context.Context, wardID uint, roomNumber int) (*entity.Room, error)

	// ListByWard retrieves all rooms of a ward.
	ListByWard(ctx context.Context, wardID uint) ([]*entity.Room, error)

	// Update persists modified room fields.
	Update(ctx context.Context, room *entity.Room) error

	// Delete removes a room by id.
	Delete(ctx context.Context, id uint) error
}
