package repository

import (
	"context"
	"time"

	"wardlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for reservation persistence.
var (
	// ErrReservationNotFound is returned when no reservation matches the scoped lookup.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrReservationNotPending is returned when a conditional decision
	// update matched no row: the reservation was decided concurrently.
	ErrReservationNotPending = errors.New("reservation is no longer pending")
)

// ReservationRepository defines the operations for visit reservation persistence.
// Reservations are created by the visitor-facing flow; this side only reads
// and decides them.
type ReservationRepository interface {
	// FindByID retrieves a reservation by id, constrained to the given hospital.
	FindByID(ctx context.Context, hospitalID, id uint) (*entity.Reservation, error)

	// Decide performs the one-time state transition as a single
	// conditional update: the row is written only while it is still
	// pending. Returns ErrReservationNotPending when no row matched.
	Decide(ctx context.Context, hospitalID, id uint, state entity.ApprovalState) error

	// ListByHospital retrieves all reservations of a hospital ordered by
	// reservation date then timetable index, with patient, room and ward
	// associations populated.
	ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Reservation, error)

	// ListByHospitalAndDate retrieves the reservations of a single day.
	ListByHospitalAndDate(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error)

	// ListApprovedVisits retrieves the approved, non-face-to-face
	// reservations of a single day, used by the dashboard.
	ListApprovedVisits(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error)
}
