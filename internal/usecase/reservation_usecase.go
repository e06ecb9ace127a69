package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// ChangeStateInput defines the data required to decide a reservation.
// State carries the raw wire value: 1 approves, -1 rejects.
type ChangeStateInput struct {
	ReservationID uint
	State         int
}

// --- Output DTOs ---

// ChangeStateOutput reports the applied decision.
type ChangeStateOutput struct {
	ReservationID uint
	Outcome       string
}

// ReservationItem is a reservation row shaped for listings, with
// patient, ward and room display fields joined in.
type ReservationItem struct {
	ID             uint
	PatientName    string
	WardName       string
	RoomNumber     int
	Date           string
	TimetableIndex int
	FaceToFace     bool
	State          int
}

// GroupedReservations splits a hospital's reservations by decision state.
type GroupedReservations struct {
	Pending  []*ReservationItem
	Approved []*ReservationItem
	Rejected []*ReservationItem
}

// ReservationUsecase defines the interface for visit reservation operations.
type ReservationUsecase interface {
	// ChangeState applies the one-time approve/reject decision.
	ChangeState(ctx context.Context, hospitalID uint, input *ChangeStateInput) (*ChangeStateOutput, error)

	// GetAllReservations lists every reservation of the hospital grouped
	// by decision state, ordered by date then timetable index.
	GetAllReservations(ctx context.Context, hospitalID uint) (*GroupedReservations, error)

	// GetReservationList lists the reservations of a single day.
	GetReservationList(ctx context.Context, hospitalID uint, date time.Time) ([]*ReservationItem, error)
}
