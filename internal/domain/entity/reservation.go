package entity

import "time"

// ApprovalState is the tri-state decision flag on a visit reservation.
// Pending is the initial state; Approved and Rejected are terminal.
type ApprovalState int8

const (
	StateRejected ApprovalState = -1
	StatePending  ApprovalState = 0
	StateApproved ApprovalState = 1
)

// Decided reports whether the state is terminal.
func (s ApprovalState) Decided() bool {
	return s != StatePending
}

// Label returns the human-readable outcome for the state.
func (s ApprovalState) Label() string {
	switch s {
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// ParseDecision maps the wire value to a terminal state. Only 1 and -1
// are meaningful decisions; anything else is reported as invalid rather
// than being folded into "rejected".
func ParseDecision(state int) (ApprovalState, bool) {
	switch state {
	case int(StateApproved):
		return StateApproved, true
	case int(StateRejected):
		return StateRejected, true
	default:
		return StatePending, false
	}
}

// Reservation is a visit reservation filed by a visitor against a
// patient. The hospital decides it exactly once: Pending -> Approved or
// Pending -> Rejected, no transition out of either terminal state.
type Reservation struct {
	ID              uint
	HospitalID      uint
	PatientID       uint
	ReservationDate time.Time
	TimetableIndex  int
	FaceToFace      bool
	ApproveCheck    ApprovalState
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Patient *Patient // Populated on listings for display fields.
}
