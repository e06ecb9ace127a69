package impl

import (
	"context"
	"testing"
	"time"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPendingReservation(env *testEnv, hospitalID uint) *entity.Reservation {
	return env.reservations.put(&entity.Reservation{
		HospitalID:      hospitalID,
		ReservationDate: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		TimetableIndex:  3,
		ApproveCheck:    entity.StatePending,
	})
}

func TestReservationService_ChangeState_Approve(t *testing.T) {
	env := newTestEnv()
	reservation := seedPendingReservation(env, 1)
	srv := env.reservationService()

	output, err := srv.ChangeState(context.Background(), 1, &usecase.ChangeStateInput{
		ReservationID: reservation.ID,
		State:         1,
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", output.Outcome)
	assert.Equal(t, entity.StateApproved, env.reservations.reservations[reservation.ID].ApproveCheck)
}

func TestReservationService_ChangeState_Reject(t *testing.T) {
	env := newTestEnv()
	reservation := seedPendingReservation(env, 1)
	srv := env.reservationService()

	output, err := srv.ChangeState(context.Background(), 1, &usecase.ChangeStateInput{
		ReservationID: reservation.ID,
		State:         -1,
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", output.Outcome)
	assert.Equal(t, entity.StateRejected, env.reservations.reservations[reservation.ID].ApproveCheck)
}

func TestReservationService_ChangeState_InvalidDecision(t *testing.T) {
	env := newTestEnv()
	reservation := seedPendingReservation(env, 1)
	srv := env.reservationService()

	for _, state := range []int{0, 2, -2, 42} {
		_, err := srv.ChangeState(context.Background(), 1, &usecase.ChangeStateInput{
			ReservationID: reservation.ID,
			State:         state,
		})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidState), "state %d should be invalid", state)
	}

	assert.Equal(t, entity.StatePending, env.reservations.reservations[reservation.ID].ApproveCheck)
}

func TestReservationService_ChangeState_AlreadyDecided(t *testing.T) {
	env := newTestEnv()
	reservation := env.reservations.put(&entity.Reservation{
		HospitalID:   1,
		ApproveCheck: entity.StateApproved,
	})
	srv := env.reservationService()

	_, err := srv.ChangeState(context.Background(), 1, &usecase.ChangeStateInput{
		ReservationID: reservation.ID,
		State:         -1,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDecided))
	assert.Equal(t, entity.StateApproved, env.reservations.reservations[reservation.ID].ApproveCheck)
}

func TestReservationService_ChangeState_LostDecisionRace(t *testing.T) {
	env := newTestEnv()
	reservation := seedPendingReservation(env, 1)
	env.reservations.decideErr = repository.ErrReservationNotPending
	srv := env.reservationService()

	_, err := srv.ChangeState(context.Background(), 1, &usecase.ChangeStateInput{
		ReservationID: reservation.ID,
		State:         1,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDecided))
}

func TestReservationService_ChangeState_OtherHospital(t *testing.T) {
	env := newTestEnv()
	reservation := seedPendingReservation(env, 1)
	srv := env.reservationService()

	_, err := srv.ChangeState(context.Background(), 2, &usecase.ChangeStateInput{
		ReservationID: reservation.ID,
		State:         1,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
	assert.Equal(t, entity.StatePending, env.reservations.reservations[reservation.ID].ApproveCheck)
}

func TestReservationService_GetAllReservations_Grouping(t *testing.T) {
	env := newTestEnv()
	env.reservations.put(&entity.Reservation{HospitalID: 1, ApproveCheck: entity.StatePending})
	env.reservations.put(&entity.Reservation{HospitalID: 1, ApproveCheck: entity.StateApproved})
	env.reservations.put(&entity.Reservation{HospitalID: 1, ApproveCheck: entity.StateApproved})
	env.reservations.put(&entity.Reservation{HospitalID: 1, ApproveCheck: entity.StateRejected})
	env.reservations.put(&entity.Reservation{HospitalID: 2, ApproveCheck: entity.StatePending})
	srv := env.reservationService()

	grouped, err := srv.GetAllReservations(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, grouped.Pending, 1)
	assert.Len(t, grouped.Approved, 2)
	assert.Len(t, grouped.Rejected, 1)
}

func TestReservationService_GetReservationList_ByDate(t *testing.T) {
	env := newTestEnv()
	day := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	env.reservations.put(&entity.Reservation{HospitalID: 1, ReservationDate: day})
	env.reservations.put(&entity.Reservation{HospitalID: 1, ReservationDate: day.AddDate(0, 0, 1)})
	srv := env.reservationService()

	items, err := srv.GetReservationList(context.Background(), 1, day)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "26/08/28", items[0].Date)
}
