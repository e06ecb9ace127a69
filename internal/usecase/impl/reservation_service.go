package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reservationService implements the ReservationUsecase interface.
type reservationService struct {
	reservationRepo repository.ReservationRepository
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for reservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	Logger          *slog.Logger
}

// NewReservationService is the constructor for reservationService.
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		reservationRepo: params.ReservationRepo,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangeState applies the one-time approve/reject decision. The write is
// a conditional update keyed on the pending state, so a reservation
// decided by a concurrent request cannot be decided again.
func (srv *reservationService) ChangeState(ctx context.Context, hospitalID uint, input *usecase.ChangeStateInput) (*usecase.ChangeStateOutput, error) {
	state, ok := entity.ParseDecision(input.State)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidState, "decision out of range")
	}

	reservation, err := srv.reservationRepo.FindByID(ctx, hospitalID, input.ReservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "reservation does not belong to this hospital")
		}

		return nil, errors.Wrap(err, "failed to find reservation")
	}

	if reservation.ApproveCheck.Decided() {
		return nil, errors.Wrap(domainerrors.ErrAlreadyDecided, "reservation already decided")
	}

	if err := srv.reservationRepo.Decide(ctx, hospitalID, input.ReservationID, state); err != nil {
		if errors.Is(err, repository.ErrReservationNotPending) {
			// Lost the race against a concurrent decision.
			srv.log(ctx).Warn("Reservation decided concurrently",
				slog.Uint64("hospitalID", uint64(hospitalID)),
				slog.Uint64("reservationID", uint64(input.ReservationID)))

			return nil, errors.Wrap(domainerrors.ErrAlreadyDecided, "reservation already decided")
		}

		return nil, errors.Wrap(err, "failed to decide reservation")
	}

	srv.log(ctx).Info("Reservation decided",
		slog.Uint64("hospitalID", uint64(hospitalID)),
		slog.Uint64("reservationID", uint64(input.ReservationID)),
		slog.String("outcome", state.Label()))

	return &usecase.ChangeStateOutput{
		ReservationID: input.ReservationID,
		Outcome:       state.Label(),
	}, nil
}

// GetAllReservations lists every reservation of the hospital grouped by
// decision state.
func (srv *reservationService) GetAllReservations(ctx context.Context, hospitalID uint) (*usecase.GroupedReservations, error) {
	reservations, err := srv.reservationRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	grouped := &usecase.GroupedReservations{
		Pending:  make([]*usecase.ReservationItem, 0),
		Approved: make([]*usecase.ReservationItem, 0),
		Rejected: make([]*usecase.ReservationItem, 0),
	}

	for _, reservation := range reservations {
		item := toReservationItem(reservation)

		switch reservation.ApproveCheck {
		case entity.StateApproved:
			grouped.Approved = append(grouped.Approved, item)
		case entity.StateRejected:
			grouped.Rejected = append(grouped.Rejected, item)
		default:
			grouped.Pending = append(grouped.Pending, item)
		}
	}

	return grouped, nil
}

// GetReservationList lists the reservations of a single day.
func (srv *reservationService) GetReservationList(ctx context.Context, hospitalID uint, date time.Time) ([]*usecase.ReservationItem, error) {
	reservations, err := srv.reservationRepo.ListByHospitalAndDate(ctx, hospitalID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by date")
	}

	items := make([]*usecase.ReservationItem, 0, len(reservations))
	for _, reservation := range reservations {
		items = append(items, toReservationItem(reservation))
	}

	return items, nil
}

// toReservationItem shapes a reservation entity into a listing row.
func toReservationItem(reservation *entity.Reservation) *usecase.ReservationItem {
	item := &usecase.ReservationItem{
		ID:             reservation.ID,
		Date:           formatDate(reservation.ReservationDate),
		TimetableIndex: reservation.TimetableIndex,
		FaceToFace:     reservation.FaceToFace,
		State:          int(reservation.ApproveCheck),
	}
	if reservation.Patient != nil {
		item.PatientName = reservation.Patient.Name
		if reservation.Patient.Ward != nil {
			item.WardName = reservation.Patient.Ward.Name
		}
		if reservation.Patient.Room != nil {
			item.RoomNumber = reservation.Patient.Room.RoomNumber
		}
	}

	return item
}
