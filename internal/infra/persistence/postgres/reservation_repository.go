package postgres

import (
	"context"
	"time"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reservationRepository implements the domain.ReservationRepository interface using GORM.
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(db *gorm.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// FindByID retrieves a reservation by id, constrained to the given hospital.
func (repo *reservationRepository) FindByID(ctx context.Context, hospitalID, id uint) (*entity.Reservation, error) {
	var reservationM model.ReservationModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.Ward").
		Preload("Patient.Room").
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&reservationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by id")
	}

	return toReservationDomain(&reservationM), nil
}

// Decide performs the one-time state transition as a single conditional
// update. The approve_check = 0 predicate makes the write a
// compare-and-swap: a reservation decided by a concurrent request matches
// no row and the second decision is reported instead of applied.
func (repo *reservationRepository) Decide(ctx context.Context, hospitalID, id uint, state entity.ApprovalState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReservationModel{}).
		Where("id = ? AND hospital_id = ? AND approve_check = ?", id, hospitalID, int8(entity.StatePending)).
		Update("approve_check", int8(state))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decide reservation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReservationNotPending
	}

	return nil
}

// ListByHospital retrieves all reservations of a hospital ordered by
// reservation date then timetable index.
func (repo *reservationRepository) ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Reservation, error) {
	var reservationMs []model.ReservationModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.Ward").
		Preload("Patient.Room").
		Where("hospital_id = ?", hospitalID).
		Order("reservation_date, timetable_index").
		Find(&reservationMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return toReservationDomainSlice(reservationMs), nil
}

// ListByHospitalAndDate retrieves the reservations of a single day.
func (repo *reservationRepository) ListByHospitalAndDate(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error) {
	dayStart, dayEnd := dayBounds(date)

	var reservationMs []model.ReservationModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.Ward").
		Preload("Patient.Room").
		Where("hospital_id = ? AND reservation_date >= ? AND reservation_date < ?", hospitalID, dayStart, dayEnd).
		Order("timetable_index").
		Find(&reservationMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations by date")
	}

	return toReservationDomainSlice(reservationMs), nil
}

// ListApprovedVisits retrieves the approved, non-face-to-face reservations
// of a single day.
func (repo *reservationRepository) ListApprovedVisits(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error) {
	dayStart, dayEnd := dayBounds(date)

	var reservationMs []model.ReservationModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.Ward").
		Preload("Patient.Room").
		Where("hospital_id = ? AND reservation_date >= ? AND reservation_date < ? AND approve_check = ? AND face_to_face = false",
			hospitalID, dayStart, dayEnd, int8(entity.StateApproved)).
		Order("timetable_index").
		Find(&reservationMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved visits")
	}

	return toReservationDomainSlice(reservationMs), nil
}

// dayBounds returns the half-open [start, end) window covering the
// calendar day of the given instant, in its own location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return start, start.AddDate(0, 0, 1)
}

// --- Mapper Functions ---

// toReservationDomain converts a GORM ReservationModel to a domain Reservation entity.
func toReservationDomain(data *model.ReservationModel) *entity.Reservation {
	if data == nil {
		return nil
	}

	return &entity.Reservation{
		ID:              data.ID,
		HospitalID:      data.HospitalID,
		PatientID:       data.PatientID,
		ReservationDate: data.ReservationDate,
		TimetableIndex:  data.TimetableIndex,
		FaceToFace:      data.FaceToFace,
		ApproveCheck:    entity.ApprovalState(data.ApproveCheck),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Patient:         toPatientDomain(data.Patient),
	}
}

func toReservationDomainSlice(data []model.ReservationModel) []*entity.Reservation {
	reservations := make([]*entity.Reservation, 0, len(data))
	for i := range data {
		reservations = append(reservations, toReservationDomain(&data[i]))
	}

	return reservations
}
