package postgres

import (
	"context"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// patientRepository implements the domain.PatientRepository interface using GORM.
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

// Create persists a new patient.
func (repo *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	patientM := fromPatientDomain(patient)

	if err := repo.db.WithContext(ctx).Create(patientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("patient info number already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("ward or room does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required patient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create patient")
	}

	patient.ID = patientM.ID
	patient.CreatedAt = patientM.CreatedAt
	patient.UpdatedAt = patientM.UpdatedAt

	return nil
}

// FindByID retrieves a patient by id, constrained to the given hospital.
func (repo *patientRepository) FindByID(ctx context.Context, hospitalID, id uint) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Preload("Ward").
		Preload("Room").
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by id")
	}

	return toPatientDomain(&patientM), nil
}

// FindByInfoNumber retrieves a patient by resident registration number.
func (repo *patientRepository) FindByInfoNumber(ctx context.Context, infoNumber string) (*entity.Patient, error) {
	var patientM model.PatientModel
	err := repo.db.WithContext(ctx).
		Where("info_number = ?", infoNumber).
		First(&patientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPatientNotFound
		}

		return nil, errors.Wrap(err, "failed to find patient by info number")
	}

	return toPatientDomain(&patientM), nil
}

// ListByHospital retrieves all patients of a hospital with ward and room
// associations populated for display.
func (repo *patientRepository) ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Patient, error) {
	var patientMs []model.PatientModel
	err := repo.db.WithContext(ctx).
		Preload("Ward").
		Preload("Room").
		Where("hospital_id = ?", hospitalID).
		Order("id").
		Find(&patientMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(patientMs))
	for i := range patientMs {
		patients = append(patients, toPatientDomain(&patientMs[i]))
	}

	return patients, nil
}

// Update persists modified patient fields.
func (repo *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PatientModel{}).
		Where("id = ? AND hospital_id = ?", patient.ID, patient.HospitalID).
		Updates(map[string]any{
			"ward_id":    patient.WardID,
			"room_id":    patient.RoomID,
			"name":       patient.Name,
			"pat_number": patient.PatNumber,
			"birth":      patient.Birth,
			"in_date":    patient.InDate,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRequest.WrapMessage("ward or room does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// Delete removes a patient, constrained to the given hospital.
func (repo *patientRepository) Delete(ctx context.Context, hospitalID, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		Delete(&model.PatientModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete patient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPatientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPatientDomain converts a GORM PatientModel to a domain Patient entity.
func toPatientDomain(data *model.PatientModel) *entity.Patient {
	if data == nil {
		return nil
	}

	return &entity.Patient{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		WardID:     data.WardID,
		RoomID:     data.RoomID,
		Name:       data.Name,
		PatNumber:  data.PatNumber,
		InfoNumber: data.InfoNumber,
		Birth:      data.Birth,
		InDate:     data.InDate,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Ward:       toWardDomain(data.Ward),
		Room:       toRoomDomain(data.Room),
	}
}

// fromPatientDomain converts a domain Patient entity to a GORM PatientModel.
func fromPatientDomain(data *entity.Patient) *model.PatientModel {
	if data == nil {
		return nil
	}

	return &model.PatientModel{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		WardID:     data.WardID,
		RoomID:     data.RoomID,
		Name:       data.Name,
		PatNumber:  data.PatNumber,
		InfoNumber: data.InfoNumber,
		Birth:      data.Birth,
		InDate:     data.InDate,
	}
}
