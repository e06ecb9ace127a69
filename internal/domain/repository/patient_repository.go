package repository

import (
	"context"
	"errors"

	"wardlink/internal/domain/entity"
)

// ErrPatientNotFound is returned when no patient matches the scoped lookup.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository defines the standard operations for patient persistence.
type PatientRepository interface {
	// Create persists a new patient.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindByID retrieves a patient by id, constrained to the given hospital.
	FindByID(ctx context.Context, hospitalID, id uint) (*entity.Patient, error)

	// FindByInfoNumber retrieves a patient by resident registration number.
	FindByInfoNumber(ctx context.Context, infoNumber string) (*entity.Patient, error)

	// ListByHospital retrieves all patients of a hospital with ward and
	// room associations populated for display.
	ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Patient, error)

	// Update persists modified patient fields.
	Update(ctx context.Context, patient *entity.Patient) error

	// Delete removes a patient, constrained to the given hospital.
	Delete(ctx context.Context, hospitalID, id uint) error
}
