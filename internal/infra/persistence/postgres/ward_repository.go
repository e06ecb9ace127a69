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

// wardRepository implements the domain.WardRepository interface using GORM.
type wardRepository struct {
	db *gorm.DB
}

// NewWardRepository is the constructor for wardRepository.
func NewWardRepository(db *gorm.DB) repository.WardRepository {
	return &wardRepository{db: db}
}

// Create persists a new ward.
func (repo *wardRepository) Create(ctx context.Context, ward *entity.Ward) error {
	wardM := fromWardDomain(ward)

	if err := repo.db.WithContext(ctx).Create(wardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("ward name already exists in this hospital")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ward")
	}

	ward.ID = wardM.ID
	ward.CreatedAt = wardM.CreatedAt
	ward.UpdatedAt = wardM.UpdatedAt

	return nil
}

// FindByID retrieves a ward by id, constrained to the given hospital.
func (repo *wardRepository) FindByID(ctx context.Context, hospitalID, id uint) (*entity.Ward, error) {
	var wardM model.WardModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&wardM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWardNotFound
		}

		return nil, errors.Wrap(err, "failed to find ward by id")
	}

	return toWardDomain(&wardM), nil
}

// FindByName retrieves a ward by name within the given hospital.
func (repo *wardRepository) FindByName(ctx context.Context, hospitalID uint, name string) (*entity.Ward, error) {
	var wardM model.WardModel
	err := repo.db.WithContext(ctx).
		Where("hospital_id = ? AND name = ?", hospitalID, name).
		First(&wardM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWardNotFound
		}

		return nil, errors.Wrap(err, "failed to find ward by name")
	}

	return toWardDomain(&wardM), nil
}

// ListByHospital retrieves all wards of a hospital.
func (repo *wardRepository) ListByHospital(ctx context.Context, hospitalID uint) ([]*entity.Ward, error) {
	var wardMs []model.WardModel
	err := repo.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("id").
		Find(&wardMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list wards")
	}

	wards := make([]*entity.Ward, 0, len(wardMs))
	for i := range wardMs {
		wards = append(wards, toWardDomain(&wardMs[i]))
	}

	return wards, nil
}

// UpdateName renames a ward, constrained to the given hospital.
func (repo *wardRepository) UpdateName(ctx context.Context, hospitalID, id uint, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WardModel{}).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		Update("name", name)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("ward name already exists in this hospital")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rename ward")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWardNotFound
	}

	return nil
}

// Delete removes a ward, constrained to the given hospital.
func (repo *wardRepository) Delete(ctx context.Context, hospitalID, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		Delete(&model.WardModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ward")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWardNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toWardDomain converts a GORM WardModel to a domain Ward entity.
func toWardDomain(data *model.WardModel) *entity.Ward {
	if data == nil {
		return nil
	}

	return &entity.Ward{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromWardDomain converts a domain Ward entity to a GORM WardModel.
func fromWardDomain(data *entity.Ward) *model.WardModel {
	if data == nil {
		return nil
	}

	return &model.WardModel{
		ID:         data.ID,
		HospitalID: data.HospitalID,
		Name:       data.Name,
	}
}
