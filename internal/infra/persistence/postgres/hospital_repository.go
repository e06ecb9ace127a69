package postgres

import (
	"context"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// hospitalRepository implements the domain.HospitalRepository interface using GORM.
type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository is the constructor for hospitalRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewHospitalRepository(db *gorm.DB) repository.HospitalRepository {
	return &hospitalRepository{db: db}
}

// FindByID retrieves a single hospital by its primary key.
// Reads from the primary so a token issued moments ago validates against
// the hash it was stored with, not a lagging replica.
func (repo *hospitalRepository) FindByID(ctx context.Context, id uint) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&hospitalM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by id")
	}

	return toHospitalDomain(&hospitalM), nil
}

// FindByLoginID retrieves a single hospital by its unique login identifier.
func (repo *hospitalRepository) FindByLoginID(ctx context.Context, loginID string) (*entity.Hospital, error) {
	var hospitalM model.HospitalModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("login_id = ?", loginID).
		First(&hospitalM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHospitalNotFound
		}

		return nil, errors.Wrap(err, "failed to find hospital by login id")
	}

	return toHospitalDomain(&hospitalM), nil
}

// Create persists a new hospital account.
func (repo *hospitalRepository) Create(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).Create(hospitalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("login id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required hospital information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hospital")
	}

	// Propagate the generated ID and timestamps back to the entity.
	hospital.ID = hospitalM.ID
	hospital.CreatedAt = hospitalM.CreatedAt
	hospital.UpdatedAt = hospitalM.UpdatedAt

	return nil
}

// UpdateRefreshHash overwrites the stored refresh-token hash unconditionally.
func (repo *hospitalRepository) UpdateRefreshHash(ctx context.Context, id uint, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("id = ?", id).
		Update("current_refresh_hash", hash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update refresh hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHospitalNotFound
	}

	return nil
}

// RotateRefreshHash replaces the stored hash only when it still equals
// oldHash. The WHERE clause makes the rotation a compare-and-swap, so two
// concurrent refresh calls on the same token cannot both succeed.
func (repo *hospitalRepository) RotateRefreshHash(ctx context.Context, id uint, oldHash, newHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Where("id = ? AND current_refresh_hash = ?", id, oldHash).
		Update("current_refresh_hash", newHash)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate refresh hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshHashStale
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toHospitalDomain converts a GORM HospitalModel to a domain Hospital entity.
func toHospitalDomain(data *model.HospitalModel) *entity.Hospital {
	if data == nil {
		return nil
	}

	return &entity.Hospital{
		ID:                 data.ID,
		LoginID:            data.LoginID,
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Address:            data.Address,
		PasswordHash:       data.PasswordHash,
		CurrentRefreshHash: data.CurrentRefreshHash,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromHospitalDomain converts a domain Hospital entity to a GORM HospitalModel.
func fromHospitalDomain(data *entity.Hospital) *model.HospitalModel {
	if data == nil {
		return nil
	}

	return &model.HospitalModel{
		ID:                 data.ID,
		LoginID:            data.LoginID,
		Name:               data.Name,
		PhoneNumber:        data.PhoneNumber,
		Address:            data.Address,
		PasswordHash:       data.PasswordHash,
		CurrentRefreshHash: data.CurrentRefreshHash,
	}
}
