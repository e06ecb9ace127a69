package postgres

import (
	"context"
	"time"

	"wardlink/internal/domain/entity"
	"wardlink/internal/domain/repository"
	"wardlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a video letter by id, constrained to the given hospital.
func (repo *postRepository) FindByID(ctx context.Context, hospitalID, id uint) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// ListByHospitalAndDate retrieves the letters that arrived on the given day.
func (repo *postRepository) ListByHospitalAndDate(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Post, error) {
	dayStart, dayEnd := dayBounds(date)

	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.Ward").
		Preload("Patient.Room").
		Where("hospital_id = ? AND created_at >= ? AND created_at < ?", hospitalID, dayStart, dayEnd).
		Order("id").
		Find(&postMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by date")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:          data.ID,
		HospitalID:  data.HospitalID,
		PatientID:   data.PatientID,
		VideoURL:    data.VideoURL,
		TextURL:     data.TextURL,
		Check:       data.Check,
		StampNumber: data.StampNumber,
		CardNumber:  data.CardNumber,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Patient:     toPatientDomain(data.Patient),
	}
}
