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

// roomRepository implements the domain.RoomRepository interface using GORM.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

// Create persists a new room.
func (repo *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("room number already exists in this ward")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("ward does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt
	room.UpdatedAt = roomM.UpdatedAt

	return nil
}

// FindByID retrieves a room by id, with its owning ward populated.
func (repo *roomRepository) FindByID(ctx context.Context, id uint) (*entity.Room, error) {
	var roomM model.RoomModel
	err := repo.db.WithContext(ctx).
		Preload("Ward").
		Where("id = ?", id).
		First(&roomM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by id")
	}

	return toRoomDomain(&roomM), nil
}

// FindByNumber retrieves a room by number within the given ward.
func (repo *roomRepository) FindByNumber(ctx context.Context, wardID uint, roomNumber int) (*entity.Room, error) {
	var roomM model.RoomModel
	err := repo.db.WithContext(ctx).
		Where("ward_id = ? AND room_number = ?", wardID, roomNumber).
		First(&roomM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by number")
	}

	return toRoomDomain(&roomM), nil
}

// ListByWard retrieves all rooms of a ward.
func (repo *roomRepository) ListByWard(ctx context.Context, wardID uint) ([]*entity.Room, error) {
	var roomMs []model.RoomModel
	err := repo.db.WithContext(ctx).
		Where("ward_id = ?", wardID).
		Order("room_number").
		Find(&roomMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	rooms := make([]*entity.Room, 0, len(roomMs))
	for i := range roomMs {
		rooms = append(rooms, toRoomDomain(&roomMs[i]))
	}

	return rooms, nil
}

// Update persists modified room fields.
func (repo *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"room_number":     room.RoomNumber,
			"limit_patient":   room.LimitPatient,
			"current_patient": room.CurrentPatient,
			"icu_check":       room.ICUCheck,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrAlreadyRegistered.WrapMessage("room number already exists in this ward")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update room")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room by id.
func (repo *roomRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RoomModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete room")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRoomDomain converts a GORM RoomModel to a domain Room entity.
func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	return &entity.Room{
		ID:             data.ID,
		WardID:         data.WardID,
		RoomNumber:     data.RoomNumber,
		LimitPatient:   data.LimitPatient,
		CurrentPatient: data.CurrentPatient,
		ICUCheck:       data.ICUCheck,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Ward:           toWardDomain(data.Ward),
	}
}

// fromRoomDomain converts a domain Room entity to a GORM RoomModel.
func fromRoomDomain(data *entity.Room) *model.RoomModel {
	if data == nil {
		return nil
	}

	return &model.RoomModel{
		ID:             data.ID,
		WardID:         data.WardID,
		RoomNumber:     data.RoomNumber,
		LimitPatient:   data.LimitPatient,
		CurrentPatient: data.CurrentPatient,
		ICUCheck:       data.ICUCheck,
	}
}
