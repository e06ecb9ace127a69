package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/domain/service"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// hospitalService implements the HospitalUsecase interface.
type hospitalService struct {
	txManager       repository.TransactionManager
	hospitalRepo    repository.HospitalRepository
	wardRepo        repository.WardRepository
	roomRepo        repository.RoomRepository
	patientRepo     repository.PatientRepository
	reservationRepo repository.ReservationRepository
	postRepo        repository.PostRepository
	hasher          service.PasswordHasher
	logger          *slog.Logger
}

// HospitalServiceParams holds dependencies for hospitalService, injected by Fx.
type HospitalServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	HospitalRepo    repository.HospitalRepository
	WardRepo        repository.WardRepository
	RoomRepo        repository.RoomRepository
	PatientRepo     repository.PatientRepository
	ReservationRepo repository.ReservationRepository
	PostRepo        repository.PostRepository
	Hasher          service.PasswordHasher
	Logger          *slog.Logger
}

// NewHospitalService is the constructor for hospitalService.
func NewHospitalService(params HospitalServiceParams) usecase.HospitalUsecase {
	return &hospitalService{
		txManager:       params.TxManager,
		hospitalRepo:    params.HospitalRepo,
		wardRepo:        params.WardRepo,
		roomRepo:        params.RoomRepo,
		patientRepo:     params.PatientRepo,
		reservationRepo: params.ReservationRepo,
		postRepo:        params.PostRepo,
		hasher:          params.Hasher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *hospitalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new hospital account with a bcrypt-hashed password.
func (srv *hospitalService) Register(ctx context.Context, input *usecase.RegisterHospitalInput) (*usecase.RegisterHospitalOutput, error) {
	srv.log(ctx).Info("Registering hospital", slog.String("loginID", input.LoginID))

	if _, err := srv.hospitalRepo.FindByLoginID(ctx, input.LoginID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrAlreadyRegistered, "login id already taken")
	} else if !errors.Is(err, repository.ErrHospitalNotFound) {
		return nil, errors.Wrap(err, "failed to check login id availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	hospital := &entity.Hospital{
		LoginID:      input.LoginID,
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		PasswordHash: passwordHash,
	}

	// The unique index on login_id backstops the availability check above
	// when two registrations race.
	if err := srv.hospitalRepo.Create(ctx, hospital); err != nil {
		return nil, errors.Wrap(err, "failed to create hospital")
	}

	srv.log(ctx).Debug("Hospital registered", slog.Uint64("hospitalID", uint64(hospital.ID)))

	return &usecase.RegisterHospitalOutput{Hospital: hospital.Sanitized()}, nil
}

// IDCheck reports whether a login identifier is still available.
func (srv *hospitalService) IDCheck(ctx context.Context, loginID string) (*usecase.IDCheckOutput, error) {
	_, err := srv.hospitalRepo.FindByLoginID(ctx, loginID)
	if err == nil {
		return &usecase.IDCheckOutput{Available: false, Message: "Already registered"}, nil
	}
	if !errors.Is(err, repository.ErrHospitalNotFound) {
		return nil, errors.Wrap(err, "failed to check login id")
	}

	return &usecase.IDCheckOutput{Available: true, Message: "Available"}, nil
}

// CreateWard adds a ward; ward names are unique within the hospital.
func (srv *hospitalService) CreateWard(ctx context.Context, hospitalID uint, input *usecase.CreateWardInput) error {
	if _, err := srv.wardRepo.FindByName(ctx, hospitalID, input.Name); err == nil {
		return errors.Wrap(domainerrors.ErrAlreadyRegistered, "ward name already exists")
	} else if !errors.Is(err, repository.ErrWardNotFound) {
		return errors.Wrap(err, "failed to check ward name")
	}

	ward := &entity.Ward{HospitalID: hospitalID, Name: input.Name}
	if err := srv.wardRepo.Create(ctx, ward); err != nil {
		return errors.Wrap(err, "failed to create ward")
	}

	srv.log(ctx).Debug("Ward created", slog.Uint64("hospitalID", uint64(hospitalID)), slog.Uint64("wardID", uint64(ward.ID)))

	return nil
}

// UpdateWard renames a ward owned by the caller's hospital.
func (srv *hospitalService) UpdateWard(ctx context.Context, hospitalID uint, input *usecase.UpdateWardInput) error {
	if err := srv.wardRepo.UpdateName(ctx, hospitalID, input.WardID, input.Name); err != nil {
		if errors.Is(err, repository.ErrWardNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
		}

		return errors.Wrap(err, "failed to rename ward")
	}

	return nil
}

// DeleteWard removes a ward owned by the caller's hospital.
func (srv *hospitalService) DeleteWard(ctx context.Context, hospitalID, wardID uint) error {
	if err := srv.wardRepo.Delete(ctx, hospitalID, wardID); err != nil {
		if errors.Is(err, repository.ErrWardNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
		}

		return errors.Wrap(err, "failed to delete ward")
	}

	return nil
}

// GetWardList lists the hospital's wards shaped for display.
func (srv *hospitalService) GetWardList(ctx context.Context, hospitalID uint) ([]*usecase.WardListItem, error) {
	wards, err := srv.wardRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wards")
	}

	items := make([]*usecase.WardListItem, 0, len(wards))
	for _, ward := range wards {
		items = append(items, &usecase.WardListItem{
			ID:        ward.ID,
			Name:      ward.Name,
			CreatedAt: formatDate(ward.CreatedAt),
		})
	}

	return items, nil
}

// CreateRoom adds a room to one of the caller's wards.
func (srv *hospitalService) CreateRoom(ctx context.Context, hospitalID uint, input *usecase.CreateRoomInput) error {
	if _, err := srv.wardRepo.FindByID(ctx, hospitalID, input.WardID); err != nil {
		if errors.Is(err, repository.ErrWardNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
		}

		return errors.Wrap(err, "failed to find ward for room creation")
	}

	if _, err := srv.roomRepo.FindByNumber(ctx, input.WardID, input.RoomNumber); err == nil {
		return errors.Wrap(domainerrors.ErrAlreadyRegistered, "room number already exists in this ward")
	} else if !errors.Is(err, repository.ErrRoomNotFound) {
		return errors.Wrap(err, "failed to check room number")
	}

	room := &entity.Room{
		WardID:       input.WardID,
		RoomNumber:   input.RoomNumber,
		LimitPatient: input.LimitPatient,
		ICUCheck:     input.ICUCheck,
	}
	if err := srv.roomRepo.Create(ctx, room); err != nil {
		return errors.Wrap(err, "failed to create room")
	}

	srv.log(ctx).Debug("Room created", slog.Uint64("hospitalID", uint64(hospitalID)), slog.Uint64("roomID", uint64(room.ID)))

	return nil
}

// UpdateRoom modifies a room after confirming it belongs to the caller.
func (srv *hospitalService) UpdateRoom(ctx context.Context, hospitalID uint, input *usecase.UpdateRoomInput) error {
	room, err := srv.loadOwnedRoom(ctx, hospitalID, input.RoomID)
	if err != nil {
		return err
	}

	if input.LimitPatient < room.CurrentPatient {
		return errors.Wrap(domainerrors.ErrInvalidRequest, "admission limit below current occupancy")
	}

	room.RoomNumber = input.RoomNumber
	room.LimitPatient = input.LimitPatient
	room.ICUCheck = input.ICUCheck

	if err := srv.roomRepo.Update(ctx, room); err != nil {
		return errors.Wrap(err, "failed to update room")
	}

	return nil
}

// DeleteRoom removes a room after confirming it belongs to the caller.
func (srv *hospitalService) DeleteRoom(ctx context.Context, hospitalID, roomID uint) error {
	if _, err := srv.loadOwnedRoom(ctx, hospitalID, roomID); err != nil {
		return err
	}

	if err := srv.roomRepo.Delete(ctx, roomID); err != nil {
		return errors.Wrap(err, "failed to delete room")
	}

	return nil
}

// GetRoomList lists the rooms of one ward owned by the caller.
func (srv *hospitalService) GetRoomList(ctx context.Context, hospitalID, wardID uint) ([]*usecase.RoomListItem, error) {
	if _, err := srv.wardRepo.FindByID(ctx, hospitalID, wardID); err != nil {
		if errors.Is(err, repository.ErrWardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
		}

		return nil, errors.Wrap(err, "failed to find ward for room listing")
	}

	rooms, err := srv.roomRepo.ListByWard(ctx, wardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	items := make([]*usecase.RoomListItem, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, &usecase.RoomListItem{
			ID:             room.ID,
			RoomNumber:     room.RoomNumber,
			LimitPatient:   room.LimitPatient,
			CurrentPatient: room.CurrentPatient,
			ICUCheck:       room.ICUCheck,
		})
	}

	return items, nil
}

// CreatePatient admits a patient. The insert and the room occupancy
// increment commit together or not at all.
func (srv *hospitalService) CreatePatient(ctx context.Context, hospitalID uint, input *usecase.CreatePatientInput) error {
	if _, err := srv.patientRepo.FindByInfoNumber(ctx, input.InfoNumber); err == nil {
		return errors.Wrap(domainerrors.ErrAlreadyRegistered, "patient info number already registered")
	} else if !errors.Is(err, repository.ErrPatientNotFound) {
		return errors.Wrap(err, "failed to check patient info number")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wardRepo := repoFactory.WardRepo()
		roomRepo := repoFactory.RoomRepo()
		patientRepo := repoFactory.PatientRepo()

		if _, err := wardRepo.FindByID(ctx, hospitalID, input.WardID); err != nil {
			if errors.Is(err, repository.ErrWardNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
			}

			return errors.Wrap(err, "failed to find ward for admission")
		}

		room, err := roomRepo.FindByID(ctx, input.RoomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidRequest, "room does not exist")
			}

			return errors.Wrap(err, "failed to find room for admission")
		}
		if room.WardID != input.WardID {
			return errors.Wrap(domainerrors.ErrInvalidRequest, "room does not belong to the given ward")
		}
		if room.Full() {
			return errors.Wrap(domainerrors.ErrRoomFull, "room admission limit reached")
		}

		patient := &entity.Patient{
			HospitalID: hospitalID,
			WardID:     input.WardID,
			RoomID:     input.RoomID,
			Name:       input.Name,
			PatNumber:  input.PatNumber,
			InfoNumber: input.InfoNumber,
			Birth:      input.Birth,
			InDate:     input.InDate,
		}
		if err := patientRepo.Create(ctx, patient); err != nil {
			return errors.Wrap(err, "failed to create patient")
		}

		room.CurrentPatient++

		return errors.Wrap(roomRepo.Update(ctx, room), "failed to update room occupancy")
	})

	if err != nil {
		srv.log(ctx).Warn("Patient admission failed", slog.Uint64("hospitalID", uint64(hospitalID)), slog.Any("error", err))

		return err
	}

	return nil
}

// UpdatePatient modifies a patient record, moving room occupancy counts
// when the patient changes rooms.
func (srv *hospitalService) UpdatePatient(ctx context.Context, hospitalID uint, input *usecase.UpdatePatientInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wardRepo := repoFactory.WardRepo()
		roomRepo := repoFactory.RoomRepo()
		patientRepo := repoFactory.PatientRepo()

		patient, err := patientRepo.FindByID(ctx, hospitalID, input.PatientID)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidRequest, "patient does not belong to this hospital")
			}

			return errors.Wrap(err, "failed to find patient")
		}

		if input.RoomID != patient.RoomID {
			if _, err := wardRepo.FindByID(ctx, hospitalID, input.WardID); err != nil {
				if errors.Is(err, repository.ErrWardNotFound) {
					return errors.Wrap(domainerrors.ErrInvalidRequest, "ward does not belong to this hospital")
				}

				return errors.Wrap(err, "failed to find ward for transfer")
			}

			newRoom, err := roomRepo.FindByID(ctx, input.RoomID)
			if err != nil {
				if errors.Is(err, repository.ErrRoomNotFound) {
					return errors.Wrap(domainerrors.ErrInvalidRequest, "room does not exist")
				}

				return errors.Wrap(err, "failed to find room for transfer")
			}
			if newRoom.WardID != input.WardID {
				return errors.Wrap(domainerrors.ErrInvalidRequest, "room does not belong to the given ward")
			}
			if newRoom.Full() {
				return errors.Wrap(domainerrors.ErrRoomFull, "room admission limit reached")
			}

			oldRoom, err := roomRepo.FindByID(ctx, patient.RoomID)
			if err != nil {
				return errors.Wrap(err, "failed to find current room for transfer")
			}

			oldRoom.CurrentPatient--
			if err := roomRepo.Update(ctx, oldRoom); err != nil {
				return errors.Wrap(err, "failed to release old room occupancy")
			}

			newRoom.CurrentPatient++
			if err := roomRepo.Update(ctx, newRoom); err != nil {
				return errors.Wrap(err, "failed to claim new room occupancy")
			}
		}

		patient.WardID = input.WardID
		patient.RoomID = input.RoomID
		patient.Name = input.Name
		patient.PatNumber = input.PatNumber
		patient.Birth = input.Birth
		patient.InDate = input.InDate

		return errors.Wrap(patientRepo.Update(ctx, patient), "failed to update patient")
	})

	if err != nil {
		srv.log(ctx).Warn("Patient update failed", slog.Uint64("hospitalID", uint64(hospitalID)), slog.Any("error", err))

		return err
	}

	return nil
}

// DeletePatient discharges a patient and releases the room slot.
func (srv *hospitalService) DeletePatient(ctx context.Context, hospitalID, patientID uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roomRepo := repoFactory.RoomRepo()
		patientRepo := repoFactory.PatientRepo()

		patient, err := patientRepo.FindByID(ctx, hospitalID, patientID)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidRequest, "patient does not belong to this hospital")
			}

			return errors.Wrap(err, "failed to find patient")
		}

		if err := patientRepo.Delete(ctx, hospitalID, patientID); err != nil {
			return errors.Wrap(err, "failed to delete patient")
		}

		room, err := roomRepo.FindByID(ctx, patient.RoomID)
		if err != nil {
			// Room already gone; the discharge itself still stands.
			if errors.Is(err, repository.ErrRoomNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find room for discharge")
		}

		if room.CurrentPatient > 0 {
			room.CurrentPatient--
		}

		return errors.Wrap(roomRepo.Update(ctx, room), "failed to release room occupancy")
	})

	if err != nil {
		srv.log(ctx).Warn("Patient discharge failed", slog.Uint64("hospitalID", uint64(hospitalID)), slog.Any("error", err))

		return err
	}

	return nil
}

// GetPatients lists the hospital's patients with ward and room display fields.
func (srv *hospitalService) GetPatients(ctx context.Context, hospitalID uint) ([]*usecase.PatientListItem, error) {
	patients, err := srv.patientRepo.ListByHospital(ctx, hospitalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	items := make([]*usecase.PatientListItem, 0, len(patients))
	for _, patient := range patients {
		item := &usecase.PatientListItem{
			ID:        patient.ID,
			Name:      patient.Name,
			PatNumber: patient.PatNumber,
			Birth:     formatBirth(patient.Birth),
			InDate:    formatDate(patient.InDate),
		}
		if patient.Ward != nil {
			item.WardName = patient.Ward.Name
		}
		if patient.Room != nil {
			item.RoomNumber = patient.Room.RoomNumber
		}

		items = append(items, item)
	}

	return items, nil
}

// GetMainData builds the dashboard: yesterday's video letters plus
// today's approved remote visits.
func (srv *hospitalService) GetMainData(ctx context.Context, hospitalID uint) (*usecase.MainDataOutput, error) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	posts, err := srv.postRepo.ListByHospitalAndDate(ctx, hospitalID, yesterday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list yesterday's posts")
	}

	visits, err := srv.reservationRepo.ListApprovedVisits(ctx, hospitalID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list today's approved visits")
	}

	output := &usecase.MainDataOutput{
		Posts:  make([]*usecase.MainPostItem, 0, len(posts)),
		Visits: make([]*usecase.MainVisitItem, 0, len(visits)),
	}

	for _, post := range posts {
		item := &usecase.MainPostItem{
			PostID:    post.ID,
			CreatedAt: formatDate(post.CreatedAt),
		}
		if post.Patient != nil {
			item.PatientName = post.Patient.Name
			if post.Patient.Ward != nil {
				item.WardName = post.Patient.Ward.Name
			}
			if post.Patient.Room != nil {
				item.RoomNumber = post.Patient.Room.RoomNumber
			}
		}

		output.Posts = append(output.Posts, item)
	}

	for _, visit := range visits {
		item := &usecase.MainVisitItem{
			ReservationID:  visit.ID,
			TimetableIndex: visit.TimetableIndex,
		}
		if visit.Patient != nil {
			item.PatientName = visit.Patient.Name
			if visit.Patient.Ward != nil {
				item.WardName = visit.Patient.Ward.Name
			}
			if visit.Patient.Room != nil {
				item.RoomNumber = visit.Patient.Room.RoomNumber
			}
		}

		output.Visits = append(output.Visits, item)
	}

	return output, nil
}

// loadOwnedRoom fetches a room and confirms its ward belongs to the
// caller's hospital.
func (srv *hospitalService) loadOwnedRoom(ctx context.Context, hospitalID, roomID uint) (*entity.Room, error) {
	room, err := srv.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "room does not exist")
		}

		return nil, errors.Wrap(err, "failed to find room")
	}
	if room.Ward == nil || room.Ward.HospitalID != hospitalID {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "room does not belong to this hospital")
	}

	return room, nil
}
