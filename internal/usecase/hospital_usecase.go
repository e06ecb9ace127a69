package usecase

import (
	"context"
	"time"

	"wardlink/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterHospitalInput defines the data required to register a new hospital account.
type RegisterHospitalInput struct {
	LoginID     string
	Password    string
	Name        string
	PhoneNumber string
	Address     string
}

// CreateWardInput defines the data required to create a ward.
type CreateWardInput struct {
	Name string
}

// UpdateWardInput defines the data required to rename a ward.
type UpdateWardInput struct {
	WardID uint
	Name   string
}

// CreateRoomInput defines the data required to create a room.
type CreateRoomInput struct {
	WardID       uint
	RoomNumber   int
	LimitPatient int
	ICUCheck     bool
}

// UpdateRoomInput defines the data required to modify a room.
type UpdateRoomInput struct {
	RoomID       uint
	RoomNumber   int
	LimitPatient int
	ICUCheck     bool
}

// CreatePatientInput defines the data required to admit a patient.
type CreatePatientInput struct {
	WardID     uint
	RoomID     uint
	Name       string
	PatNumber  string
	InfoNumber string
	Birth      time.Time
	InDate     time.Time
}

// UpdatePatientInput defines the data required to modify a patient record.
type UpdatePatientInput struct {
	PatientID uint
	WardID    uint
	RoomID    uint
	Name      string
	PatNumber string
	Birth     time.Time
	InDate    time.Time
}

// --- Output DTOs ---

// RegisterHospitalOutput returns the newly created account's basic information.
type RegisterHospitalOutput struct {
	Hospital *entity.Hospital
}

// IDCheckOutput reports whether a login identifier is still available.
type IDCheckOutput struct {
	Available bool
	Message   string
}

// WardListItem is a ward row shaped for listings.
type WardListItem struct {
	ID        uint
	Name      string
	CreatedAt string
}

// RoomListItem is a room row shaped for listings.
type RoomListItem struct {
	ID             uint
	RoomNumber     int
	LimitPatient   int
	CurrentPatient int
	ICUCheck       bool
}

// PatientListItem is a patient row shaped for listings, with ward and
// room display fields joined in.
type PatientListItem struct {
	ID         uint
	Name       string
	PatNumber  string
	Birth      string
	WardName   string
	RoomNumber int
	InDate     string
}

// MainPostItem is a dashboard row for a video letter that arrived yesterday.
type MainPostItem struct {
	PostID      uint
	PatientName string
	WardName    string
	RoomNumber  int
	CreatedAt   string
}

// MainVisitItem is a dashboard row for an approved remote visit scheduled today.
type MainVisitItem struct {
	ReservationID  uint
	PatientName    string
	WardName       string
	RoomNumber     int
	TimetableIndex int
}

// MainDataOutput is the dashboard payload.
type MainDataOutput struct {
	Posts  []*MainPostItem
	Visits []*MainVisitItem
}

// HospitalUsecase defines the interface for hospital administration operations.
// All scoped operations take the caller's hospital id extracted from the
// access token, never from the request body.
type HospitalUsecase interface {
	Register(ctx context.Context, input *RegisterHospitalInput) (*RegisterHospitalOutput, error)
	IDCheck(ctx context.Context, loginID string) (*IDCheckOutput, error)

	CreateWard(ctx context.Context, hospitalID uint, input *CreateWardInput) error
	UpdateWard(ctx context.Context, hospitalID uint, input *UpdateWardInput) error
	DeleteWard(ctx context.Context, hospitalID, wardID uint) error
	GetWardList(ctx context.Context, hospitalID uint) ([]*WardListItem, error)

	CreateRoom(ctx context.Context, hospitalID uint, input *CreateRoomInput) error
	UpdateRoom(ctx context.Context, hospitalID uint, input *UpdateRoomInput) error
	DeleteRoom(ctx context.Context, hospitalID, roomID uint) error
	GetRoomList(ctx context.Context, hospitalID, wardID uint) ([]*RoomListItem, error)

	CreatePatient(ctx context.Context, hospitalID uint, input *CreatePatientInput) error
	UpdatePatient(ctx context.Context, hospitalID uint, input *UpdatePatientInput) error
	DeletePatient(ctx context.Context, hospitalID, patientID uint) error
	GetPatients(ctx context.Context, hospitalID uint) ([]*PatientListItem, error)

	GetMainData(ctx context.Context, hospitalID uint) (*MainDataOutput, error)
}
