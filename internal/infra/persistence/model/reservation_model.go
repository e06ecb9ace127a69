package model

import "time"

// ReservationModel mirrors the 'reservations' table. ApproveCheck holds
// the tri-state decision flag: -1 rejected, 0 pending, 1 approved.
type ReservationModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	HospitalID      uint      `gorm:"not null;index"`
	PatientID       uint      `gorm:"not null"`
	ReservationDate time.Time `gorm:"not null;index"`
	TimetableIndex  int       `gorm:"not null"`
	FaceToFace      bool      `gorm:"not null;default:false"`
	ApproveCheck    int8      `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Patient *PatientModel `gorm:"foreignKey:PatientID"`
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
