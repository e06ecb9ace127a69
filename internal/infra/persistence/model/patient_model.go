package model

import "time"

// PatientModel mirrors the 'patients' table. InfoNumber is the resident
// registration number and is unique across the whole system.
type PatientModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	HospitalID uint      `gorm:"not null;index"`
	WardID     uint      `gorm:"not null"`
	RoomID     uint      `gorm:"not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
	PatNumber  string    `gorm:"type:varchar(50);not null"`
	InfoNumber string    `gorm:"type:varchar(20);unique;not null"`
	Birth      time.Time `gorm:"not null"`
	InDate     time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Ward *WardModel `gorm:"foreignKey:WardID"`
	Room *RoomModel `gorm:"foreignKey:RoomID"`
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
