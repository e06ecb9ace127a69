package model

import "time"

// WardModel mirrors the 'wards' table. Ward names are unique per hospital.
type WardModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	HospitalID uint   `gorm:"not null;uniqueIndex:idx_wards_hospital_name"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex:idx_wards_hospital_name"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Rooms []RoomModel `gorm:"foreignKey:WardID"`
}

// TableName explicitly sets the table name for GORM.
func (WardModel) TableName() string {
	return "wards"
}

// RoomModel mirrors the 'rooms' table. Room numbers are unique per ward.
type RoomModel struct {
	ID             uint `gorm:"primaryKey;autoIncrement"`
	WardID         uint `gorm:"not null;uniqueIndex:idx_rooms_ward_number"`
	RoomNumber     int  `gorm:"not null;uniqueIndex:idx_rooms_ward_number"`
	LimitPatient   int  `gorm:"not null"`
	CurrentPatient int  `gorm:"not null;default:0"`
	ICUCheck       bool `gorm:"not null;default:false;column:icu_check"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ward *WardModel `gorm:"foreignKey:WardID"`
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
