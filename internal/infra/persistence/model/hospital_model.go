// Package model holds the GORM table mappings. Models mirror the
// database schema and are converted to domain entities at the
// repository boundary.
package model

import "time"

// HospitalModel mirrors the 'hospitals' table.
type HospitalModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	LoginID            string `gorm:"type:varchar(50);unique;not null;column:login_id"`
	Name               string `gorm:"type:varchar(100);not null"`
	PhoneNumber        string `gorm:"type:varchar(30)"`
	Address            string `gorm:"type:varchar(255)"`
	PasswordHash       string `gorm:"type:varchar(255);not null"`
	CurrentRefreshHash string `gorm:"type:varchar(64)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Wards    []WardModel    `gorm:"foreignKey:HospitalID"`
	Patients []PatientModel `gorm:"foreignKey:HospitalID"`
}

// TableName explicitly sets the table name for GORM.
func (HospitalModel) TableName() string {
	return "hospitals"
}
