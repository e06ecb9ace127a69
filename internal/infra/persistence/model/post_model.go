package model

import "time"

// PostModel mirrors the 'posts' table. Video and subtitle files live in
// an external store; only their URLs are persisted.
type PostModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	HospitalID  uint   `gorm:"not null;index"`
	PatientID   uint   `gorm:"not null"`
	VideoURL    string `gorm:"type:varchar(500);not null;column:video_url"`
	TextURL     string `gorm:"type:varchar(500);column:text_url"`
	Check       bool   `gorm:"not null;default:false;column:checked"`
	StampNumber int    `gorm:"not null;default:0"`
	CardNumber  int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Patient *PatientModel `gorm:"foreignKey:PatientID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
