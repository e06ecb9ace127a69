package entity

import "time"

// Post is an inbound video letter sent to a hospitalized patient. The
// video and subtitle files live in an external store; only their URLs
// are kept here.
type Post struct {
	ID          uint
	HospitalID  uint
	PatientID   uint
	VideoURL    string
	TextURL     string
	Check       bool // Whether the hospital has opened the letter.
	StampNumber int
	CardNumber  int
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Patient *Patient
}
