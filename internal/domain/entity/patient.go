package entity

import "time"

// Patient is an admitted patient. InfoNumber (resident registration
// number) is unique system-wide; PatNumber is the hospital's own chart
// number.
type Patient struct {
	ID         uint
	HospitalID uint
	WardID     uint
	RoomID     uint
	Name       string
	PatNumber  string
	InfoNumber string
	Birth      time.Time
	InDate     time.Time // Admission date.
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Ward *Ward // Populated when listings need ward/room display fields.
	Room *Room
}
