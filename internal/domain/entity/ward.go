package entity

import "time"

// Ward is a named section of a hospital. Ward names are unique within a
// single hospital but may repeat across hospitals.
type Ward struct {
	ID         uint
	HospitalID uint
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Room is a numbered room inside a ward. RoomNumber is unique within its
// ward. CurrentPatient tracks occupancy against LimitPatient.
type Room struct {
	ID             uint
	WardID         uint
	RoomNumber     int
	LimitPatient   int
	CurrentPatient int
	ICUCheck       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ward *Ward // Populated on scoped lookups that need the owning ward.
}

// Full reports whether the room has reached its admission limit.
func (r *Room) Full() bool {
	return r.CurrentPatient >= r.LimitPatient
}
