package repository

import (
	"context"
	"errors"
	"time"

	"wardlink/internal/domain/entity"
)

// ErrPostNotFound is returned when no video letter matches the scoped lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines read operations for inbound video letters.
// Letters are written by the visitor-facing flow; the hospital side only
// reads them.
type PostRepository interface {
	// FindByID retrieves a video letter by id, constrained to the given hospital.
	FindByID(ctx context.Context, hospitalID, id uint) (*entity.Post, error)

	// ListByHospitalAndDate retrieves the letters that arrived on the
	// given day, with patient associations populated.
	ListByHospitalAndDate(ctx context.Context, hospitalID uint, date time.Time) ([]*entity.Post, error)
}
