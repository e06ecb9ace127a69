package usecase

import "context"

// PostDetailOutput is the full payload of a single video letter.
type PostDetailOutput struct {
	ID          uint
	VideoURL    string
	TextURL     string
	Check       bool
	StampNumber int
	CardNumber  int
	CreatedAt   string
}

// PostUsecase defines the interface for video letter read operations.
type PostUsecase interface {
	// GetPostDetail retrieves a single letter scoped to the caller's hospital.
	GetPostDetail(ctx context.Context, hospitalID, postID uint) (*PostDetailOutput, error)
}
