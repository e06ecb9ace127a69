package impl

import (
	"context"
	"testing"
	"time"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_GetPostDetail(t *testing.T) {
	env := newTestEnv()
	post := env.posts.put(&entity.Post{
		HospitalID:  1,
		VideoURL:    "https://cdn.example.com/letters/42.mp4",
		TextURL:     "https://cdn.example.com/letters/42.vtt",
		Check:       true,
		StampNumber: 3,
		CardNumber:  7,
		CreatedAt:   time.Date(2026, 8, 27, 14, 0, 0, 0, time.UTC),
	})
	srv := env.postService()

	output, err := srv.GetPostDetail(context.Background(), 1, post.ID)

	require.NoError(t, err)
	assert.Equal(t, post.ID, output.ID)
	assert.Equal(t, "https://cdn.example.com/letters/42.mp4", output.VideoURL)
	assert.True(t, output.Check)
	assert.Equal(t, 3, output.StampNumber)
	assert.Equal(t, "26/08/27", output.CreatedAt)
}

func TestPostService_GetPostDetail_NotFound(t *testing.T) {
	env := newTestEnv()
	srv := env.postService()

	_, err := srv.GetPostDetail(context.Background(), 1, 99)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_GetPostDetail_OtherHospital(t *testing.T) {
	env := newTestEnv()
	post := env.posts.put(&entity.Post{HospitalID: 1})
	srv := env.postService()

	_, err := srv.GetPostDetail(context.Background(), 2, post.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
