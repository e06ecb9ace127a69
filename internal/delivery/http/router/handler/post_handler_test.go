package handler

import (
	"context"
	"net/http"
	"testing"

	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostHandler_GetPostDetail_Success(t *testing.T) {
	uc := &fakePostUsecase{
		detailFn: func(_ context.Context, hospitalID, postID uint) (*usecase.PostDetailOutput, error) {
			assert.Equal(t, uint(1), hospitalID)
			assert.Equal(t, uint(42), postID)

			return &usecase.PostDetailOutput{
				ID:       42,
				VideoURL: "https://cdn.example.com/letters/42.mp4",
			}, nil
		},
	}
	h := NewPostHandler(uc, newTestLogger())

	c, rec := newTestContext(http.MethodGet, "/post/detail/42", "")
	c.SetParamNames("postId")
	c.SetParamValues("42")
	authenticate(c, 1)

	require.NoError(t, h.GetPostDetail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "letters/42.mp4")
}

func TestPostHandler_GetPostDetail_BadID(t *testing.T) {
	h := NewPostHandler(&fakePostUsecase{}, newTestLogger())

	c, rec := newTestContext(http.MethodGet, "/post/detail/abc", "")
	c.SetParamNames("postId")
	c.SetParamValues("abc")
	authenticate(c, 1)

	require.NoError(t, h.GetPostDetail(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandler_GetPostDetail_NotFound(t *testing.T) {
	uc := &fakePostUsecase{
		detailFn: func(context.Context, uint, uint) (*usecase.PostDetailOutput, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	h := NewPostHandler(uc, newTestLogger())

	c, _ := newTestContext(http.MethodGet, "/post/detail/42", "")
	c.SetParamNames("postId")
	c.SetParamValues("42")
	authenticate(c, 1)

	err := h.GetPostDetail(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
