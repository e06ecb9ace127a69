package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/response"
	"wardlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for video letter handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPostDetail serves a single video letter scoped to the caller.
func (h *PostHandler) GetPostDetail(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "postId must be a positive integer")
	}

	output, err := h.uc.GetPostDetail(c.Request().Context(), hospitalID, uint(postID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
