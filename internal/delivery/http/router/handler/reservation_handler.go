package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/response"
	"wardlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReservationHandler holds dependencies for visit reservation handlers.
type ReservationHandler struct {
	uc     usecase.ReservationUsecase
	logger *slog.Logger
}

// NewReservationHandler is the constructor for ReservationHandler, injected by Fx.
func NewReservationHandler(uc usecase.ReservationUsecase, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		uc:     uc,
		logger: logger,
	}
}

// changeStateRequest carries the decision. State is intentionally not
// tagged required: 0 is out of range and the usecase reports it as an
// invalid decision rather than a missing field.
type changeStateRequest struct {
	ReservationID uint `json:"reservationId" validate:"required"`
	State         int  `json:"state"`
}

// ChangeState handles the approve/reject decision request.
func (h *ReservationHandler) ChangeState(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req changeStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ChangeState(c.Request().Context(), hospitalID, &usecase.ChangeStateInput{
		ReservationID: req.ReservationID,
		State:         req.State,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reservation "+output.Outcome)
}

// GetAllReservations lists the caller's reservations grouped by state.
func (h *ReservationHandler) GetAllReservations(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	output, err := h.uc.GetAllReservations(c.Request().Context(), hospitalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetReservationList lists the reservations of a single day. Without a
// date query parameter it defaults to today.
func (h *ReservationHandler) GetReservationList(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(requestDateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "date must be formatted YYYY-MM-DD")
		}
		date = parsed
	}

	items, err := h.uc.GetReservationList(c.Request().Context(), hospitalID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}
