package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/response"
	"wardlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Wire format for date fields in request payloads.
const requestDateLayout = "2006-01-02"

// HospitalHandler holds dependencies for hospital administration handlers.
type HospitalHandler struct {
	uc     usecase.HospitalUsecase
	logger *slog.Logger
}

// NewHospitalHandler is the constructor for HospitalHandler, injected by Fx.
func NewHospitalHandler(uc usecase.HospitalUsecase, logger *slog.Logger) *HospitalHandler {
	return &HospitalHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerHospitalRequest struct {
	LoginID     string `json:"loginId" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type createWardRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateWardRequest struct {
	WardID uint   `json:"wardId" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

type deleteWardRequest struct {
	WardID uint `json:"wardId" validate:"required"`
}

type createRoomRequest struct {
	WardID       uint `json:"wardId" validate:"required"`
	RoomNumber   int  `json:"roomNumber" validate:"required"`
	LimitPatient int  `json:"limitPatient" validate:"required,min=1"`
	ICUCheck     bool `json:"icuCheck"`
}

type updateRoomRequest struct {
	RoomID       uint `json:"roomId" validate:"required"`
	RoomNumber   int  `json:"roomNumber" validate:"required"`
	LimitPatient int  `json:"limitPatient" validate:"required,min=1"`
	ICUCheck     bool `json:"icuCheck"`
}

type deleteRoomRequest struct {
	RoomID uint `json:"roomId" validate:"required"`
}

type createPatientRequest struct {
	WardID     uint   `json:"wardId" validate:"required"`
	RoomID     uint   `json:"roomId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	PatNumber  string `json:"patNumber" validate:"required"`
	InfoNumber string `json:"infoNumber" validate:"required"`
	Birth      string `json:"birth" validate:"required"`
	InDate     string `json:"inDate" validate:"required"`
}

type updatePatientRequest struct {
	PatientID uint   `json:"patientId" validate:"required"`
	WardID    uint   `json:"wardId" validate:"required"`
	RoomID    uint   `json:"roomId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	PatNumber string `json:"patNumber" validate:"required"`
	Birth     string `json:"birth" validate:"required"`
	InDate    string `json:"inDate" validate:"required"`
}

type deletePatientRequest struct {
	PatientID uint `json:"patientId" validate:"required"`
}

// Register handles the hospital account registration request.
func (h *HospitalHandler) Register(c echo.Context) error {
	var req registerHospitalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterHospitalInput{
		LoginID:     req.LoginID,
		Password:    req.Password,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Hospital, "Hospital registered successfully")
}

// IDCheck reports whether a login identifier is still available.
func (h *HospitalHandler) IDCheck(c echo.Context) error {
	loginID := c.QueryParam("loginId")
	if loginID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "loginId query parameter is required")
	}

	output, err := h.uc.IDCheck(c.Request().Context(), loginID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// CreateWard handles ward creation.
func (h *HospitalHandler) CreateWard(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req createWardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ward input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CreateWard(c.Request().Context(), hospitalID, &usecase.CreateWardInput{Name: req.Name}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Ward created")
}

// UpdateWard handles ward renaming.
func (h *HospitalHandler) UpdateWard(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req updateWardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ward input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateWard(c.Request().Context(), hospitalID, &usecase.UpdateWardInput{
		WardID: req.WardID,
		Name:   req.Name,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ward updated")
}

// DeleteWard handles ward removal.
func (h *HospitalHandler) DeleteWard(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req deleteWardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ward input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteWard(c.Request().Context(), hospitalID, req.WardID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ward deleted")
}

// GetWardList lists the caller's wards.
func (h *HospitalHandler) GetWardList(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	items, err := h.uc.GetWardList(c.Request().Context(), hospitalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// CreateRoom handles room creation.
func (h *HospitalHandler) CreateRoom(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CreateRoom(c.Request().Context(), hospitalID, &usecase.CreateRoomInput{
		WardID:       req.WardID,
		RoomNumber:   req.RoomNumber,
		LimitPatient: req.LimitPatient,
		ICUCheck:     req.ICUCheck,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Room created")
}

// UpdateRoom handles room modification.
func (h *HospitalHandler) UpdateRoom(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateRoom(c.Request().Context(), hospitalID, &usecase.UpdateRoomInput{
		RoomID:       req.RoomID,
		RoomNumber:   req.RoomNumber,
		LimitPatient: req.LimitPatient,
		ICUCheck:     req.ICUCheck,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room updated")
}

// DeleteRoom handles room removal.
func (h *HospitalHandler) DeleteRoom(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req deleteRoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRoom(c.Request().Context(), hospitalID, req.RoomID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Room deleted")
}

// GetRoomList lists the rooms of one ward.
func (h *HospitalHandler) GetRoomList(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	wardID, err := strconv.ParseUint(c.QueryParam("wardId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "wardId query parameter is required")
	}

	items, err := h.uc.GetRoomList(c.Request().Context(), hospitalID, uint(wardID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// CreatePatient handles patient admission.
func (h *HospitalHandler) CreatePatient(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req createPatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birth, err := time.Parse(requestDateLayout, req.Birth)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "birth must be formatted YYYY-MM-DD")
	}
	inDate, err := time.Parse(requestDateLayout, req.InDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "inDate must be formatted YYYY-MM-DD")
	}

	if err := h.uc.CreatePatient(c.Request().Context(), hospitalID, &usecase.CreatePatientInput{
		WardID:     req.WardID,
		RoomID:     req.RoomID,
		Name:       req.Name,
		PatNumber:  req.PatNumber,
		InfoNumber: req.InfoNumber,
		Birth:      birth,
		InDate:     inDate,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Patient admitted")
}

// UpdatePatient handles patient record modification.
func (h *HospitalHandler) UpdatePatient(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req updatePatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birth, err := time.Parse(requestDateLayout, req.Birth)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "birth must be formatted YYYY-MM-DD")
	}
	inDate, err := time.Parse(requestDateLayout, req.InDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "inDate must be formatted YYYY-MM-DD")
	}

	if err := h.uc.UpdatePatient(c.Request().Context(), hospitalID, &usecase.UpdatePatientInput{
		PatientID: req.PatientID,
		WardID:    req.WardID,
		RoomID:    req.RoomID,
		Name:      req.Name,
		PatNumber: req.PatNumber,
		Birth:     birth,
		InDate:    inDate,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient updated")
}

// DeletePatient handles patient discharge.
func (h *HospitalHandler) DeletePatient(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	var req deletePatientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeletePatient(c.Request().Context(), hospitalID, req.PatientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient discharged")
}

// GetPatients lists the caller's patients.
func (h *HospitalHandler) GetPatients(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	items, err := h.uc.GetPatients(c.Request().Context(), hospitalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// GetMainData serves the dashboard payload.
func (h *HospitalHandler) GetMainData(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing hospital identity")
	}

	output, err := h.uc.GetMainData(c.Request().Context(), hospitalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
