package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/validator"
	"wardlink/internal/domain/entity"
	"wardlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context with the request validator wired
// the same way the server does.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, hospitalID uint) {
	deliverycontext.SetHospitalIdentity(c, hospitalID, "test-hospital")
}

// --- fake usecases ---

type fakeAuthUsecase struct {
	verifyFn  func(ctx context.Context, loginID, password string) (*entity.Hospital, error)
	loginFn   func(ctx context.Context, hospital *entity.Hospital) (*usecase.LoginOutput, error)
	refreshFn func(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPair, error)
}

func (f *fakeAuthUsecase) VerifyCredentials(ctx context.Context, loginID, password string) (*entity.Hospital, error) {
	return f.verifyFn(ctx, loginID, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, hospital *entity.Hospital) (*usecase.LoginOutput, error) {
	return f.loginFn(ctx, hospital)
}

func (f *fakeAuthUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPair, error) {
	return f.refreshFn(ctx, input)
}

type fakeHospitalUsecase struct {
	registerFn      func(ctx context.Context, input *usecase.RegisterHospitalInput) (*usecase.RegisterHospitalOutput, error)
	idCheckFn       func(ctx context.Context, loginID string) (*usecase.IDCheckOutput, error)
	createWardFn    func(ctx context.Context, hospitalID uint, input *usecase.CreateWardInput) error
	createPatientFn func(ctx context.Context, hospitalID uint, input *usecase.CreatePatientInput) error
	getRoomListFn   func(ctx context.Context, hospitalID, wardID uint) ([]*usecase.RoomListItem, error)
}

func (f *fakeHospitalUsecase) Register(ctx context.Context, input *usecase.RegisterHospitalInput) (*usecase.RegisterHospitalOutput, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeHospitalUsecase) IDCheck(ctx context.Context, loginID string) (*usecase.IDCheckOutput, error) {
	return f.idCheckFn(ctx, loginID)
}

func (f *fakeHospitalUsecase) CreateWard(ctx context.Context, hospitalID uint, input *usecase.CreateWardInput) error {
	return f.createWardFn(ctx, hospitalID, input)
}

func (f *fakeHospitalUsecase) UpdateWard(context.Context, uint, *usecase.UpdateWardInput) error {
	return nil
}

func (f *fakeHospitalUsecase) DeleteWard(context.Context, uint, uint) error { return nil }

func (f *fakeHospitalUsecase) GetWardList(context.Context, uint) ([]*usecase.WardListItem, error) {
	return nil, nil
}

func (f *fakeHospitalUsecase) CreateRoom(context.Context, uint, *usecase.CreateRoomInput) error {
	return nil
}

func (f *fakeHospitalUsecase) UpdateRoom(context.Context, uint, *usecase.UpdateRoomInput) error {
	return nil
}

func (f *fakeHospitalUsecase) DeleteRoom(context.Context, uint, uint) error { return nil }

func (f *fakeHospitalUsecase) GetRoomList(ctx context.Context, hospitalID, wardID uint) ([]*usecase.RoomListItem, error) {
	return f.getRoomListFn(ctx, hospitalID, wardID)
}

func (f *fakeHospitalUsecase) CreatePatient(ctx context.Context, hospitalID uint, input *usecase.CreatePatientInput) error {
	return f.createPatientFn(ctx, hospitalID, input)
}

func (f *fakeHospitalUsecase) UpdatePatient(context.Context, uint, *usecase.UpdatePatientInput) error {
	return nil
}

func (f *fakeHospitalUsecase) DeletePatient(context.Context, uint, uint) error { return nil }

func (f *fakeHospitalUsecase) GetPatients(context.Context, uint) ([]*usecase.PatientListItem, error) {
	return nil, nil
}

func (f *fakeHospitalUsecase) GetMainData(context.Context, uint) (*usecase.MainDataOutput, error) {
	return nil, nil
}

type fakeReservationUsecase struct {
	changeStateFn func(ctx context.Context, hospitalID uint, input *usecase.ChangeStateInput) (*usecase.ChangeStateOutput, error)
	listFn        func(ctx context.Context, hospitalID uint, date time.Time) ([]*usecase.ReservationItem, error)
}

func (f *fakeReservationUsecase) ChangeState(ctx context.Context, hospitalID uint, input *usecase.ChangeStateInput) (*usecase.ChangeStateOutput, error) {
	return f.changeStateFn(ctx, hospitalID, input)
}

func (f *fakeReservationUsecase) GetAllReservations(context.Context, uint) (*usecase.GroupedReservations, error) {
	return &usecase.GroupedReservations{}, nil
}

func (f *fakeReservationUsecase) GetReservationList(ctx context.Context, hospitalID uint, date time.Time) ([]*usecase.ReservationItem, error) {
	return f.listFn(ctx, hospitalID, date)
}

type fakePostUsecase struct {
	detailFn func(ctx context.Context, hospitalID, postID uint) (*usecase.PostDetailOutput, error)
}

func (f *fakePostUsecase) GetPostDetail(ctx context.Context, hospitalID, postID uint) (*usecase.PostDetailOutput, error) {
	return f.detailFn(ctx, hospitalID, postID)
}
