package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"wardlink/internal/domain/entity"
	"wardlink/internal/domain/repository"
	"wardlink/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues unique, predictable tokens so rotation tests
// can follow which refresh token is current.
type fakeTokenService struct {
	counter int
}

func (f *fakeTokenService) GenerateTokenPair(hospitalID uint, loginID string) (string, string, error) {
	f.counter++

	access := fmt.Sprintf("access-%d-%d", hospitalID, f.counter)
	refresh := fmt.Sprintf("refresh-%d-%d", hospitalID, f.counter)

	return access, refresh, nil
}

func (f *fakeTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return nil, fmt.Errorf("not used in these tests")
}

func (f *fakeTokenService) ValidateRefreshToken(string) (*service.Claims, error) {
	return nil, fmt.Errorf("not used in these tests")
}

func (f *fakeTokenService) HashToken(token string) string {
	return "digest:" + token
}

// --- in-memory repositories ---

type stubHospitalRepo struct {
	seq       uint
	hospitals map[uint]*entity.Hospital
}

func newStubHospitalRepo() *stubHospitalRepo {
	return &stubHospitalRepo{hospitals: make(map[uint]*entity.Hospital)}
}

func (r *stubHospitalRepo) put(hospital *entity.Hospital) *entity.Hospital {
	if hospital.ID == 0 {
		r.seq++
		hospital.ID = r.seq
	}
	clone := *hospital
	r.hospitals[hospital.ID] = &clone

	return hospital
}

func (r *stubHospitalRepo) FindByID(_ context.Context, id uint) (*entity.Hospital, error) {
	stored, ok := r.hospitals[id]
	if !ok {
		return nil, repository.ErrHospitalNotFound
	}
	clone := *stored

	return &clone, nil
}

func (r *stubHospitalRepo) FindByLoginID(_ context.Context, loginID string) (*entity.Hospital, error) {
	for _, stored := range r.hospitals {
		if stored.LoginID == loginID {
			clone := *stored

			return &clone, nil
		}
	}

	return nil, repository.ErrHospitalNotFound
}

func (r *stubHospitalRepo) Create(_ context.Context, hospital *entity.Hospital) error {
	r.put(hospital)

	return nil
}

func (r *stubHospitalRepo) UpdateRefreshHash(_ context.Context, id uint, hash string) error {
	stored, ok := r.hospitals[id]
	if !ok {
		return repository.ErrHospitalNotFound
	}
	stored.CurrentRefreshHash = hash

	return nil
}

func (r *stubHospitalRepo) RotateRefreshHash(_ context.Context, id uint, oldHash, newHash string) error {
	stored, ok := r.hospitals[id]
	if !ok || stored.CurrentRefreshHash != oldHash {
		return repository.ErrRefreshHashStale
	}
	stored.CurrentRefreshHash = newHash

	return nil
}

type stubWardRepo struct {
	seq   uint
	wards map[uint]*entity.Ward
}

func newStubWardRepo() *stubWardRepo {
	return &stubWardRepo{wards: make(map[uint]*entity.Ward)}
}

func (r *stubWardRepo) put(ward *entity.Ward) *entity.Ward {
	if ward.ID == 0 {
		r.seq++
		ward.ID = r.seq
	}
	clone := *ward
	r.wards[ward.ID] = &clone

	return ward
}

func (r *stubWardRepo) Create(_ context.Context, ward *entity.Ward) error {
	r.put(ward)

	return nil
}

func (r *stubWardRepo) FindByID(_ context.Context, hospitalID, id uint) (*entity.Ward, error) {
	stored, ok := r.wards[id]
	if !ok || stored.HospitalID != hospitalID {
		return nil, repository.ErrWardNotFound
	}
	clone := *stored

	return &clone, nil
}

func (r *stubWardRepo) FindByName(_ context.Context, hospitalID uint, name string) (*entity.Ward, error) {
	for _, stored := range r.wards {
		if stored.HospitalID == hospitalID && stored.Name == name {
			clone := *stored

			return &clone, nil
		}
	}

	return nil, repository.ErrWardNotFound
}

func (r *stubWardRepo) ListByHospital(_ context.Context, hospitalID uint) ([]*entity.Ward, error) {
	var wards []*entity.Ward
	for _, stored := range r.wards {
		if stored.HospitalID == hospitalID {
			clone := *stored
			wards = append(wards, &clone)
		}
	}

	return wards, nil
}

func (r *stubWardRepo) UpdateName(_ context.Context, hospitalID, id uint, name string) error {
	stored, ok := r.wards[id]
	if !ok || stored.HospitalID != hospitalID {
		return repository.ErrWardNotFound
	}
	stored.Name = name

	return nil
}

func (r *stubWardRepo) Delete(_ context.Context, hospitalID, id uint) error {
	stored, ok := r.wards[id]
	if !ok || stored.HospitalID != hospitalID {
		return repository.ErrWardNotFound
	}
	delete(r.wards, id)

	return nil
}

type stubRoomRepo struct {
	seq   uint
	rooms map[uint]*entity.Room
	wards *stubWardRepo
}

func newStubRoomRepo(wards *stubWardRepo) *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[uint]*entity.Room), wards: wards}
}

func (r *stubRoomRepo) put(room *entity.Room) *entity.Room {
	if room.ID == 0 {
		r.seq++
		room.ID = r.seq
	}
	clone := *room
	clone.Ward = nil
	r.rooms[room.ID] = &clone

	return room
}

func (r *stubRoomRepo) clone(stored *entity.Room) *entity.Room {
	room := *stored
	if ward, ok := r.wards.wards[room.WardID]; ok {
		wardClone := *ward
		room.Ward = &wardClone
	}

	return &room
}

func (r *stubRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.put(room)

	return nil
}

func (r *stubRoomRepo) FindByID(_ context.Context, id uint) (*entity.Room, error) {
	stored, ok := r.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}

	return r.clone(stored), nil
}

func (r *stubRoomRepo) FindByNumber(_ context.Context, wardID uint, roomNumber int) (*entity.Room, error) {
	for _, stored := range r.rooms {
		if stored.WardID == wardID && stored.RoomNumber == roomNumber {
			return r.clone(stored), nil
		}
	}

	return nil, repository.ErrRoomNotFound
}

func (r *stubRoomRepo) ListByWard(_ context.Context, wardID uint) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for _, stored := range r.rooms {
		if stored.WardID == wardID {
			rooms = append(rooms, r.clone(stored))
		}
	}

	return rooms, nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *entity.Room) error {
	stored, ok := r.rooms[room.ID]
	if !ok {
		return repository.ErrRoomNotFound
	}
	stored.RoomNumber = room.RoomNumber
	stored.LimitPatient = room.LimitPatient
	stored.CurrentPatient = room.CurrentPatient
	stored.ICUCheck = room.ICUCheck

	return nil
}

func (r *stubRoomRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rooms[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(r.rooms, id)

	return nil
}

type stubPatientRepo struct {
	seq      uint
	patients map[uint]*entity.Patient
	wards    *stubWardRepo
	rooms    *stubRoomRepo
}

func newStubPatientRepo(wards *stubWardRepo, rooms *stubRoomRepo) *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[uint]*entity.Patient), wards: wards, rooms: rooms}
}

func (r *stubPatientRepo) put(patient *entity.Patient) *entity.Patient {
	if patient.ID == 0 {
		r.seq++
		patient.ID = r.seq
	}
	clone := *patient
	clone.Ward = nil
	clone.Room = nil
	r.patients[patient.ID] = &clone

	return patient
}

func (r *stubPatientRepo) clone(stored *entity.Patient) *entity.Patient {
	patient := *stored
	if ward, ok := r.wards.wards[patient.WardID]; ok {
		wardClone := *ward
		patient.Ward = &wardClone
	}
	if room, ok := r.rooms.rooms[patient.RoomID]; ok {
		roomClone := *room
		patient.Room = &roomClone
	}

	return &patient
}

func (r *stubPatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	r.put(patient)

	return nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, hospitalID, id uint) (*entity.Patient, error) {
	stored, ok := r.patients[id]
	if !ok || stored.HospitalID != hospitalID {
		return nil, repository.ErrPatientNotFound
	}

	return r.clone(stored), nil
}

func (r *stubPatientRepo) FindByInfoNumber(_ context.Context, infoNumber string) (*entity.Patient, error) {
	for _, stored := range r.patients {
		if stored.InfoNumber == infoNumber {
			return r.clone(stored), nil
		}
	}

	return nil, repository.ErrPatientNotFound
}

func (r *stubPatientRepo) ListByHospital(_ context.Context, hospitalID uint) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	for _, stored := range r.patients {
		if stored.HospitalID == hospitalID {
			patients = append(patients, r.clone(stored))
		}
	}

	return patients, nil
}

func (r *stubPatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	stored, ok := r.patients[patient.ID]
	if !ok || stored.HospitalID != patient.HospitalID {
		return repository.ErrPatientNotFound
	}
	clone := *patient
	clone.Ward = nil
	clone.Room = nil
	r.patients[patient.ID] = &clone

	return nil
}

func (r *stubPatientRepo) Delete(_ context.Context, hospitalID, id uint) error {
	stored, ok := r.patients[id]
	if !ok || stored.HospitalID != hospitalID {
		return repository.ErrPatientNotFound
	}
	delete(r.patients, id)

	return nil
}

type stubReservationRepo struct {
	seq          uint
	reservations map[uint]*entity.Reservation
	patients     *stubPatientRepo

	// decideErr, when set, is returned by Decide to simulate losing a
	// concurrent decision race after a successful pending read.
	decideErr error
}

func newStubReservationRepo(patients *stubPatientRepo) *stubReservationRepo {
	return &stubReservationRepo{reservations: make(map[uint]*entity.Reservation), patients: patients}
}

func (r *stubReservationRepo) put(reservation *entity.Reservation) *entity.Reservation {
	if reservation.ID == 0 {
		r.seq++
		reservation.ID = r.seq
	}
	clone := *reservation
	clone.Patient = nil
	r.reservations[reservation.ID] = &clone

	return reservation
}

func (r *stubReservationRepo) clone(stored *entity.Reservation) *entity.Reservation {
	reservation := *stored
	if patient, ok := r.patients.patients[reservation.PatientID]; ok {
		reservation.Patient = r.patients.clone(patient)
	}

	return &reservation
}

func (r *stubReservationRepo) FindByID(_ context.Context, hospitalID, id uint) (*entity.Reservation, error) {
	stored, ok := r.reservations[id]
	if !ok || stored.HospitalID != hospitalID {
		return nil, repository.ErrReservationNotFound
	}

	return r.clone(stored), nil
}

func (r *stubReservationRepo) Decide(_ context.Context, hospitalID, id uint, state entity.ApprovalState) error {
	if r.decideErr != nil {
		return r.decideErr
	}

	stored, ok := r.reservations[id]
	if !ok || stored.HospitalID != hospitalID || stored.ApproveCheck != entity.StatePending {
		return repository.ErrReservationNotPending
	}
	stored.ApproveCheck = state

	return nil
}

func (r *stubReservationRepo) ListByHospital(_ context.Context, hospitalID uint) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for _, stored := range r.reservations {
		if stored.HospitalID == hospitalID {
			reservations = append(reservations, r.clone(stored))
		}
	}

	return reservations, nil
}

func (r *stubReservationRepo) ListByHospitalAndDate(_ context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for _, stored := range r.reservations {
		if stored.HospitalID == hospitalID && sameDay(stored.ReservationDate, date) {
			reservations = append(reservations, r.clone(stored))
		}
	}

	return reservations, nil
}

func (r *stubReservationRepo) ListApprovedVisits(_ context.Context, hospitalID uint, date time.Time) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for _, stored := range r.reservations {
		if stored.HospitalID == hospitalID && !stored.FaceToFace &&
			stored.ApproveCheck == entity.StateApproved && sameDay(stored.ReservationDate, date) {
			reservations = append(reservations, r.clone(stored))
		}
	}

	return reservations, nil
}

type stubPostRepo struct {
	seq      uint
	posts    map[uint]*entity.Post
	patients *stubPatientRepo
}

func newStubPostRepo(patients *stubPatientRepo) *stubPostRepo {
	return &stubPostRepo{posts: make(map[uint]*entity.Post), patients: patients}
}

func (r *stubPostRepo) put(post *entity.Post) *entity.Post {
	if post.ID == 0 {
		r.seq++
		post.ID = r.seq
	}
	clone := *post
	clone.Patient = nil
	r.posts[post.ID] = &clone

	return post
}

func (r *stubPostRepo) clone(stored *entity.Post) *entity.Post {
	post := *stored
	if patient, ok := r.patients.patients[post.PatientID]; ok {
		post.Patient = r.patients.clone(patient)
	}

	return &post
}

func (r *stubPostRepo) FindByID(_ context.Context, hospitalID, id uint) (*entity.Post, error) {
	stored, ok := r.posts[id]
	if !ok || stored.HospitalID != hospitalID {
		return nil, repository.ErrPostNotFound
	}

	return r.clone(stored), nil
}

func (r *stubPostRepo) ListByHospitalAndDate(_ context.Context, hospitalID uint, date time.Time) ([]*entity.Post, error) {
	var posts []*entity.Post
	for _, stored := range r.posts {
		if stored.HospitalID == hospitalID && sameDay(stored.CreatedAt, date) {
			posts = append(posts, r.clone(stored))
		}
	}

	return posts, nil
}

// --- transaction plumbing ---

type stubRepoFactory struct {
	hospitals    *stubHospitalRepo
	wards        *stubWardRepo
	rooms        *stubRoomRepo
	patients     *stubPatientRepo
	reservations *stubReservationRepo
	posts        *stubPostRepo
}

func (f *stubRepoFactory) HospitalRepo() repository.HospitalRepository       { return f.hospitals }
func (f *stubRepoFactory) WardRepo() repository.WardRepository               { return f.wards }
func (f *stubRepoFactory) RoomRepo() repository.RoomRepository               { return f.rooms }
func (f *stubRepoFactory) PatientRepo() repository.PatientRepository         { return f.patients }
func (f *stubRepoFactory) ReservationRepo() repository.ReservationRepository { return f.reservations }
func (f *stubRepoFactory) PostRepo() repository.PostRepository               { return f.posts }

// stubTxManager runs the function against the shared stubs. Rollback is
// not modeled, so failure-path tests assert errors rather than state.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// testEnv bundles the stubs and wired services used across these tests.
type testEnv struct {
	hospitals    *stubHospitalRepo
	wards        *stubWardRepo
	rooms        *stubRoomRepo
	patients     *stubPatientRepo
	reservations *stubReservationRepo
	posts        *stubPostRepo
	tokens       *fakeTokenService
}

func newTestEnv() *testEnv {
	hospitals := newStubHospitalRepo()
	wards := newStubWardRepo()
	rooms := newStubRoomRepo(wards)
	patients := newStubPatientRepo(wards, rooms)
	reservations := newStubReservationRepo(patients)
	posts := newStubPostRepo(patients)

	return &testEnv{
		hospitals:    hospitals,
		wards:        wards,
		rooms:        rooms,
		patients:     patients,
		reservations: reservations,
		posts:        posts,
		tokens:       &fakeTokenService{},
	}
}

func (env *testEnv) factory() *stubRepoFactory {
	return &stubRepoFactory{
		hospitals:    env.hospitals,
		wards:        env.wards,
		rooms:        env.rooms,
		patients:     env.patients,
		reservations: env.reservations,
		posts:        env.posts,
	}
}

func (env *testEnv) authService() *authService {
	return &authService{
		hospitalRepo: env.hospitals,
		hasher:       fakeHasher{},
		tokenService: env.tokens,
		logger:       newDiscardLogger(),
	}
}

func (env *testEnv) hospitalService() *hospitalService {
	return &hospitalService{
		txManager:       &stubTxManager{factory: env.factory()},
		hospitalRepo:    env.hospitals,
		wardRepo:        env.wards,
		roomRepo:        env.rooms,
		patientRepo:     env.patients,
		reservationRepo: env.reservations,
		postRepo:        env.posts,
		hasher:          fakeHasher{},
		logger:          newDiscardLogger(),
	}
}

func (env *testEnv) reservationService() *reservationService {
	return &reservationService{
		reservationRepo: env.reservations,
		logger:          newDiscardLogger(),
	}
}

func (env *testEnv) postService() *postService {
	return &postService{
		postRepo: env.posts,
		logger:   newDiscardLogger(),
	}
}
