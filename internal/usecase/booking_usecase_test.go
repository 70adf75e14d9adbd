package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type stubVisitRepo struct {
	visit *entity.Visit
}

func (r *stubVisitRepo) CreateBatch(db *gorm.DB, visits []entity.Visit) error { return nil }
func (r *stubVisitRepo) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	return r.visit, nil
}
func (r *stubVisitRepo) FindOpenByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Visit, error) {
	return nil, nil
}
func (r *stubVisitRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }
func (r *stubVisitRepo) DeleteByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error) {
	return 0, nil
}
func (r *stubVisitRepo) DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	return 0, nil
}

type stubBookingRepo struct {
	booking *entity.Booking
	created *entity.Booking
	deleted []uuid.UUID
}

func (r *stubBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	booking.ID = uuid.New()
	r.created = booking
	return nil
}
func (r *stubBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return r.booking, nil
}
func (r *stubBookingRepo) FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) FindByVisitID(db *gorm.DB, visitID int) (*entity.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.deleted = append(r.deleted, id)
	return 1, nil
}

type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) LogAction(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	s.actions = append(s.actions, action)
	return nil
}

func TestCreateBookingClaimsOpenVisit(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	visits := &stubVisitRepo{visit: &entity.Visit{ID: 7, DoctorID: uuid.New()}}
	bookings := &stubBookingRepo{}
	audit := &stubAuditService{}
	clientID := uuid.New()

	uc := NewBookingUsecase(db, newTestLogger(), bookings, visits, audit)
	resp, err := uc.CreateBooking(context.Background(), clientID, &dto.CreateBookingRequest{
		VisitID: 7,
		Service: "Consultation",
	})
	require.NoError(t, err)

	require.NotNil(t, bookings.created)
	assert.Equal(t, 7, bookings.created.VisitID)
	assert.Equal(t, clientID, bookings.created.ClientID)

	require.NotNil(t, resp)
	assert.Equal(t, clientID, resp.ClientID)
	assert.Equal(t, "Consultation", resp.Service)
	require.NotNil(t, resp.Visit)
	assert.Equal(t, 7, resp.Visit.ID)

	assert.Equal(t, []string{entity.AuditActionBookingCreate}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingVisitAlreadyBooked(t *testing.T) {
	db, _ := newMockDB(t)

	taken := &entity.Visit{ID: 7, Booking: &entity.Booking{ID: uuid.New()}}
	visits := &stubVisitRepo{visit: taken}
	bookings := &stubBookingRepo{}

	uc := NewBookingUsecase(db, newTestLogger(), bookings, visits, &stubAuditService{})
	_, err := uc.CreateBooking(context.Background(), uuid.New(), &dto.CreateBookingRequest{VisitID: 7})

	assert.ErrorIs(t, err, ErrVisitAlreadyBooked)
	assert.Nil(t, bookings.created)
}

func TestCreateBookingVisitNotFound(t *testing.T) {
	db, _ := newMockDB(t)

	uc := NewBookingUsecase(db, newTestLogger(), &stubBookingRepo{}, &stubVisitRepo{}, &stubAuditService{})
	_, err := uc.CreateBooking(context.Background(), uuid.New(), &dto.CreateBookingRequest{VisitID: 404})

	assert.ErrorIs(t, err, ErrVisitNotFound)
}

func TestDeleteBookingRejectsForeignClient(t *testing.T) {
	db, _ := newMockDB(t)

	owner := uuid.New()
	bookings := &stubBookingRepo{booking: &entity.Booking{ID: uuid.New(), ClientID: owner, VisitID: 7}}

	uc := NewBookingUsecase(db, newTestLogger(), bookings, &stubVisitRepo{}, &stubAuditService{})
	err := uc.DeleteBooking(context.Background(), uuid.New(), bookings.booking.ID)

	assert.ErrorIs(t, err, ErrBookingNotOwned)
	assert.Empty(t, bookings.deleted)
}

func TestDeleteBookingByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	owner := uuid.New()
	bookingID := uuid.New()
	bookings := &stubBookingRepo{booking: &entity.Booking{ID: bookingID, ClientID: owner, VisitID: 7}}
	audit := &stubAuditService{}

	uc := NewBookingUsecase(db, newTestLogger(), bookings, &stubVisitRepo{}, audit)
	err := uc.DeleteBooking(context.Background(), owner, bookingID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{bookingID}, bookings.deleted)
	assert.Equal(t, []string{entity.AuditActionBookingDelete}, audit.actions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
