package service

import (
	"testing"
	"time"

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

type recordingScheduleRepo struct {
	cutoff  time.Time
	deleted int64
}

func (r *recordingScheduleRepo) CreateBatch(db *gorm.DB, schedules []entity.Schedule) error {
	return nil
}
func (r *recordingScheduleRepo) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	return nil, nil
}
func (r *recordingScheduleRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error) {
	return nil, nil
}
func (r *recordingScheduleRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }
func (r *recordingScheduleRepo) DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	return r.deleted, nil
}

type recordingVisitRepo struct {
	cutoff time.Time
}

func (r *recordingVisitRepo) CreateBatch(db *gorm.DB, visits []entity.Visit) error { return nil }
func (r *recordingVisitRepo) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	return nil, nil
}
func (r *recordingVisitRepo) FindOpenByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Visit, error) {
	return nil, nil
}
func (r *recordingVisitRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }
func (r *recordingVisitRepo) DeleteByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error) {
	return 0, nil
}
func (r *recordingVisitRepo) DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	return 0, nil
}

func TestSweepUsesFiveDayCutoff(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	schedules := &recordingScheduleRepo{deleted: 1}
	visits := &recordingVisitRepo{}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	sweeper := NewRetentionSweeper(db, log, schedules, visits, time.Hour)

	// With today on day 10 the cutoff lands on day 5, so a day-3 schedule falls and day 6 survives.
	today := time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)
	deleted, err := sweeper.Sweep(today)
	require.NoError(t, err)

	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, schedules.cutoff)
	assert.Equal(t, want, visits.cutoff)
	assert.Equal(t, int64(1), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepNothingExpiredIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	schedules := &recordingScheduleRepo{}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	sweeper := NewRetentionSweeper(db, log, schedules, &recordingVisitRepo{}, time.Hour)

	deleted, err := sweeper.Sweep(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
