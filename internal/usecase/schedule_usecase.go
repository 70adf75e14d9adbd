package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/scheduling"
	"hospital-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound    = errors.New("schedule not found")
	ErrScheduleNotOwned    = errors.New("schedule does not belong to you")
	ErrInvalidScheduleDate = errors.New("invalid schedule date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM:SS")
	ErrInvalidTimeRange    = errors.New("time_from must be earlier than time_to")
	ErrInvalidPeriodicity  = errors.New("invalid periodicity")
	ErrWeekendStart        = errors.New("schedule cannot start on a weekend")
	ErrVisitDurationNotSet = errors.New("doctor visit duration must be set before generating schedules")
	ErrScheduleConflict    = errors.New("doctor already has a schedule on one of the generated dates")
	ErrVisitConflict       = errors.New("doctor already has a visit at one of the generated times")
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleListResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	DeleteSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	scheduleRepo repository.ScheduleRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService

	// One expansion at a time per doctor: concurrent expansions for the
	// same doctor would race each other into the (doctor,date) and
	// (doctor,date,time) unique constraints.
	doctorMu sync.Map // map[uuid.UUID]*sync.Mutex
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.ScheduleRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		scheduleRepo: scheduleRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
	}
}

// buildExpansion turns one schedule declaration into the full set of
// schedule and visit rows it expands into. Pure assembly, no writes.
func buildExpansion(
	doctorID uuid.UUID,
	visitDuration int,
	date time.Time,
	timeFrom, timeTo scheduling.TimeOfDay,
	periodicity scheduling.Periodicity,
) ([]entity.Schedule, []entity.Visit, error) {
	if visitDuration <= 0 {
		return nil, nil, ErrVisitDurationNotSet
	}
	if !timeFrom.Before(timeTo) {
		return nil, nil, ErrInvalidTimeRange
	}

	dates, err := scheduling.Dates(periodicity, date)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrWeekendStart):
			return nil, nil, ErrWeekendStart
		case errors.Is(err, scheduling.ErrInvalidPeriodicity):
			return nil, nil, ErrInvalidPeriodicity
		}
		return nil, nil, err
	}

	schedules := make([]entity.Schedule, 0, len(dates))
	var visits []entity.Visit
	for _, d := range dates {
		schedules = append(schedules, entity.Schedule{
			DoctorID:    doctorID,
			Date:        d,
			TimeFrom:    timeFrom,
			TimeTo:      timeTo,
			Periodicity: periodicity,
		})

		slots, err := scheduling.Slots(d, timeFrom, timeTo, visitDuration)
		if err != nil {
			return nil, nil, ErrInvalidTimeRange
		}
		for _, slot := range slots {
			visits = append(visits, entity.Visit{
				DoctorID: doctorID,
				Date:     slot.Date,
				Time:     slot.Time,
			})
		}
	}
	return schedules, visits, nil
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleListResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidScheduleDate
	}
	timeFrom, err := scheduling.ParseTimeOfDay(req.TimeFrom)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	timeTo, err := scheduling.ParseTimeOfDay(req.TimeTo)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	periodicity := scheduling.Periodicity(req.Periodicity)
	if !periodicity.Valid() {
		return nil, ErrInvalidPeriodicity
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.VisitDuration == nil {
		return nil, ErrVisitDurationNotSet
	}

	schedules, visits, err := buildExpansion(doctorID, *doctor.VisitDuration, date, timeFrom, timeTo, periodicity)
	if err != nil {
		return nil, err
	}

	mu := u.lockDoctor(doctorID)
	defer mu.Unlock()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.scheduleRepo.CreateBatch(tx, schedules); err != nil {
		if isDuplicateKeyError(err, "idx_schedules_doctor_date") {
			return nil, ErrScheduleConflict
		}
		u.log.Warnf("Failed to create schedules: %+v", err)
		return nil, err
	}

	if err := u.visitRepo.CreateBatch(tx, visits); err != nil {
		if isDuplicateKeyError(err, "idx_visits_doctor_date_time") {
			return nil, ErrVisitConflict
		}
		u.log.Warnf("Failed to create visits: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogAction(tx, &doctorID, entity.AuditActionScheduleCreate, entity.JSON{
		"date":        req.Date,
		"periodicity": string(periodicity),
		"schedules":   len(schedules),
		"visits":      len(visits),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, s := range schedules {
		responses[i] = scheduleToResponse(&s)
	}
	return &dto.ScheduleListResponse{Schedules: responses, Total: len(responses)}, nil
}

func (u *scheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, s := range schedules {
		responses[i] = scheduleToResponse(&s)
	}
	return &dto.ScheduleListResponse{Schedules: responses, Total: len(responses)}, nil
}

// DeleteSchedule removes the schedule and, in the same transaction,
// every visit it generated for that doctor and date. Bookings attached
// to those visits go away through the visit cascade.
func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int) error {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}
	if schedule.DoctorID != doctorID {
		return ErrScheduleNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.visitRepo.DeleteByDoctorAndDate(tx, schedule.DoctorID, schedule.Date); err != nil {
		u.log.Warnf("Failed to delete visits for schedule %d: %+v", scheduleID, err)
		return err
	}

	if _, err := u.scheduleRepo.Delete(tx, scheduleID); err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", scheduleID, err)
		return err
	}

	_ = u.auditService.LogAction(tx, &doctorID, entity.AuditActionScheduleDelete, entity.JSON{
		"schedule_id": scheduleID,
		"date":        schedule.Date.Format("2006-01-02"),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *scheduleUsecase) lockDoctor(doctorID uuid.UUID) *sync.Mutex {
	v, _ := u.doctorMu.LoadOrStore(doctorID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

func scheduleToResponse(s *entity.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:          s.ID,
		DoctorID:    s.DoctorID,
		Date:        s.Date.Format("2006-01-02"),
		TimeFrom:    s.TimeFrom.String(),
		TimeTo:      s.TimeTo.String(),
		Periodicity: string(s.Periodicity),
	}
}
