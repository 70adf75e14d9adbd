package usecase

import (
	"context"
	"errors"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVisitNotFound = errors.New("visit not found")
	ErrVisitNotOwned = errors.New("visit does not belong to you")
)

// openVisitsLimit caps how many free slots a doctor's public page shows.
const openVisitsLimit = 25

type VisitUsecase interface {
	ListOpenVisits(ctx context.Context, doctorID uuid.UUID) (*dto.VisitListResponse, error)
	GetVisit(ctx context.Context, visitID int) (*dto.VisitResponse, error)
	DeleteVisit(ctx context.Context, doctorID uuid.UUID, visitID int) error
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
	}
}

func (u *visitUsecase) ListOpenVisits(ctx context.Context, doctorID uuid.UUID) (*dto.VisitListResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	visits, err := u.visitRepo.FindOpenByDoctorID(u.db.WithContext(ctx), doctorID, openVisitsLimit)
	if err != nil {
		u.log.Warnf("Failed to list open visits: %+v", err)
		return nil, err
	}

	responses := converter.VisitsToResponses(visits)
	return &dto.VisitListResponse{Visits: responses, Total: len(responses)}, nil
}

func (u *visitUsecase) GetVisit(ctx context.Context, visitID int) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.VisitToResponse(visit), nil
}

// DeleteVisit removes one slot. Any booking on it goes away through the
// visit cascade.
func (u *visitUsecase) DeleteVisit(ctx context.Context, doctorID uuid.UUID, visitID int) error {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}
	if visit.DoctorID != doctorID {
		return ErrVisitNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.visitRepo.Delete(tx, visitID); err != nil {
		u.log.Warnf("Failed to delete visit %d: %+v", visitID, err)
		return err
	}

	_ = u.auditService.LogAction(tx, &doctorID, entity.AuditActionVisitDelete, entity.JSON{
		"visit_id": visitID,
		"date":     visit.Date.Format("2006-01-02"),
		"time":     visit.Time.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
