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
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotOwned    = errors.New("booking does not belong to you")
	ErrVisitAlreadyBooked = errors.New("visit is already booked")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetBooking(ctx context.Context, clientID uuid.UUID, bookingID uuid.UUID) (*dto.BookingResponse, error)
	ListClientBookings(ctx context.Context, clientID uuid.UUID) (*dto.BookingListResponse, error)
	ListDoctorBookings(ctx context.Context, doctorID uuid.UUID) (*dto.BookingListResponse, error)
	DeleteBooking(ctx context.Context, clientID uuid.UUID, bookingID uuid.UUID) error
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
	}
}

// CreateBooking claims one visit for the client. Concurrency safety rides
// on the unique visit_id constraint, not on the pre-check: two clients
// racing for the same slot both pass the read, one insert wins.
func (u *bookingUsecase) CreateBooking(ctx context.Context, clientID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), req.VisitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}
	if visit.IsBooked() {
		return nil, ErrVisitAlreadyBooked
	}

	booking := &entity.Booking{
		VisitID:  req.VisitID,
		ClientID: clientID,
		Service:  req.Service,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isDuplicateKeyError(err, "visit_id") {
			return nil, ErrVisitAlreadyBooked
		}
		if isForeignKeyError(err, "visit") {
			return nil, ErrVisitNotFound
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogAction(tx, &clientID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id": booking.ID.String(),
		"visit_id":   req.VisitID,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	booking.Visit = *visit
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, clientID uuid.UUID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.ClientID != clientID {
		return nil, ErrBookingNotOwned
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) ListClientBookings(ctx context.Context, clientID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to list client bookings: %+v", err)
		return nil, err
	}

	responses := converter.BookingsToResponses(bookings)
	return &dto.BookingListResponse{Bookings: responses, Total: len(responses)}, nil
}

func (u *bookingUsecase) ListDoctorBookings(ctx context.Context, doctorID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor bookings: %+v", err)
		return nil, err
	}

	responses := converter.BookingsToResponses(bookings)
	return &dto.BookingListResponse{Bookings: responses, Total: len(responses)}, nil
}

// DeleteBooking cancels the claim and leaves the visit open again.
func (u *bookingUsecase) DeleteBooking(ctx context.Context, clientID uuid.UUID, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.ClientID != clientID {
		return ErrBookingNotOwned
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.bookingRepo.Delete(tx, bookingID); err != nil {
		u.log.Warnf("Failed to delete booking: %+v", err)
		return err
	}

	_ = u.auditService.LogAction(tx, &clientID, entity.AuditActionBookingDelete, entity.JSON{
		"booking_id": bookingID.String(),
		"visit_id":   booking.VisitID,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
