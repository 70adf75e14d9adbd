package service

import (
	"context"
	"time"

	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RetentionDays is the horizon after which past schedules and their
// visits are purged.
const RetentionDays = 5

// RetentionSweeper periodically deletes schedules older than the
// retention window together with the visits they generated. Bookings are
// never touched directly; they go away with their visit through the
// storage-level cascade.
type RetentionSweeper struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	visitRepo    repository.VisitRepository
	interval     time.Duration
}

func NewRetentionSweeper(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	visitRepo repository.VisitRepository,
	interval time.Duration,
) *RetentionSweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &RetentionSweeper{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		visitRepo:    visitRepo,
		interval:     interval,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled. Sweep errors are logged, never propagated; the job is
// unattended and the next tick retries naturally.
func (s *RetentionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweepAndLog()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Retention sweeper stopped")
			return
		case <-ticker.C:
			s.sweepAndLog()
		}
	}
}

func (s *RetentionSweeper) sweepAndLog() {
	deleted, err := s.Sweep(time.Now().UTC())
	if err != nil {
		s.log.Warnf("Retention sweep failed: %+v", err)
		return
	}
	if deleted > 0 {
		s.log.Infof("Retention sweep removed %d expired schedules", deleted)
	}
}

// Sweep deletes every schedule dated on or before today minus the
// retention window, and the visits on those dates, in one transaction.
// Re-running with nothing past the cutoff is a no-op.
func (s *RetentionSweeper) Sweep(today time.Time) (int64, error) {
	cutoff := today.AddDate(0, 0, -RetentionDays)
	cutoff = time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)

	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.visitRepo.DeleteExpired(tx, cutoff); err != nil {
			return err
		}
		n, err := s.scheduleRepo.DeleteExpired(tx, cutoff)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
