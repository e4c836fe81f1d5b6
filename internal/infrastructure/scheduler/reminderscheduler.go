// Package scheduler hosts the background loops of the reminder service.
package scheduler

import (
	"context"
	"sync"
	"time"

	reminderUsecases "github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

// ReminderScheduler runs the daily reminder sweep and the confirmation purge.
// The sweep is idempotent, so overlap between a restart-triggered run and the
// scheduled run is harmless.
type ReminderScheduler struct {
	sendRemindersUC *reminderUsecases.SendPendingRemindersUseCase
	purgeUC         *reminderUsecases.PurgeExpiredConfirmationsUseCase
	logger          logger.Interface
	stopChan        chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup
	sweepHour       int
}

// NewReminderScheduler creates a new ReminderScheduler. sweepHour is the hour
// of the business day (0-23) at which the daily sweep fires.
func NewReminderScheduler(
	sendRemindersUC *reminderUsecases.SendPendingRemindersUseCase,
	purgeUC *reminderUsecases.PurgeExpiredConfirmationsUseCase,
	sweepHour int,
	logger logger.Interface,
) *ReminderScheduler {
	return &ReminderScheduler{
		sendRemindersUC: sendRemindersUC,
		purgeUC:         purgeUC,
		logger:          logger,
		stopChan:        make(chan struct{}),
		sweepHour:       sweepHour,
	}
}

// Start starts the scheduler
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reminder scheduler", "sweep_hour", s.sweepHour)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping reminder scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("reminder scheduler stopped")
	})
}

func (s *ReminderScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to cover reminders missed while down
	s.runSweep(ctx)

	timer := time.NewTimer(time.Until(s.nextRun(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reminder scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-timer.C:
			s.runSweep(ctx)
			timer.Reset(time.Until(s.nextRun(time.Now())))
		}
	}
}

// nextRun is the next occurrence of sweepHour in the business timezone
// strictly after now.
func (s *ReminderScheduler) nextRun(now time.Time) time.Time {
	local := now.In(biztime.Location())
	run := time.Date(local.Year(), local.Month(), local.Day(), s.sweepHour, 0, 0, 0, biztime.Location())
	if !run.After(local) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}

func (s *ReminderScheduler) runSweep(ctx context.Context) {
	startTime := time.Now()
	today := biztime.NowUTC()

	sent, err := s.sendRemindersUC.Execute(ctx, today)
	if err != nil {
		s.logger.Errorw("reminder sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sent > 0 {
		s.logger.Infow("reminder sweep completed",
			"sent", sent,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("reminder sweep completed with nothing to send",
			"duration", time.Since(startTime),
		)
	}

	if _, err := s.purgeUC.Execute(ctx); err != nil {
		s.logger.Errorw("confirmation purge failed", "error", err)
	}
}
