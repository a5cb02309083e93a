package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"xtime/internal/domain"
	"xtime/internal/notify"
)

// ─────────────────────────────────────────────────────────────
// Reminder Service — daily "you have not logged 8 hours" notification
// ─────────────────────────────────────────────────────────────

const reminderTask = "daily-reminder"

// TodaySummarizer returns today's worklog totals for the active account.
type TodaySummarizer interface {
	Today(ctx context.Context) (*domain.WorklogSummary, error)
}

// ReminderService fires once a day at the configured notification time.
type ReminderService struct {
	worklogs TodaySummarizer
	settings *SettingsService
	notifier notify.Notifier
	log      zerolog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entry   cron.EntryID
	guard   runGuard
	baseCtx context.Context
}

// NewReminderService creates a ReminderService; call Start to schedule it.
func NewReminderService(worklogs TodaySummarizer, settings *SettingsService, notifier notify.Notifier, log zerolog.Logger) *ReminderService {
	return &ReminderService{
		worklogs: worklogs,
		settings: settings,
		notifier: notifier,
		log:      log.With().Str("component", "reminder").Logger(),
		cron:     cron.New(),
		baseCtx:  context.Background(),
	}
}

// Start schedules the reminder from the saved settings and starts the
// scheduler. ctx bounds the checks run by the scheduler.
func (s *ReminderService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	st, err := s.settings.Load()
	if err != nil {
		return err
	}
	if err := s.Reschedule(st); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Reschedule replaces the scheduled job to match st. Disabled
// notifications leave nothing scheduled.
func (s *ReminderService) Reschedule(st domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entry != 0 {
		s.cron.Remove(s.entry)
		s.entry = 0
	}
	if !st.NotificationEnabled {
		s.log.Debug().Msg("reminder disabled")
		return nil
	}
	hour, minute, err := ParseClock(st.NotificationTime)
	if err != nil {
		return err
	}
	ctx := s.baseCtx
	id, err := s.cron.AddFunc(fmt.Sprintf("%d %d * * *", minute, hour), func() {
		if err := s.Check(ctx); err != nil {
			s.log.Error().Err(err).Msg("reminder check failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.entry = id
	s.log.Info().Str("at", st.NotificationTime).Msg("reminder scheduled")
	return nil
}

// NextRun returns the next time the reminder fires after t.
func (s *ReminderService) NextRun(t time.Time) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry == 0 {
		return time.Time{}, false
	}
	return s.cron.Entry(s.entry).Schedule.Next(t), true
}

// Check notifies if less than the daily target has been logged today.
// Overlapping checks are skipped.
func (s *ReminderService) Check(ctx context.Context) error {
	if !s.guard.TryLock(reminderTask) {
		s.log.Debug().Msg("reminder already running")
		return nil
	}
	defer s.guard.Unlock(reminderTask)

	st, err := s.settings.Load()
	if err != nil {
		return err
	}
	if !st.NotificationEnabled {
		return nil
	}

	sum, err := s.worklogs.Today(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debug().Err(err).Msg("no active account, reminder skipped")
		return nil
	}
	if err != nil {
		return err
	}
	if sum.TotalSeconds >= domain.DailyTargetSeconds {
		return nil
	}

	body := fmt.Sprintf("You have logged %s today; %s left to reach 8 hours.",
		FormatElapsed(sum.TotalSeconds), FormatElapsed(domain.DailyTargetSeconds-sum.TotalSeconds))
	return s.notifier.Notify("Worklog reminder", body)
}

// Stop stops the scheduler and waits for a running check to finish.
func (s *ReminderService) Stop(ctx context.Context) {
	cronCtx := s.cron.Stop()
	select {
	case <-cronCtx.Done():
	case <-ctx.Done():
	}
	s.guard.WaitAll(ctx)
}
