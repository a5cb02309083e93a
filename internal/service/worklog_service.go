package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"xtime/internal/domain"
	"xtime/internal/notify"
)

// ─────────────────────────────────────────────────────────────
// Worklog Service — period summaries and the timer save path
// ─────────────────────────────────────────────────────────────

// EventWorklogSaved is emitted with the issue key after a worklog is saved.
const EventWorklogSaved = "worklog:saved"

// WorklogClient is the subset of the Jira client used by the services.
type WorklogClient interface {
	SearchWorklogs(ctx context.Context, acct domain.Account, token string, from, to time.Time) ([]domain.Worklog, error)
	AddWorklog(ctx context.Context, acct domain.Account, token, issueKey string, seconds int, comment string, started time.Time) error
}

// ViewMode selects the summary period.
type ViewMode string

const (
	ViewWeekly  ViewMode = "weekly"
	ViewMonthly ViewMode = "monthly"
)

// WorklogService reads and writes worklogs for the active account.
type WorklogService struct {
	accounts *AccountService
	jira     WorklogClient
	notifier notify.Notifier
	emitter  EventEmitter
	log      zerolog.Logger
	now      func() time.Time
}

// NewWorklogService creates a WorklogService. emitter may be nil.
func NewWorklogService(accounts *AccountService, jira WorklogClient, notifier notify.Notifier, emitter EventEmitter, log zerolog.Logger) *WorklogService {
	return &WorklogService{
		accounts: accounts,
		jira:     jira,
		notifier: notifier,
		emitter:  emitter,
		log:      log.With().Str("component", "worklog").Logger(),
		now:      time.Now,
	}
}

// PeriodRange returns the first and last day of the calendar week
// (Monday based) or month containing now, shifted by offset periods.
func PeriodRange(now time.Time, mode ViewMode, offset int) (from, to time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch mode {
	case ViewMonthly:
		from = time.Date(day.Year(), day.Month()+time.Month(offset), 1, 0, 0, 0, 0, day.Location())
		to = from.AddDate(0, 1, -1)
	default:
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		from = day.AddDate(0, 0, -(wd-1)+offset*7)
		to = from.AddDate(0, 0, 6)
	}
	return from, to
}

// Summary fetches the active account's worklogs for the selected period.
func (s *WorklogService) Summary(ctx context.Context, mode ViewMode, offset int) (*domain.WorklogSummary, error) {
	from, to := PeriodRange(s.now(), mode, offset)
	return s.summaryBetween(ctx, from, to)
}

// Today returns the summary for the current day only.
func (s *WorklogService) Today(ctx context.Context) (*domain.WorklogSummary, error) {
	now := s.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.summaryBetween(ctx, day, day)
}

func (s *WorklogService) summaryBetween(ctx context.Context, from, to time.Time) (*domain.WorklogSummary, error) {
	acct, token, err := s.accounts.Active()
	if err != nil {
		return nil, err
	}
	logs, err := s.jira.SearchWorklogs(ctx, *acct, token, from, to)
	if err != nil {
		return nil, err
	}
	return Summarize(from, to, logs), nil
}

// Summarize totals logs overall and per start day.
func Summarize(from, to time.Time, logs []domain.Worklog) *domain.WorklogSummary {
	sum := &domain.WorklogSummary{
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		PerDay:  make(map[string]int),
		Entries: logs,
	}
	if sum.Entries == nil {
		sum.Entries = []domain.Worklog{}
	}
	for _, wl := range logs {
		sum.TotalSeconds += wl.TimeSpentSeconds
		sum.PerDay[wl.Started.Format("2006-01-02")] += wl.TimeSpentSeconds
	}
	return sum
}

// Save logs seconds against issueKey for the active account, starting
// seconds ago, and sends a confirmation notification. A failed
// notification is logged; the worklog is already saved at that point.
func (s *WorklogService) Save(ctx context.Context, issueKey string, seconds int, comment string) error {
	acct, token, err := s.accounts.Active()
	if err != nil {
		return err
	}
	started := s.now().Add(-time.Duration(seconds) * time.Second)
	if err := s.jira.AddWorklog(ctx, *acct, token, issueKey, seconds, comment, started); err != nil {
		return err
	}

	body := fmt.Sprintf("%s: %s logged", issueKey, FormatElapsed(seconds))
	if err := s.notifier.Notify("Worklog saved", body); err != nil {
		s.log.Warn().Err(err).Str("issue", issueKey).Msg("worklog saved but notification failed")
	}
	if s.emitter != nil {
		s.emitter.Emit(ctx, EventWorklogSaved, issueKey)
	}
	return nil
}

// FormatElapsed renders seconds as HH:MM:SS.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}
