package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teamcal/teamcal-api/internal/domain"
	"github.com/teamcal/teamcal-api/internal/identity"
	"github.com/teamcal/teamcal-api/internal/service"
)

// TaskLister is the slice of the task service the digest needs.
type TaskLister interface {
	ListTasks(ctx context.Context, team, date string) ([]string, error)
}

var _ TaskLister = (*service.TaskService)(nil)

// Scheduler fires the daily digest at a fixed wall-clock time. It is
// created idle and armed with Start; Start is idempotent, so reinitializing
// the application cannot register the daily job twice.
type Scheduler struct {
	tasks    TaskLister
	accounts identity.Provider
	mailer   Mailer
	location *time.Location
	spec     string
	logger   *slog.Logger
	timeFunc func() time.Time // injectable for testing

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

// NewScheduler creates a scheduler firing daily at hour:minute in loc.
func NewScheduler(
	tasks TaskLister,
	accounts identity.Provider,
	mailer Mailer,
	hour, minute int,
	loc *time.Location,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		tasks:    tasks,
		accounts: accounts,
		mailer:   mailer,
		location: loc,
		spec:     fmt.Sprintf("%d %d * * *", minute, hour),
		logger:   logger.With("component", "digest_scheduler"),
		timeFunc: time.Now,
	}
}

// Start arms the daily trigger. Calling Start on an already started
// scheduler is a no-op; only one daily firing can ever be registered.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.logger.Debug("scheduler already started, ignoring duplicate start")
		return nil
	}

	c := cron.New(cron.WithLocation(s.location))
	if _, err := c.AddFunc(s.spec, func() {
		s.RunDigest(context.Background())
	}); err != nil {
		return fmt.Errorf("registering daily digest job: %w", err)
	}
	c.Start()

	s.cron = c
	s.started = true
	s.logger.Info("digest scheduler started",
		"schedule", s.spec,
		"timezone", s.location.String())
	return nil
}

// Stop halts future firings. A firing already in flight finishes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	<-s.cron.Stop().Done()
	s.started = false
	s.logger.Info("digest scheduler stopped")
}

// Entries reports how many cron jobs are registered. Zero before Start,
// one after, one after a duplicate Start.
func (s *Scheduler) Entries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return 0
	}
	return len(s.cron.Entries())
}

// RunDigest performs one firing: it computes today in the scheduler's
// zone and mails every account with an address its team's tasks for the
// day. One account's delivery failure never aborts the others; every
// failure is logged. Returns the number of messages dispatched.
func (s *Scheduler) RunDigest(ctx context.Context) int {
	today := s.timeFunc().In(s.location).Format(domain.DateLayout)
	logger := s.logger.With("date", today)

	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		logger.Error("failed to list accounts for digest", "error", err)
		return 0
	}

	sent := 0
	for _, acct := range accounts {
		// Accounts without a delivery address are skipped by policy.
		if acct.Email == "" {
			logger.Debug("skipping account without email", "username", acct.Username)
			continue
		}

		tasks, err := s.tasks.ListTasks(ctx, acct.Team, today)
		if err != nil {
			logger.Error("failed to read tasks for digest",
				"username", acct.Username,
				"team", acct.Team,
				"error", err)
			continue
		}

		msg := Message{
			To:      acct.Email,
			Subject: fmt.Sprintf("%s %s task list", acct.Team, today),
			Body:    strings.Join(tasks, "\n"),
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			logger.Error("digest delivery failed",
				"username", acct.Username,
				"team", acct.Team,
				"error", err)
			continue
		}

		sent++
		logger.Info("digest dispatched",
			"username", acct.Username,
			"team", acct.Team,
			"tasks", len(tasks))
	}
	return sent
}
