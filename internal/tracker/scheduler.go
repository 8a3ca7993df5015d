package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs watch cycles on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	tracker *Tracker
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that runs a tracker cycle every interval.
// Overlapping runs are skipped rather than queued.
func NewScheduler(t *Tracker, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	s := &Scheduler{
		cron:    c,
		tracker: t,
		log:     log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), s.runCycle); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled cycles.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "watches", len(s.tracker.watches))
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once a running
// cycle has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRun returns the time of the next scheduled cycle, or the zero time
// when the scheduler has not been started.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) runCycle() {
	ctx := context.Background()
	s.log.Info("scheduled watch cycle starting")
	checks, err := s.tracker.RunCycle(ctx)
	if err != nil {
		s.log.Error("scheduled watch cycle failed", "error", err)
		return
	}
	s.log.Info("scheduled watch cycle complete", "checked", len(checks))
}
