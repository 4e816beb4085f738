package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one dashboard refresh, such as the live metrics or the market status.
type Job interface {
	Run() error
	Name() string
}

// Scheduler re-runs dashboard refreshes on cron's goroutines. A refresh that
// is still running when its next tick fires is skipped, not queued.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log: log.With().Str("component", "scheduler").Logger(),
	}
}

// Start begins firing the registered refreshes.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("refreshes", len(s.cron.Entries())).Msg("Refresh scheduler started")
}

// Stop halts further ticks and waits for in-flight refreshes until ctx is
// done.
func (s *Scheduler) Stop(ctx context.Context) error {
	drained := s.cron.Stop()
	select {
	case <-drained.Done():
		s.log.Info().Msg("Refresh scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}
}

// AddJob registers job under a cron schedule with a seconds field, for example
// "*/5 * * * * *" or "@every 30s".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	if _, err := s.cron.AddFunc(schedule, func() { _ = s.refresh(job) }); err != nil {
		return fmt.Errorf("schedule %q for %s: %w", schedule, job.Name(), err)
	}
	s.log.Info().Str("schedule", schedule).Str("refresh", job.Name()).Msg("Refresh registered")
	return nil
}

// Every registers job to refresh at a fixed interval. Cron fires at most once
// a second, so shorter intervals run every second.
func (s *Scheduler) Every(interval time.Duration, job Job) error {
	if interval <= 0 {
		return fmt.Errorf("refresh interval %s for %s must be positive", interval, job.Name())
	}
	return s.AddJob("@every "+interval.String(), job)
}

// RunNow refreshes job on the caller's goroutine, outside the timer. It is
// how manual refresh works.
func (s *Scheduler) RunNow(job Job) error {
	return s.refresh(job)
}

func (s *Scheduler) refresh(job Job) error {
	start := time.Now()
	err := job.Run()
	elapsed := time.Since(start)
	if err != nil {
		s.log.Error().Err(err).Str("refresh", job.Name()).Dur("elapsed", elapsed).Msg("Refresh failed")
		return err
	}
	s.log.Debug().Str("refresh", job.Name()).Dur("elapsed", elapsed).Msg("Refresh done")
	return nil
}
