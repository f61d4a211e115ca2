package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Evictor drops idle sessions and reports how many were removed.
type Evictor interface {
	EvictIdle(ttl time.Duration) int
}

// Scheduler runs housekeeping jobs for the server.
type Scheduler struct {
	Cron    *cron.Cron
	Evictor Evictor
	IdleTTL time.Duration
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ev Evictor, idleTTL time.Duration) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Evictor: ev,
		IdleTTL: idleTTL,
	}
}

// RegisterAll registers the session eviction job.
func (s *Scheduler) RegisterAll(evictCron string) error {
	if _, err := s.Cron.AddFunc(evictCron, s.evictTask); err != nil {
		return fmt.Errorf("register eviction task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	slog.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunEvictionNow executes the eviction job immediately.
func (s *Scheduler) RunEvictionNow() int {
	return s.Evictor.EvictIdle(s.IdleTTL)
}

func (s *Scheduler) evictTask() {
	n := s.Evictor.EvictIdle(s.IdleTTL)
	slog.Debug("eviction task finished", "evicted", n)
}
