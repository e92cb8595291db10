// Package retention runs periodic cleanup of expired state.
package retention

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule prunes at the top of every hour
const DefaultSchedule = "@hourly"

// Task removes expired records and reports how many were deleted.
type Task struct {
	Name  string
	Prune func(ctx context.Context) (int64, error)
}

// Scheduler runs its tasks on a cron schedule.
type Scheduler struct {
	schedule string
	tasks    []Task
	cron     *cron.Cron
	log      *zap.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler. An empty schedule uses DefaultSchedule.
func NewScheduler(schedule string, log *zap.Logger, tasks ...Task) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		schedule: schedule,
		tasks:    tasks,
		cron:     cron.New(),
		log:      log.With(zap.String("component", "retention")),
	}
}

// Run starts the schedule and blocks until ctx is done, then waits for a
// running prune to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}
	if len(s.tasks) == 0 {
		s.log.Info("no retention tasks configured")
		<-ctx.Done()
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.mu.Lock()
	s.cron.Start()
	s.running = true
	s.mu.Unlock()
	s.log.Info("retention scheduler started", zap.String("schedule", s.schedule), zap.Int("tasks", len(s.tasks)))

	<-ctx.Done()
	s.stop()
	return nil
}

// RunOnce runs every task immediately
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, task := range s.tasks {
		start := time.Now()
		deleted, err := task.Prune(ctx)
		if err != nil {
			s.log.Error("retention task failed", zap.String("task", task.Name), zap.Error(err))
			continue
		}
		s.log.Debug("retention task completed",
			zap.String("task", task.Name),
			zap.Int64("deleted", deleted),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// NextRun returns the next scheduled run, or nil when not running
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}

func (s *Scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.log.Info("retention scheduler stopped")
	}
}
