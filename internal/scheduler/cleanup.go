// Package scheduler enqueues periodic maintenance tasks on a cron schedule.
// The work itself runs in the task queue workers.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/eventadmin/internal/config"
	"github.com/mrlokans/eventadmin/internal/tasks"
)

// TaskQueue enqueues background tasks.
type TaskQueue interface {
	Enqueue(task backlite.Task) (string, error)
}

// Job pairs a cron schedule with the task it enqueues.
type Job struct {
	Name     string
	Schedule string
	Task     backlite.Task
}

// CleanupScheduler manages the retention jobs for audit events and import
// sessions.
type CleanupScheduler struct {
	queue TaskQueue
	jobs  []Job
	log   *zap.Logger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// CleanupJobs builds the retention jobs from config.
func CleanupJobs(sched config.Scheduler, audit config.Audit) []Job {
	return []Job{
		{
			Name:     "audit_cleanup",
			Schedule: sched.AuditCleanupCron,
			Task:     tasks.CleanupAuditEventsTask{RetentionDays: audit.RetentionDays},
		},
		{
			Name:     "import_cleanup",
			Schedule: sched.ImportCleanupCron,
			Task:     tasks.CleanupImportSessionsTask{RetentionDays: audit.ImportRetentionDays},
		},
	}
}

func NewCleanupScheduler(queue TaskQueue, jobs []Job, log *zap.Logger) *CleanupScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupScheduler{
		queue: queue,
		jobs:  jobs,
		log:   log.Named("scheduler"),
		cron:  cron.New(cron.WithParser(parser)),
	}
}

// Start registers every job and runs the cron loop until ctx is done.
func (s *CleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	for _, job := range s.jobs {
		if err := ValidateSchedule(job.Schedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s' for %s: %w", job.Schedule, job.Name, err)
		}
		if _, err := s.cron.AddFunc(job.Schedule, func() { s.enqueue(job) }); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
		}
		s.log.Info("job scheduled",
			zap.String("job", job.Name),
			zap.String("schedule", Describe(job.Schedule)),
		)
	}

	s.cron.Start()
	s.isRunning = true

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for in-flight enqueues and stops the cron loop.
func (s *CleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.log.Info("stopped")
}

// RunNow enqueues the named job immediately.
func (s *CleanupScheduler) RunNow(name string) (string, error) {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.enqueue(job)
		}
	}
	return "", fmt.Errorf("unknown job %q", name)
}

func (s *CleanupScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *CleanupScheduler) enqueue(job Job) (string, error) {
	id, err := s.queue.Enqueue(job.Task)
	if err != nil {
		s.log.Error("failed to enqueue job", zap.String("job", job.Name), zap.Error(err))
		return "", err
	}
	s.log.Info("job enqueued", zap.String("job", job.Name), zap.String("task_id", id))
	return id, nil
}
