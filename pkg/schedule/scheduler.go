package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"portvr/painel/pkg/dashboard"
	"portvr/painel/pkg/export"
)

// timestampLayout suffixes scheduled export filenames so runs do not
// overwrite each other.
const timestampLayout = "20060102-150405"

// ErrRunning is returned when jobs are added to a running scheduler.
var ErrRunning = errors.New("scheduler is already running")

// parser accepts the standard 5-field syntax and descriptors such as @daily.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Exporter runs a single export.
type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.Result, error)
}

// RunObserver is notified after every scheduled run.
type RunObserver interface {
	ObserveScheduledRun(job string, err error)
}

// Job is a recurring export of a dashboard dataset.
type Job struct {
	// Name identifies the job in logs and metrics. Defaults to Dataset.
	Name string

	// Spec is a cron expression, e.g. "0 3 * * *" or "@daily".
	Spec string

	Dataset string
	Format  export.Format

	// Search narrows the dataset before exporting.
	Search string
}

// Scheduler runs export jobs on cron schedules.
type Scheduler struct {
	exporter Exporter
	cron     *cron.Cron
	jobs     []Job
	mu       sync.Mutex
	logger   *slog.Logger
	observer RunObserver
	now      func() time.Time
	running  bool
	stopCh   chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer for run outcomes.
func WithObserver(o RunObserver) Option {
	return func(s *Scheduler) { s.observer = o }
}

// WithClock sets the clock used for filename timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScheduler creates a scheduler that runs jobs through exporter.
func NewScheduler(exporter Exporter, opts ...Option) *Scheduler {
	s := &Scheduler{
		exporter: exporter,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   slog.Default().With("component", "schedule"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates job and queues it. Jobs must be added before Start.
func (s *Scheduler) Add(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	if job.Name == "" {
		job.Name = job.Dataset
	}
	if _, err := parser.Parse(job.Spec); err != nil {
		return fmt.Errorf("invalid cron schedule %q for job %q: %w", job.Spec, job.Name, err)
	}
	if _, err := dashboard.Lookup(job.Dataset); err != nil {
		return fmt.Errorf("job %q: %w", job.Name, err)
	}
	if !job.Format.Valid() {
		return fmt.Errorf("job %q: %w", job.Name, export.NewUnsupportedFormatError(string(job.Format)))
	}

	s.jobs = append(s.jobs, job)
	return nil
}

// Start schedules every added job. Jobs run until ctx is cancelled or Stop
// is called. With no jobs, Start does nothing.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRunning
	}
	if len(s.jobs) == 0 {
		s.logger.Info("no export jobs configured, skipping scheduler")
		return nil
	}

	for _, job := range s.jobs {
		if _, err := s.cron.AddFunc(job.Spec, func() { s.run(ctx, job) }); err != nil {
			return fmt.Errorf("failed to schedule job %q: %w", job.Name, err)
		}
		s.logger.Info("export job scheduled",
			"job", job.Name,
			"schedule", job.Spec,
			"dataset", job.Dataset,
			"format", job.Format,
		)
	}

	s.cron.Start()
	s.running = true

	stopCh := make(chan struct{})
	s.stopCh = stopCh
	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-stopCh:
		}
	}()
	return nil
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	result, err := s.RunNow(ctx, job)
	if s.observer != nil {
		s.observer.ObserveScheduledRun(job.Name, err)
	}
	if err != nil {
		s.logger.Error("scheduled export failed", "job", job.Name, "error", err)
		return
	}
	s.logger.Info("scheduled export completed",
		"job", job.Name,
		"filename", result.Filename,
		"records", result.Records,
	)
}

// RunNow exports job's dataset once. The filename is the dataset's default
// filename followed by the current timestamp.
func (s *Scheduler) RunNow(ctx context.Context, job Job) (*export.Result, error) {
	ds, err := dashboard.Lookup(job.Dataset)
	if err != nil {
		return nil, err
	}
	req, err := ds.Request(job.Format, dashboard.Filter{Search: job.Search})
	if err != nil {
		return nil, err
	}
	req.Filename = req.Filename + "-" + s.now().Format(timestampLayout)
	return s.exporter.Export(ctx, req)
}

// Stop stops the scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopCh)
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("export scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the earliest next run across all jobs, or nil when
// nothing is scheduled.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *time.Time
	for _, e := range s.cron.Entries() {
		t := e.Next
		if t.IsZero() {
			continue
		}
		if next == nil || t.Before(*next) {
			next = &t
		}
	}
	return next
}

// Jobs returns the added jobs.
func (s *Scheduler) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}
