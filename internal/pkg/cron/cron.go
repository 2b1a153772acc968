package cron

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrUnknownJob is returned when a job name is not registered.
var ErrUnknownJob = errors.New("unknown job")

// Status is the last observed run state of a job.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
)

// Job is a named background task that runs on a fixed interval.
type Job struct {
	Name        string
	Description string
	Every       time.Duration
	Run         func(ctx context.Context) error
}

// JobInfo is the serializable snapshot of a job's state.
type JobInfo struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	LastRunAt   *time.Time `json:"last_run_at,omitempty"`
	NextRunAt   time.Time  `json:"next_run_at"`
}

type jobState struct {
	job     Job
	status  Status
	lastErr string
	lastRun *time.Time
	nextRun time.Time
}

// Scheduler runs registered jobs on their intervals and tracks per-job state
// so the jobs API can report and trigger them.
type Scheduler struct {
	mu    sync.Mutex
	jobs  map[string]*jobState
	order []string
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[string]*jobState)}
}

// Register adds a job. Call before Start; later registrations are not picked
// up by a running scheduler.
func (s *Scheduler) Register(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.jobs[job.Name]; dup {
		return
	}
	s.jobs[job.Name] = &jobState{
		job:     job,
		status:  StatusIdle,
		nextRun: time.Now().Add(job.Every),
	}
	s.order = append(s.order, job.Name)
}

// Start launches one ticker loop per registered job. The loops stop when ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	states := make([]*jobState, 0, len(s.order))
	for _, name := range s.order {
		states = append(states, s.jobs[name])
	}
	s.mu.Unlock()

	for _, st := range states {
		go s.loop(ctx, st)
	}
}

func (s *Scheduler) loop(ctx context.Context, st *jobState) {
	ticker := time.NewTicker(st.job.Every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.run(ctx, st)
		}
	}
}

// run executes a job once. Overlapping runs of the same job are skipped.
func (s *Scheduler) run(ctx context.Context, st *jobState) {
	s.mu.Lock()
	if st.status == StatusRunning {
		s.mu.Unlock()
		return
	}
	st.status = StatusRunning
	s.mu.Unlock()

	started := time.Now()
	err := st.job.Run(ctx)

	s.mu.Lock()
	st.lastRun = &started
	st.nextRun = time.Now().Add(st.job.Every)
	if err != nil {
		st.status = StatusFailed
		st.lastErr = err.Error()
	} else {
		st.status = StatusOK
		st.lastErr = ""
	}
	s.mu.Unlock()
}

// Trigger runs a job outside its schedule. It returns once the run is
// started; progress is observable through Info.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.Lock()
	st, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return ErrUnknownJob
	}
	go s.run(ctx, st)
	return nil
}

// Info reports the current state of one job.
func (s *Scheduler) Info(name string) (JobInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.jobs[name]
	if !ok {
		return JobInfo{}, ErrUnknownJob
	}
	return s.snapshot(st), nil
}

// List reports all jobs in registration order.
func (s *Scheduler) List() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]JobInfo, 0, len(s.order))
	for _, name := range s.order {
		infos = append(infos, s.snapshot(s.jobs[name]))
	}
	return infos
}

func (s *Scheduler) snapshot(st *jobState) JobInfo {
	return JobInfo{
		Name:        st.job.Name,
		Description: st.job.Description,
		Status:      st.status,
		Error:       st.lastErr,
		LastRunAt:   st.lastRun,
		NextRunAt:   st.nextRun,
	}
}
