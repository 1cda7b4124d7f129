// Package monitor watches the output of a job run and derives the job's state from it.
package monitor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

// DynamicReportDelay is how long the monitor waits after a setup job succeeds
// before reading the dynamic config it generated.
const DynamicReportDelay = 5 * time.Second

// Messages reported after a setup job succeeds.
const (
	DynamicJobsMessage   = "Success! You can now run the dynamic config jobs."
	NoDynamicJobsMessage = "The step succeeded, but it didn't create any dynamic job"
)

// Refresher is the part of the job tree the monitor updates.
type Refresher interface {
	// Refresh re-reads the state of job without recompiling the config.
	Refresh(ctx context.Context, job string)
	// HardRefresh recompiles the config and rebuilds the tree.
	HardRefresh(ctx context.Context) error
}

// Config holds the collaborators of a Monitor.
type Config struct {
	Root    string
	Job     string
	Log     io.Writer
	LogPath string
	// Dynamic is true for jobs that generate a dynamic config.
	Dynamic bool
	// DynamicJobs reports whether the generated dynamic config has jobs.
	DynamicJobs func() (bool, error)

	States    ports.JobStateStore
	Notifier  ports.Notifier
	Refresher Refresher
	Logger    ports.Logger

	// OnVerdict is called once, after the job state has been updated.
	OnVerdict func(domain.JobStatus)
}

// Monitor is an io.Writer fed by the main terminal.
type Monitor struct {
	ctx context.Context
	cfg Config

	mu       sync.Mutex
	verdict  domain.JobStatus
	fired    map[string]bool
	logErred bool
	closed   bool
	pending  sync.WaitGroup
}

// New creates a Monitor for one run.
func New(ctx context.Context, cfg Config) *Monitor {
	return &Monitor{
		ctx:   ctx,
		cfg:   cfg,
		fired: make(map[string]bool),
	}
}

// Header returns the first lines of a fresh job log.
func Header(job string, at time.Time, config []byte) []byte {
	header := fmt.Sprintf("Log for CircleCI job %s\n%s\n\n", job, at.Format(time.RFC1123))
	return append([]byte(header), config...)
}

// Write appends the chunk to the log and reacts to the markers it contains.
// It never fails; log errors are reported once through the logger.
func (m *Monitor) Write(p []byte) (int, error) {
	chunk := string(p)

	m.mu.Lock()
	if m.cfg.Log != nil {
		if _, err := io.WriteString(m.cfg.Log, StripColors(chunk)); err != nil && !m.logErred {
			m.logErred = true
			m.cfg.Logger.Error(zerr.With(zerr.Wrap(err, "failed to append to job log"), "path", m.cfg.LogPath))
		}
	}

	var verdict domain.JobStatus
	var infras []Infra
	for _, res := range Scan(chunk) {
		switch res.Kind {
		case Success, Failure:
			if m.verdict == "" && verdict == "" {
				verdict = domain.JobSucceeded
				if res.Kind == Failure {
					verdict = domain.JobFailed
				}
			}
		case InfraError:
			if !m.fired[res.Infra.Signature] {
				m.fired[res.Infra.Signature] = true
				infras = append(infras, res.Infra)
			}
		case None:
		}
	}
	if verdict != "" {
		m.verdict = verdict
	}
	m.mu.Unlock()

	for _, infra := range infras {
		m.cfg.Notifier.Suggest(infra.Message, infra.URL)
	}
	if verdict != "" {
		m.apply(verdict)
	}
	return len(p), nil
}

// Verdict returns the state the job output settled on, if any.
func (m *Monitor) Verdict() (domain.JobStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verdict, m.verdict != ""
}

// Close waits for pending reports. A run that ended without a verdict
// returns the job to idle.
func (m *Monitor) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	verdict := m.verdict
	m.mu.Unlock()

	m.pending.Wait()

	if verdict != "" {
		return nil
	}
	err := m.putState(domain.JobIdle, false)
	m.cfg.Refresher.Refresh(m.ctx, m.cfg.Job)
	return err
}

func (m *Monitor) apply(status domain.JobStatus) {
	if err := m.putState(status, true); err != nil {
		m.cfg.Logger.Error(err)
	}
	m.cfg.Refresher.Refresh(m.ctx, m.cfg.Job)
	m.cfg.Notifier.JobFinished(m.cfg.Job, status, m.cfg.LogPath)

	if m.cfg.OnVerdict != nil {
		m.cfg.OnVerdict(status)
	}

	if status == domain.JobSucceeded && m.cfg.Dynamic {
		m.pending.Add(1)
		go m.reportDynamic()
	}
}

func (m *Monitor) reportDynamic() {
	defer m.pending.Done()

	if err := m.cfg.Refresher.HardRefresh(m.ctx); err != nil {
		m.cfg.Logger.Error(err)
	}

	timer := time.NewTimer(DynamicReportDelay)
	defer timer.Stop()
	select {
	case <-m.ctx.Done():
		return
	case <-timer.C:
	}

	hasJobs := false
	if m.cfg.DynamicJobs != nil {
		var err error
		if hasJobs, err = m.cfg.DynamicJobs(); err != nil {
			m.cfg.Logger.Error(err)
		}
	}
	if hasJobs {
		m.cfg.Notifier.Message(DynamicJobsMessage)
		return
	}
	m.cfg.Notifier.Message(NoDynamicJobsMessage)
}

func (m *Monitor) putState(status domain.JobStatus, expanded bool) error {
	if m.cfg.States == nil {
		return nil
	}
	err := m.cfg.States.Put(m.cfg.Root, domain.JobState{
		Job:       m.cfg.Job,
		Status:    status,
		Expanded:  expanded,
		LastLog:   m.cfg.LogPath,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "job", m.cfg.Job)
	}
	return nil
}
