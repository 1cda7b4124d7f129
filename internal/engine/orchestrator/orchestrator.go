// Package orchestrator runs a single job in a container and manages the
// terminals, snapshots and cleanup of that run.
package orchestrator

import (
	"context"
	"io"
	"sync"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/engine/monitor"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Timings of a run.
const (
	PollInterval   = time.Second
	CommitInterval = 2 * time.Second
	SettleDelay    = 4 * time.Second
	cleanupTimeout = 30 * time.Second
)

// Tree is the part of the job tree a run keeps up to date.
type Tree interface {
	monitor.Refresher
	// SetRunning marks the job of the active run.
	SetRunning(job string)
}

// Deps are the collaborators of an Orchestrator.
type Deps struct {
	Engine   ports.ContainerEngine
	Launcher ports.TerminalLauncher
	Writer   ports.ProcessWriter
	States   ports.JobStateStore
	Logs     ports.LogStore
	License  ports.LicenseChecker
	Notifier ports.Notifier
	Tracer   ports.Tracer
	Logger   ports.Logger
}

// Request describes one job run.
type Request struct {
	Layout domain.Layout
	// Config is the compiled, not yet rewritten, config.
	Config *domain.PipelineConfig
	Job    string
	Binary string
	// NoShell skips the debug sessions.
	NoShell bool
	// Echo receives the job output when set.
	Echo io.Writer
	// Terminal is the user's terminal for the interactive sessions.
	Terminal io.Writer
	Tree     Tree
	// DynamicJobs reports whether a setup job produced a dynamic config with jobs.
	DynamicJobs func() (bool, error)
	// OnPhase observes phase transitions.
	OnPhase func(domain.RunPhase)
}

// Result is the outcome of a run.
type Result struct {
	Status  domain.JobStatus
	LogPath string
}

// Orchestrator runs jobs, one at a time.
type Orchestrator struct {
	deps Deps

	mu     sync.Mutex
	active *run
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{deps: deps}
}

// Active returns the job of the run in progress, if any.
func (o *Orchestrator) Active() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active == nil {
		return "", false
	}
	return o.active.req.Job, true
}

// Run executes the job and blocks until every terminal of the run is closed
// and cleanup has finished. Cancelling ctx kills the job.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	r := &run{
		o:           o,
		req:         req,
		events:      make(chan event, 8),
		done:        make(chan struct{}),
		stop:        make(chan struct{}),
		commitsDone: make(chan struct{}),
		open:        make(map[domain.TerminalRole]bool),
		phase:       domain.PhasePreparing,
	}

	o.mu.Lock()
	if o.active != nil {
		job := o.active.req.Job
		o.mu.Unlock()
		return Result{}, zerr.With(domain.ErrRunInProgress, "job", job)
	}
	o.active = r
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.active = nil
		o.mu.Unlock()
	}()

	ctx, span := o.tracer().Start(ctx, "job.run")
	defer span.End()
	span.SetAttribute("job", req.Job)

	r.setPhase(domain.PhasePreparing)
	p, err := o.prepare(ctx, req)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	r.plan = p

	if err := r.start(ctx); err != nil {
		span.RecordError(err)
		r.fail()
		return Result{Status: domain.JobFailed, LogPath: r.logPath}, err
	}
	span.AddEvent("running")

	var g errgroup.Group
	g.Go(func() error {
		r.loop(ctx)
		return nil
	})
	g.Go(func() error {
		r.commitLoop(ctx)
		return nil
	})
	_ = g.Wait()

	if err := r.monitor.Close(); err != nil {
		o.deps.Logger.Error(err)
	}
	if err := r.log.Close(); err != nil {
		o.deps.Logger.Error(zerr.Wrap(err, "failed to close job log"))
	}
	if req.Tree != nil {
		req.Tree.SetRunning("")
	}

	status, ok := r.monitor.Verdict()
	if !ok {
		status = domain.JobIdle
	}
	span.AddEvent(string(status))
	span.SetAttribute("status", string(status))
	return Result{Status: status, LogPath: r.logPath}, nil
}

func (o *Orchestrator) tracer() ports.Tracer {
	if o.deps.Tracer == nil {
		return noopTracer{}
	}
	return o.deps.Tracer
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
func (noopSpan) AddEvent(string)          {}
