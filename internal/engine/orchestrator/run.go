package orchestrator

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/engine/monitor"
	"go.trai.ch/zerr"
)

type eventKind int

const (
	// evVerdict carries the status the monitor settled on.
	evVerdict eventKind = iota
	// evAttached carries a terminal that has started.
	evAttached
	// evClosed carries the exit code of a terminal.
	evClosed
)

type event struct {
	kind     eventKind
	role     domain.TerminalRole
	code     int
	status   domain.JobStatus
	terminal ports.Terminal
}

// run holds the state of one job run. Only loop mutates it after start returns.
type run struct {
	o    *Orchestrator
	req  Request
	plan *plan

	events chan event
	done   chan struct{}

	log     io.WriteCloser
	logPath string
	monitor *monitor.Monitor

	phase        domain.RunPhase
	terminals    map[domain.TerminalRole]ports.Terminal
	open         map[domain.TerminalRole]bool
	finalCreated bool
	cancelled    bool
	cleaned      bool
	cancelDebug  context.CancelFunc

	stop     chan struct{}
	stopOnce sync.Once
	// commitsDone is closed when commitLoop has returned.
	commitsDone chan struct{}
}

func (r *run) setPhase(p domain.RunPhase) {
	r.phase = p
	if r.req.OnPhase != nil {
		r.req.OnPhase(p)
	}
}

// send delivers an event unless the loop has already finished.
func (r *run) send(ev event) {
	select {
	case r.events <- ev:
	case <-r.done:
	}
}

func (r *run) stopCommits() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// start creates the log, marks the job running and launches the main and debug terminals.
func (r *run) start(ctx context.Context) error {
	deps := r.o.deps
	root := r.req.Layout.Root

	w, logPath, err := deps.Logs.Create(root, r.req.Job)
	if err != nil {
		return err
	}
	r.log, r.logPath = w, logPath

	jobYAML, err := deps.Writer.EncodeJob(r.plan.job)
	if err != nil {
		deps.Logger.Error(err)
	}
	if _, err := w.Write(monitor.Header(r.req.Job, time.Now(), jobYAML)); err != nil {
		deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrLogCreateFailed.Error()), "path", logPath))
	}

	if err := deps.States.Put(root, domain.JobState{
		Job:       r.req.Job,
		Status:    domain.JobRunning,
		LastLog:   logPath,
		UpdatedAt: time.Now(),
	}); err != nil {
		deps.Logger.Error(err)
	}
	if r.req.Tree != nil {
		r.req.Tree.SetRunning(r.req.Job)
	}

	r.monitor = monitor.New(ctx, monitor.Config{
		Root:        root,
		Job:         r.req.Job,
		Log:         w,
		LogPath:     logPath,
		Dynamic:     r.req.Config.Setup,
		DynamicJobs: r.req.DynamicJobs,
		States:      deps.States,
		Notifier:    deps.Notifier,
		Refresher:   r.refresher(),
		Logger:      deps.Logger,
		OnVerdict: func(status domain.JobStatus) {
			r.send(event{kind: evVerdict, status: status})
		},
	})

	var out io.Writer = r.monitor
	if r.req.Echo != nil {
		out = io.MultiWriter(r.monitor, r.req.Echo)
	}

	main, err := deps.Launcher.Launch(ctx, ports.TerminalSpec{
		Role: domain.TerminalMain,
		Args: []string{
			r.req.Binary, "local", "execute",
			"--job", r.req.Job,
			"--config", r.req.Layout.ProcessFilePath(),
			"--debug",
			"-v", r.plan.volumeSpec,
		},
		Dir:    root,
		Output: out,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProcessSpawnFailure.Error()), "terminal", string(domain.TerminalMain))
	}
	r.terminals = map[domain.TerminalRole]ports.Terminal{domain.TerminalMain: main}
	r.open[domain.TerminalMain] = true
	r.setPhase(domain.PhaseRunning)
	go r.wait(domain.TerminalMain, main)

	if !r.req.NoShell {
		r.startDebug(ctx)
	}
	return nil
}

// fail records a run that could not start.
func (r *run) fail() {
	deps := r.o.deps
	if err := deps.States.Put(r.req.Layout.Root, domain.JobState{
		Job:       r.req.Job,
		Status:    domain.JobFailed,
		LastLog:   r.logPath,
		UpdatedAt: time.Now(),
	}); err != nil {
		deps.Logger.Error(err)
	}
	if r.log != nil {
		_ = r.log.Close()
	}
	if r.req.Tree != nil {
		r.req.Tree.SetRunning("")
	}
}

func (r *run) refresher() monitor.Refresher {
	if r.req.Tree == nil {
		return nopRefresher{}
	}
	return r.req.Tree
}

func (r *run) wait(role domain.TerminalRole, t ports.Terminal) {
	code := t.Wait()
	r.send(event{kind: evClosed, role: role, code: code})
}

func (r *run) startDebug(ctx context.Context) {
	dctx, cancel := context.WithCancel(ctx)
	r.cancelDebug = cancel
	r.open[domain.TerminalDebug] = true

	go func() {
		id, err := r.waitForContainer(dctx)
		if err != nil {
			// The run ended before the container came up; nothing was attached.
			r.send(event{kind: evClosed, role: domain.TerminalDebug, code: 0})
			return
		}
		r.o.deps.Notifier.Message("Inside the job's container")
		t, err := r.o.deps.Launcher.Launch(ctx, ports.TerminalSpec{
			Role:        domain.TerminalDebug,
			Args:        []string{"docker", "exec", "-it", "--workdir", r.plan.defaults.Home, id, "/bin/sh"},
			Dir:         r.req.Layout.Root,
			Output:      r.req.Terminal,
			Interactive: true,
		})
		if err != nil {
			r.o.deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrProcessSpawnFailure.Error()), "terminal", string(domain.TerminalDebug)))
			r.send(event{kind: evClosed, role: domain.TerminalDebug, code: 1})
			return
		}
		r.send(event{kind: evAttached, role: domain.TerminalDebug, terminal: t})
		r.wait(domain.TerminalDebug, t)
	}()
}

// waitForContainer polls the engine until a container of the job image is running.
func (r *run) waitForContainer(ctx context.Context) (string, error) {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()
	for {
		id, err := r.o.deps.Engine.RunningContainer(ctx, r.plan.image)
		if err == nil && id != "" {
			return id, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// commitLoop snapshots the job container now and on every tick until stopped.
func (r *run) commitLoop(ctx context.Context) {
	defer close(r.commitsDone)
	ticker := time.NewTicker(CommitInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		default:
		}
		r.commit(ctx)
		select {
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// commit is best effort; the next tick supersedes a failed commit.
func (r *run) commit(ctx context.Context) {
	id, err := r.o.deps.Engine.RunningContainer(ctx, r.plan.image)
	if err != nil || id == "" {
		return
	}
	_ = r.o.deps.Engine.Commit(ctx, id, r.plan.committed)
}

func (r *run) loop(ctx context.Context) {
	defer close(r.done)

	cancelled := ctx.Done()
	for r.phase != domain.PhaseClosed {
		select {
		case ev := <-r.events:
			r.handle(ctx, ev)
		case <-cancelled:
			cancelled = nil
			r.cancel()
		}
	}
}

func (r *run) handle(ctx context.Context, ev event) {
	switch ev.kind {
	case evVerdict:
		if ev.status == domain.JobSucceeded {
			r.setPhase(domain.PhaseSucceeded)
		} else {
			r.setPhase(domain.PhaseFailed)
		}
		if t := r.terminals[domain.TerminalMain]; t != nil {
			_ = t.Close()
		}

	case evAttached:
		r.terminals[ev.role] = ev.terminal
		if r.cancelled {
			_ = ev.terminal.Close()
		}

	case evClosed:
		r.open[ev.role] = false
		switch ev.role {
		case domain.TerminalMain:
			if r.terminals[domain.TerminalDebug] == nil && r.cancelDebug != nil {
				r.cancelDebug()
			}
		case domain.TerminalDebug:
			if ev.code != 0 && !r.finalCreated && !r.cancelled {
				r.debugReady(ctx)
			}
		case domain.TerminalFinalDebug:
		}
		r.maybeClose(ctx)
	}
}

// debugReady opens a shell on the latest snapshot of the job container.
func (r *run) debugReady(ctx context.Context) {
	r.setPhase(domain.PhaseDebugReady)
	r.stopCommits()
	r.finalCreated = true
	r.open[domain.TerminalFinalDebug] = true

	go func() {
		closed := event{kind: evClosed, role: domain.TerminalFinalDebug}

		id, err := r.o.deps.Engine.ImageID(ctx, r.plan.committed)
		if err != nil || id == "" {
			r.send(closed)
			return
		}

		timer := time.NewTimer(SettleDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			r.send(closed)
			return
		case <-timer.C:
		}

		r.o.deps.Notifier.Message("Inside a similar container after the job's container exited")
		t, err := r.o.deps.Launcher.Launch(ctx, ports.TerminalSpec{
			Role:        domain.TerminalFinalDebug,
			Args:        []string{"docker", "run", "-it", "--rm", "-v", r.plan.volumeSpec, "--workdir", r.plan.defaults.Home, id},
			Dir:         r.req.Layout.Root,
			Output:      r.req.Terminal,
			Interactive: true,
		})
		if err != nil {
			r.o.deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrProcessSpawnFailure.Error()), "terminal", string(domain.TerminalFinalDebug)))
			closed.code = 1
			r.send(closed)
			return
		}
		r.send(event{kind: evAttached, role: domain.TerminalFinalDebug, terminal: t})
		r.wait(domain.TerminalFinalDebug, t)
	}()
}

// cancel closes every terminal after the caller cancelled the run.
func (r *run) cancel() {
	r.cancelled = true
	if r.cancelDebug != nil {
		r.cancelDebug()
	}
	for _, t := range r.terminals {
		_ = t.Close()
	}
}

func (r *run) maybeClose(ctx context.Context) {
	for _, open := range r.open {
		if open {
			return
		}
	}
	r.setPhase(domain.PhaseClosed)
	r.cleanup(ctx)
}

// cleanup removes the snapshot of the run. It runs once per run and never fails it.
func (r *run) cleanup(ctx context.Context) {
	if r.cleaned {
		return
	}
	r.cleaned = true
	r.stopCommits()
	if r.cancelDebug != nil {
		r.cancelDebug()
	}
	// A commit in flight would recreate the image after it is removed.
	<-r.commitsDone

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	engine := r.o.deps.Engine
	err := errors.Join(
		engine.RemoveContainers(ctx, r.plan.committed),
		engine.RemoveImage(ctx, r.plan.committed),
	)
	if err != nil {
		r.o.deps.Logger.Warn(zerr.With(zerr.Wrap(err, domain.ErrCleanupFailure.Error()), "image", r.plan.committed).Error())
	}
}

type nopRefresher struct{}

func (nopRefresher) Refresh(context.Context, string)   {}
func (nopRefresher) HardRefresh(context.Context) error { return nil }
