// Package app implements the application layer for localci.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/localci/internal/adapters/detector"
	"go.trai.ch/localci/internal/adapters/render"
	"go.trai.ch/localci/internal/adapters/vcs"
	"go.trai.ch/localci/internal/adapters/watcher"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/engine/jobgraph"
	"go.trai.ch/localci/internal/engine/orchestrator"
	"go.trai.ch/localci/internal/engine/tree"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchDebounce is how long the config must stay unchanged before the tree is rebuilt.
const WatchDebounce = 300 * time.Millisecond

const defaultMaxLogs = 3

// JobRunner runs a single job.
type JobRunner interface {
	Run(ctx context.Context, req orchestrator.Request) (orchestrator.Result, error)
}

// Deps are the collaborators of an App.
type Deps struct {
	Loader      ports.ConfigLoader
	Runner      JobRunner
	States      ports.JobStateStore
	Logs        ports.LogStore
	License     ports.LicenseChecker
	Engine      ports.ContainerEngine
	Notifier    ports.Notifier
	WorkingTree ports.WorkingTree
	Watcher     ports.Watcher
	Renderer    *render.TreeRenderer
	Logger      ports.Logger
	// Mode is the detected output mode.
	Mode detector.OutputMode
	// ColorProfile styles the linear output prefixes. Nil means the ANSI
	// profile, or plain text under NO_COLOR.
	ColorProfile func() termenv.Profile
}

// App represents the main application logic.
type App struct {
	deps   Deps
	stdout io.Writer
	getwd  func() (string, error)
}

// New creates a new App instance writing to stdout.
func New(deps Deps) *App {
	if deps.Renderer == nil {
		deps.Renderer = render.NewTreeRenderer()
	}
	return &App{deps: deps, stdout: os.Stdout, getwd: os.Getwd}
}

// WithOutput redirects everything the App prints. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir makes the App resolve the repository from dir instead of the process cwd.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.deps.Logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Run executes job in a container and reports its verdict.
// A job that ran and failed returns domain.ErrJobExecutionFailed.
func (a *App) Run(ctx context.Context, job string, opts RunOptions) error {
	layout, err := a.layout(opts.Settings)
	if err != nil {
		return err
	}

	cfg, err := a.deps.Loader.Load(ctx, layout, ports.LoadOptions{Binary: opts.Binary})
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	cfg, err = a.resolveJobConfig(cfg, layout, job)
	if err != nil {
		return err
	}

	a.warnUncommitted(ctx, layout.Root, cfg, job)

	mode := detector.ResolveMode(a.deps.Mode, opts.OutputMode)
	noShell := opts.NoShell || mode == detector.ModeLinear

	var echo io.Writer = a.stdout
	var prefix *render.PrefixWriter
	if mode == detector.ModeLinear {
		if a.deps.ColorProfile != nil {
			prefix = render.NewPrefixWriterWithProfile(a.stdout, job, a.deps.ColorProfile)
		} else {
			prefix = render.NewPrefixWriter(a.stdout, job)
		}
		echo = prefix
	}

	model := tree.New(tree.Deps{
		Loader: a.deps.Loader,
		States: a.deps.States,
		Logs:   a.deps.Logs,
		Logger: a.deps.Logger,
		Binary: opts.Binary,
	}, layout)

	res, err := a.deps.Runner.Run(ctx, orchestrator.Request{
		Layout:   layout,
		Config:   cfg,
		Job:      job,
		Binary:   opts.Binary,
		NoShell:  noShell,
		Echo:     echo,
		Terminal: a.stdout,
		Tree:     model,
		DynamicJobs: func() (bool, error) {
			dyn, err := a.deps.Loader.LoadDynamic(layout)
			if err != nil || dyn == nil {
				return false, err
			}
			return len(dyn.Jobs) > 0, nil
		},
	})
	if prefix != nil {
		prefix.Flush()
	}
	if err != nil {
		return err
	}

	// Verdicts are reported by the output monitor as they happen.
	if !res.Status.Terminal() {
		a.deps.Notifier.JobFinished(job, res.Status, res.LogPath)
	}
	if res.Status == domain.JobFailed {
		return domain.ErrJobExecutionFailed
	}
	return nil
}

// resolveJobConfig returns the config declaring job. Jobs generated by a setup
// job live in the dynamic config.
func (a *App) resolveJobConfig(cfg *domain.PipelineConfig, layout domain.Layout, job string) (*domain.PipelineConfig, error) {
	graph, err := jobgraph.Build(cfg)
	if err != nil {
		return nil, err
	}
	if graph.Has(job) {
		return cfg, nil
	}

	dyn, err := a.deps.Loader.LoadDynamic(layout)
	if err != nil {
		return nil, err
	}
	if dyn != nil {
		if dynGraph, err := jobgraph.Build(dyn); err == nil && dynGraph.Has(job) {
			return dyn, nil
		}
	}
	return nil, zerr.With(domain.ErrJobNotFound, "job", job)
}

func (a *App) warnUncommitted(ctx context.Context, root string, cfg *domain.PipelineConfig, job string) {
	if a.deps.WorkingTree == nil {
		return
	}
	files, err := a.deps.WorkingTree.Uncommitted(ctx, root)
	if err != nil {
		// Not a git repository, or git is missing.
		return
	}
	if msg := vcs.Warning(job, files, jobgraph.CheckoutJobs(cfg)); msg != "" {
		a.deps.Notifier.Suggest(msg, "")
	}
}

// Jobs prints the job tree. With opts.Watch it redraws the tree after every
// config change until ctx is cancelled.
func (a *App) Jobs(ctx context.Context, opts JobsOptions) error {
	if opts.MaxLogs == 0 {
		opts.MaxLogs = defaultMaxLogs
	}
	renderOpts := render.TreeOptions{ExpandAll: opts.All, MaxLogs: opts.MaxLogs}

	layout, err := a.layout(opts.Settings)
	if err != nil {
		if !isConfigNotFound(err) {
			return err
		}
		return a.deps.Renderer.Render(a.stdout, warningSource{tree.WarningNode(tree.StageNoConfig, err)}, renderOpts)
	}

	model := tree.New(tree.Deps{
		Loader:  a.deps.Loader,
		States:  a.deps.States,
		Logs:    a.deps.Logs,
		License: a.deps.License,
		Engine:  a.deps.Engine,
		Binary:  opts.Binary,
	}, layout)

	if opts.Hard {
		_ = model.HardRefresh(ctx)
	} else {
		model.Refresh(ctx, "")
	}
	if err := a.deps.Renderer.Render(a.stdout, model, renderOpts); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, layout, model, renderOpts)
}

func (a *App) watch(ctx context.Context, layout domain.Layout, model *tree.Model, opts render.TreeOptions) error {
	configPath := layout.ConfigPath()
	g, ctx := errgroup.WithContext(ctx)
	if err := a.deps.Watcher.Start(ctx, filepath.Dir(configPath)); err != nil {
		return err
	}
	defer func() { _ = a.deps.Watcher.Stop() }()

	changed := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(WatchDebounce, func(paths []string) {
		for _, p := range paths {
			if filepath.Base(p) == filepath.Base(configPath) {
				select {
				case changed <- struct{}{}:
				default:
				}
				return
			}
		}
	})
	defer debouncer.Stop()

	a.deps.Logger.Info("watching " + configPath)

	g.Go(func() error {
		for event := range a.deps.Watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
			}
			_ = model.HardRefresh(ctx)
			_, _ = fmt.Fprintln(a.stdout)
			if err := a.deps.Renderer.Render(a.stdout, model, opts); err != nil {
				return err
			}
		}
	})
	return g.Wait()
}

// Logs prints the latest log of job, or follows its running container.
func (a *App) Logs(ctx context.Context, job string, opts LogsOptions) error {
	layout, err := a.layout(opts.Settings)
	if err != nil {
		return err
	}

	if opts.Follow {
		cfg, err := a.deps.Loader.Load(ctx, layout, ports.LoadOptions{Binary: opts.Binary})
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}
		if cfg, err = a.resolveJobConfig(cfg, layout, job); err != nil {
			return err
		}
		image, err := jobgraph.PrimaryImage(cfg, job)
		if err != nil {
			return err
		}
		id, err := a.deps.Engine.RunningContainer(ctx, image)
		if err != nil {
			return zerr.With(err, "job", job)
		}
		return a.deps.Engine.FollowLogs(ctx, id, a.stdout)
	}

	entries, err := a.deps.Logs.List(layout.Root, job)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return zerr.With(domain.ErrNoLogs, "job", job)
	}

	f, err := os.Open(entries[0].Path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open job log"), "path", entries[0].Path)
	}
	defer func() { _ = f.Close() }()
	_, err = io.Copy(a.stdout, f)
	return err
}

// Clean removes the shared volume and the process file. With opts.All it
// removes every file the tool keeps in the repository.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	layout, err := a.layout(opts.Settings)
	if err != nil {
		return err
	}

	var errs error
	remove := func(path string, name string) {
		a.deps.Logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.deps.Logger.Info(fmt.Sprintf("removed %s", name))
	}

	if opts.All {
		if err := a.deps.States.Reset(layout.Root); err != nil {
			errs = errors.Join(errs, err)
		}
		remove(layout.StateDir(), "tool state")
		return errs
	}
	remove(layout.VolumeDir(), "shared volume")
	remove(layout.ProcessFilePath(), "process file")
	return errs
}

// layout finds the repository the command applies to.
func (a *App) layout(s Settings) (domain.Layout, error) {
	cwd, err := a.getwd()
	if err != nil {
		return domain.Layout{}, zerr.Wrap(err, "failed to get working directory")
	}

	if s.Config == "" {
		return a.deps.Loader.Locate(cwd)
	}

	config, err := filepath.Abs(s.Config)
	if err != nil {
		return domain.Layout{}, zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "config", s.Config)
	}
	layout, err := a.deps.Loader.Locate(cwd)
	if err != nil {
		layout = domain.NewLayout(cwd)
	}
	layout.Config = config
	return layout, nil
}

// isConfigNotFound matches the sentinel through zerr metadata wrappers.
func isConfigNotFound(err error) bool {
	return strings.Contains(err.Error(), domain.ErrConfigNotFound.Error())
}

// warningSource is a tree holding a single warning.
type warningSource struct {
	node domain.TreeNode
}

func (w warningSource) Children(node *domain.TreeNode) []domain.TreeNode {
	if node != nil {
		return nil
	}
	return []domain.TreeNode{w.node}
}
