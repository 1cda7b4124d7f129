// Package tree presents the jobs of a pipeline as a tree and tracks their state.
package tree

import (
	"context"
	"sync"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/engine/jobgraph"
)

// Change is sent to subscribers when part of the tree changed.
// A nil Node means the whole tree was reloaded.
type Change struct {
	Node *domain.TreeNode
}

// Deps are the collaborators of a Model.
type Deps struct {
	Loader  ports.ConfigLoader
	States  ports.JobStateStore
	Logs    ports.LogStore
	License ports.LicenseChecker
	Engine  ports.ContainerEngine
	Logger  ports.Logger
	// Binary is the job runner executable used to compile the config.
	Binary string
}

// Model is the job tree of one repository.
type Model struct {
	deps   Deps
	layout domain.Layout

	mu      sync.RWMutex
	cfg     *domain.PipelineConfig
	graph   *jobgraph.Graph
	warning *domain.TreeNode
	running string
	subs    []chan Change
}

// New creates an empty Model. Call HardRefresh or Refresh to populate it.
func New(deps Deps, layout domain.Layout) *Model {
	return &Model{deps: deps, layout: layout}
}

// Subscribe returns a channel receiving tree changes.
// Changes are dropped when the subscriber falls behind.
func (m *Model) Subscribe() <-chan Change {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Change, 16)
	m.subs = append(m.subs, ch)
	return ch
}

// Config returns the compiled config the tree was built from.
func (m *Model) Config() *domain.PipelineConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Graph returns the job graph, or nil if the tree failed to load.
func (m *Model) Graph() *jobgraph.Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.graph
}

// Warning returns the entry explaining why the tree is empty, if any.
func (m *Model) Warning() (domain.TreeNode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.warning == nil {
		return domain.TreeNode{}, false
	}
	return *m.warning, true
}

// SetRunning marks job as the job of the active run. An empty job clears the mark.
func (m *Model) SetRunning(job string) {
	m.mu.Lock()
	m.running = job
	m.mu.Unlock()
	m.notify(m.nodeFor(job))
}

// Refresh reloads the job list and logs from the cached compiled config.
// An empty job reloads the whole tree.
func (m *Model) Refresh(ctx context.Context, job string) {
	if err := m.load(ctx, false); err != nil && m.deps.Logger != nil {
		m.deps.Logger.Error(err)
	}
	m.notify(m.nodeFor(job))
}

// HardRefresh recompiles the source config and reloads the whole tree.
func (m *Model) HardRefresh(ctx context.Context) error {
	err := m.load(ctx, true)
	m.notify(nil)
	return err
}

func (m *Model) load(ctx context.Context, hard bool) error {
	var warning *domain.TreeNode
	fail := func(stage Stage, err error) error {
		w := WarningNode(stage, err)
		warning = &w
		return err
	}

	var cfg *domain.PipelineConfig
	var graph *jobgraph.Graph
	err := func() error {
		if m.deps.License != nil {
			if err := m.deps.License.Check(ctx); err != nil {
				return fail(StageLicense, err)
			}
		}
		if m.deps.Engine != nil {
			if err := m.deps.Engine.Ping(ctx); err != nil {
				return fail(StageContainerRuntime, err)
			}
		}
		var err error
		if cfg, err = m.deps.Loader.Load(ctx, m.layout, ports.LoadOptions{Hard: hard, Binary: m.deps.Binary}); err != nil {
			return fail(StageProcessFile, err)
		}
		if graph, err = jobgraph.Build(cfg); err != nil {
			return fail(StageProcessFile, err)
		}
		return nil
	}()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.warning = warning
	if err != nil {
		m.cfg, m.graph = nil, nil
		return err
	}
	m.cfg, m.graph = cfg, graph
	return nil
}

// Children returns the entries under node; a nil node is the root.
// The root lists the jobs without prerequisites. A job lists its logs,
// newest first, then the jobs whose last prerequisite it is.
func (m *Model) Children(node *domain.TreeNode) []domain.TreeNode {
	m.mu.RLock()
	graph, warning := m.graph, m.warning
	m.mu.RUnlock()

	if node == nil {
		if warning != nil {
			return []domain.TreeNode{*warning}
		}
		if graph == nil {
			return nil
		}
		return m.jobNodes(graph.Roots())
	}
	if node.Kind != domain.NodeJob || graph == nil {
		return nil
	}

	var out []domain.TreeNode
	if m.deps.Logs != nil {
		entries, err := m.deps.Logs.List(m.layout.Root, node.Job)
		if err != nil && m.deps.Logger != nil {
			m.deps.Logger.Error(err)
		}
		for _, e := range entries {
			out = append(out, domain.TreeNode{Kind: domain.NodeLog, Job: e.Job, Label: e.Name, Path: e.Path})
		}
	}
	return append(out, m.jobNodes(graph.Dependents(node.Job))...)
}

// HasChildren reports whether job has logs or nested jobs.
func (m *Model) HasChildren(job string) bool {
	m.mu.RLock()
	graph := m.graph
	m.mu.RUnlock()

	if graph == nil {
		return false
	}
	if graph.HasChildren(job) {
		return true
	}
	if m.deps.Logs == nil {
		return false
	}
	entries, err := m.deps.Logs.List(m.layout.Root, job)
	return err == nil && len(entries) > 0
}

func (m *Model) jobNodes(jobs []string) []domain.TreeNode {
	out := make([]domain.TreeNode, 0, len(jobs))
	for _, job := range jobs {
		if n := m.nodeFor(job); n != nil {
			out = append(out, *n)
		}
	}
	return out
}

func (m *Model) nodeFor(job string) *domain.TreeNode {
	if job == "" {
		return nil
	}
	m.mu.RLock()
	running := m.running
	m.mu.RUnlock()

	node := &domain.TreeNode{
		Kind:    domain.NodeJob,
		Job:     job,
		Label:   job,
		Status:  domain.JobIdle,
		Running: job == running,
	}
	if m.deps.States == nil {
		return node
	}
	state, err := m.deps.States.Get(m.layout.Root, job)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Error(err)
		}
		return node
	}
	if state != nil {
		node.Status = state.Status
		node.Expanded = state.Expanded
	}
	if node.Running {
		node.Status = domain.JobRunning
	}
	return node
}

func (m *Model) notify(node *domain.TreeNode) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.subs {
		select {
		case ch <- Change{Node: node}:
		default:
		}
	}
}
