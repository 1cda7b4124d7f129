package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/docker"   //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/license"  //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/notify"   //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/store"    //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/vcs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			orchestrator.NodeID,
			store.StateNodeID,
			store.LogNodeID,
			license.NodeID,
			docker.NodeID,
			notify.NodeID,
			vcs.NodeID,
			watcher.NodeID,
			render.NodeID,
			detector.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	states, err := graft.Dep[ports.JobStateStore](ctx)
	if err != nil {
		return nil, err
	}
	logs, err := graft.Dep[ports.LogStore](ctx)
	if err != nil {
		return nil, err
	}
	lic, err := graft.Dep[ports.LicenseChecker](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[ports.ContainerEngine](ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	wt, err := graft.Dep[ports.WorkingTree](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[*render.TreeRenderer](ctx)
	if err != nil {
		return nil, err
	}
	mode, err := graft.Dep[detector.OutputMode](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Loader:      loader,
		Runner:      runner,
		States:      states,
		Logs:        logs,
		License:     lic,
		Engine:      engine,
		Notifier:    notifier,
		WorkingTree: wt,
		Watcher:     w,
		Renderer:    renderer,
		Logger:      log,
		Mode:        mode,
	}), nil
}
