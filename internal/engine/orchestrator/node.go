package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/adapters/config"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/docker"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/license"   //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/logger"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/notify"    //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/shell"     //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/store"     //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/adapters/telemetry" //nolint:depguard // Wired in engine layer
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			docker.NodeID,
			shell.NodeID,
			config.WriterNodeID,
			store.StateNodeID,
			store.LogNodeID,
			license.NodeID,
			notify.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Orchestrator, error) {
	engine, err := graft.Dep[ports.ContainerEngine](ctx)
	if err != nil {
		return nil, err
	}
	launcher, err := graft.Dep[ports.TerminalLauncher](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.ProcessWriter](ctx)
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
	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		Engine:   engine,
		Launcher: launcher,
		Writer:   writer,
		States:   states,
		Logs:     logs,
		License:  lic,
		Notifier: notifier,
		Tracer:   tracer,
		Logger:   log,
	}), nil
}
