package docker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/adapters/logger"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the graft node ID for the container engine.
const NodeID graft.ID = "adapter.container_engine"

func init() {
	graft.Register(graft.Node[ports.ContainerEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ContainerEngine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := NewEngine(log)
			if err != nil {
				return nil, err
			}
			return engine, nil
		},
	})
}
