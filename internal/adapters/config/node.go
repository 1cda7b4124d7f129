package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/adapters/logger"
	"go.trai.ch/localci/internal/core/ports"
)

const (
	// NodeID is the graft node ID for the config loader.
	NodeID graft.ID = "adapter.config_loader"
	// WriterNodeID is the graft node ID for the process file writer.
	WriterNodeID graft.ID = "adapter.process_writer"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, NewCompiler()), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessWriter, error) {
			return NewWriter(), nil
		},
	})
}
