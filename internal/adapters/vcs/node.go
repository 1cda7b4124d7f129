package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the unique identifier for the working tree Graft node.
const NodeID graft.ID = "adapter.working_tree"

func init() {
	graft.Register(graft.Node[ports.WorkingTree]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkingTree, error) {
			return NewGit(), nil
		},
	})
}
