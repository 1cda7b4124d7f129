package render

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tree renderer Graft node.
const NodeID graft.ID = "adapter.tree_renderer"

func init() {
	graft.Register(graft.Node[*TreeRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*TreeRenderer, error) {
			return NewTreeRenderer(), nil
		},
	})
}
