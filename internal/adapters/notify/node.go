package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the unique identifier for the notifier Graft node.
const NodeID graft.ID = "adapter.notifier"

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Notifier, error) {
			return NewTerminal(nil), nil
		},
	})
}
