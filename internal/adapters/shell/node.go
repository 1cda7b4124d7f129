package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the unique identifier for the terminal launcher Graft node.
const NodeID graft.ID = "adapter.terminal_launcher"

func init() {
	graft.Register(graft.Node[ports.TerminalLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.TerminalLauncher, error) {
			return NewLauncher(), nil
		},
	})
}
