package license

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID is the unique identifier for the license checker Graft node.
const NodeID graft.ID = "adapter.license"

func init() {
	graft.Register(graft.Node[ports.LicenseChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LicenseChecker, error) {
			return NewChecker(), nil
		},
	})
}
