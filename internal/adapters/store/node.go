package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

const (
	// StateNodeID is the unique identifier for the job state store Graft node.
	StateNodeID graft.ID = "adapter.job_state_store"
	// LogNodeID is the unique identifier for the log store Graft node.
	LogNodeID graft.ID = "adapter.log_store"
)

func init() {
	graft.Register(graft.Node[ports.JobStateStore]{
		ID:        StateNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JobStateStore, error) {
			return NewStateStore(), nil
		},
	})

	graft.Register(graft.Node[ports.LogStore]{
		ID:        LogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LogStore, error) {
			return NewLogStore(), nil
		},
	})
}
