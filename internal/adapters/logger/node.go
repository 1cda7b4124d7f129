package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/localci/internal/core/ports"
)

// NodeID identifies the logger in the dependency graph.
const NodeID graft.ID = "adapter.logger"

// EnvLogFormat selects the initial log format. "json" enables JSON logs
// before any flag is parsed.
const EnvLogFormat = "LOCALCI_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return NewFromEnv(os.Getenv), nil
		},
	})
}

// NewFromEnv creates a stderr Logger whose format follows EnvLogFormat.
func NewFromEnv(getenv func(string) string) *Logger {
	l := New()
	if getenv(EnvLogFormat) == "json" {
		l.SetJSON(true)
	}
	return l
}
