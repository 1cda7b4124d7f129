package app

import (
	"os"

	"go.trai.ch/localci/internal/core/domain"
)

// Environment variables providing flag defaults.
const (
	EnvBinary = "LOCALCI_BINARY"
	EnvConfig = "LOCALCI_CONFIG"
)

// Settings are shared by every command.
type Settings struct {
	// Binary is the job runner executable.
	Binary string
	// Config overrides the source config path.
	Config string
}

// DefaultSettings reads the defaults from the environment.
func DefaultSettings() Settings {
	s := Settings{
		Binary: os.Getenv(EnvBinary),
		Config: os.Getenv(EnvConfig),
	}
	if s.Binary == "" {
		s.Binary = domain.DefaultBinary
	}
	return s
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	Settings
	// NoShell skips the interactive debug sessions.
	NoShell bool
	// OutputMode is one of auto, shell or linear.
	OutputMode string
}

// JobsOptions configuration for the Jobs method.
type JobsOptions struct {
	Settings
	// Hard recompiles the config instead of using the cached output.
	Hard bool
	// Watch redraws the tree whenever the config changes.
	Watch bool
	// All expands every job.
	All bool
	// MaxLogs limits the logs listed per job.
	MaxLogs int
}

// LogsOptions configuration for the Logs method.
type LogsOptions struct {
	Settings
	// Follow streams the output of the job's running container.
	Follow bool
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Settings
	// All removes logs, job states and cached configs too.
	All bool
}
