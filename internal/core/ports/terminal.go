package ports

import (
	"context"
	"io"

	"go.trai.ch/localci/internal/core/domain"
)

// TerminalSpec describes a process to start in a pseudo-terminal.
type TerminalSpec struct {
	// Role identifies the terminal within a run.
	Role domain.TerminalRole
	// Args is the command line, starting with the executable.
	Args []string
	// Dir is the working directory of the process.
	Dir string
	// Env is appended to the current environment.
	Env []string
	// Output receives everything the process writes.
	Output io.Writer
	// Interactive connects the user's terminal to the process.
	Interactive bool
}

// Terminal is a running process attached to a pseudo-terminal.
type Terminal interface {
	// Wait blocks until the process exits and returns its exit code.
	Wait() int
	// Close kills the process. It is safe to call more than once.
	Close() error
}

// TerminalLauncher starts terminals.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type TerminalLauncher interface {
	// Launch starts the process described by spec.
	// It returns domain.ErrProcessSpawnFailure when the process cannot start.
	Launch(ctx context.Context, spec TerminalSpec) (Terminal, error)
}
