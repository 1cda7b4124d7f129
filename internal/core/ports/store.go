package ports

import (
	"io"

	"go.trai.ch/localci/internal/core/domain"
)

// JobStateStore defines the interface for persisting the last state of each job.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type JobStateStore interface {
	// Get retrieves the state of a job.
	// Returns nil, nil if not found.
	Get(root, job string) (*domain.JobState, error)

	// Put stores the state of a job.
	Put(root string, state domain.JobState) error

	// Reset removes every stored state under root.
	Reset(root string) error
}

// LogStore defines the interface for per-run job logs.
type LogStore interface {
	// Create starts a new log for job and returns it with its path.
	Create(root, job string) (io.WriteCloser, string, error)

	// List returns the logs of job, newest first.
	List(root, job string) ([]domain.LogEntry, error)
}
