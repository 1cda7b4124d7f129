package ports

import "context"

// WorkingTree inspects the repository a job is run from.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type WorkingTree interface {
	// Uncommitted returns tracked files with uncommitted changes, excluding the pipeline config.
	Uncommitted(ctx context.Context, root string) ([]string, error)
}
