package ports

import (
	"context"
	"io"

	"go.trai.ch/localci/internal/core/domain"
)

// ContainerEngine defines the non-interactive container engine operations.
//
//go:generate mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type ContainerEngine interface {
	// Ping returns domain.ErrNoContainerRuntime when the engine is unreachable.
	Ping(ctx context.Context) error

	// ImageDefaults returns the working directory and home directory of an image.
	ImageDefaults(ctx context.Context, image string) (domain.ImageDefaults, error)

	// RunningContainer returns the id of a running container created from image.
	// It returns domain.ErrNoRunningContainer when there is none.
	RunningContainer(ctx context.Context, image string) (string, error)

	// Commit snapshots the container into ref.
	Commit(ctx context.Context, containerID, ref string) error

	// ImageID returns the id of ref, or "" when it does not exist.
	ImageID(ctx context.Context, ref string) (string, error)

	// RemoveContainers force-removes every container created from ref.
	RemoveContainers(ctx context.Context, ref string) error

	// RemoveImage removes ref. A missing image is not an error.
	RemoveImage(ctx context.Context, ref string) error

	// FollowLogs copies the container's output to w until it exits or ctx is done.
	FollowLogs(ctx context.Context, containerID string, w io.Writer) error
}
