// Package docker implements the container engine port on the Docker Engine API.
package docker

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

const rootHome = "/root"

var _ ports.ContainerEngine = (*Engine)(nil)

// Engine implements ports.ContainerEngine using the Docker Engine API.
type Engine struct {
	cli    client.APIClient
	logger ports.Logger
}

// NewEngine creates an Engine with a Docker client configured from the environment.
func NewEngine(logger ports.Logger) (*Engine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrNoContainerRuntime.Error())
	}
	return NewEngineFromClient(cli, logger), nil
}

// NewEngineFromClient wraps an existing Docker client.
func NewEngineFromClient(cli client.APIClient, logger ports.Logger) *Engine {
	return &Engine{cli: cli, logger: logger}
}

// Ping reports whether the daemon is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	if _, err := e.cli.Ping(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrNoContainerRuntime.Error())
	}
	return nil
}

// ImageDefaults returns the working directory and home directory of ref,
// pulling the image first when it is not present locally.
func (e *Engine) ImageDefaults(ctx context.Context, ref string) (domain.ImageDefaults, error) {
	info, err := e.cli.ImageInspect(ctx, ref)
	if errdefs.IsNotFound(err) {
		if pullErr := e.pull(ctx, ref); pullErr != nil {
			return domain.ImageDefaults{}, pullErr
		}
		info, err = e.cli.ImageInspect(ctx, ref)
	}
	if err != nil {
		return domain.ImageDefaults{}, zerr.With(zerr.Wrap(err, "failed to inspect image"), "image", ref)
	}

	var defaults domain.ImageDefaults
	if info.Config == nil {
		return defaults, nil
	}
	defaults.WorkingDir = info.Config.WorkingDir
	defaults.Home = homeDir(info.Config.Env, info.Config.User)
	return defaults, nil
}

// homeDir prefers an explicit HOME variable and otherwise derives it from the image user.
func homeDir(env []string, user string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "HOME="); ok && v != "" {
			return v
		}
	}
	name, _, _ := strings.Cut(user, ":")
	switch name {
	case "", "root", "0":
		return rootHome
	}
	if strings.TrimLeft(name, "0123456789") == "" {
		// A bare UID has no passwd entry to consult.
		return rootHome
	}
	return path.Join("/home", name)
}

func (e *Engine) pull(ctx context.Context, ref string) error {
	if e.logger != nil {
		e.logger.Info("pulling image " + ref)
	}
	resp, err := e.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to pull image"), "image", ref)
	}
	defer func() { _ = resp.Close() }()
	if _, err := io.Copy(io.Discard, resp); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to pull image"), "image", ref)
	}
	return nil
}

// RunningContainer returns the ID of the newest running container created from ref.
func (e *Engine) RunningContainer(ctx context.Context, ref string) (string, error) {
	list, err := e.cli.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("ancestor", ref), filters.Arg("status", "running")),
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to list containers"), "image", ref)
	}
	if len(list) == 0 {
		return "", zerr.With(domain.ErrNoRunningContainer, "image", ref)
	}
	return list[0].ID, nil
}

// Commit snapshots the container's filesystem as ref without pausing it.
func (e *Engine) Commit(ctx context.Context, containerID, ref string) error {
	if _, err := e.cli.ContainerCommit(ctx, containerID, container.CommitOptions{Reference: ref}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit container"), "container", containerID)
	}
	return nil
}

// ImageID returns the ID of ref, or an empty string if it does not exist.
func (e *Engine) ImageID(ctx context.Context, ref string) (string, error) {
	info, err := e.cli.ImageInspect(ctx, ref)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to inspect image"), "image", ref)
	}
	return info.ID, nil
}

// RemoveContainers force-removes every container created from ref.
func (e *Engine) RemoveContainers(ctx context.Context, ref string) error {
	list, err := e.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("ancestor", ref)),
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailure.Error()), "image", ref)
	}

	var errs []error
	for _, c := range list {
		err := e.cli.ContainerRemove(ctx, c.ID, container.RemoveOptions{Force: true})
		if err != nil && !errdefs.IsNotFound(err) {
			errs = append(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanupFailure.Error()), "container", c.ID))
		}
	}
	return errors.Join(errs...)
}

// RemoveImage deletes ref. A missing image is not an error.
func (e *Engine) RemoveImage(ctx context.Context, ref string) error {
	_, err := e.cli.ImageRemove(ctx, ref, image.RemoveOptions{Force: true, PruneChildren: true})
	if err != nil && !errdefs.IsNotFound(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanupFailure.Error()), "image", ref)
	}
	return nil
}

// FollowLogs streams the container's output to w until it exits or ctx is cancelled.
func (e *Engine) FollowLogs(ctx context.Context, containerID string, w io.Writer) error {
	info, err := e.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to inspect container"), "container", containerID)
	}

	rc, err := e.cli.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read container logs"), "container", containerID)
	}
	defer func() { _ = rc.Close() }()

	if info.Config != nil && info.Config.Tty {
		_, err = io.Copy(w, rc)
	} else {
		_, err = stdcopy.StdCopy(w, w, rc)
	}
	if err != nil && ctx.Err() == nil {
		return zerr.With(zerr.Wrap(err, "failed to read container logs"), "container", containerID)
	}
	return nil
}
