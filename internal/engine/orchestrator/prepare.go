package orchestrator

import (
	"context"
	"os"
	"path"
	"strings"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/engine/jobgraph"
	"go.trai.ch/localci/internal/engine/rewriter"
	"go.trai.ch/zerr"
)

// plan is the outcome of the Preparing phase.
type plan struct {
	image      string
	committed  string
	defaults   domain.ImageDefaults
	volumeSpec string
	config     *domain.PipelineConfig
	job        domain.JobSpec
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (*plan, error) {
	if err := o.deps.License.Check(ctx); err != nil {
		return nil, err
	}
	if err := o.deps.Engine.Ping(ctx); err != nil {
		return nil, err
	}

	job, ok := req.Config.Job(req.Job)
	if !ok {
		return nil, zerr.With(domain.ErrJobNotFound, "job", req.Job)
	}
	image, err := jobgraph.PrimaryImage(req.Config, req.Job)
	if err != nil {
		return nil, err
	}

	defaults, err := o.deps.Engine.ImageDefaults(ctx, image)
	if err != nil {
		o.deps.Logger.Warn("could not inspect " + image + ", assuming " + domain.DefaultWorkingDirectory)
		defaults = domain.ImageDefaults{}
	}
	if defaults.WorkingDir == "" {
		defaults.WorkingDir = domain.DefaultWorkingDirectory
	}
	if defaults.Home == "" {
		defaults.Home = "/root"
	}

	volume := req.Layout.VolumeDir()
	if jobgraph.IsSoleCheckoutJob(req.Config, req.Job) {
		// A lone checkout job recreates the workspace; stale files would make cp fail.
		if err := os.RemoveAll(volume); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrVolumeFailed.Error()), "path", volume)
		}
	}
	if err := os.MkdirAll(volume, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrVolumeFailed.Error()), "path", volume)
	}

	rewritten, warnings, err := rewriter.RewriteConfig(req.Config, req.Job, rewriter.Options{
		WorkingDir: defaults.WorkingDir,
		Storage:    domain.ContainerStoragePath,
	})
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		o.deps.Logger.Warn(w.Error())
	}
	if err := o.deps.Writer.WriteProcessFile(req.Layout.ProcessFilePath(), rewritten); err != nil {
		return nil, err
	}

	return &plan{
		image:      image,
		committed:  domain.CommittedImage(req.Job),
		defaults:   defaults,
		volumeSpec: volume + ":" + mountTarget(job, defaults),
		config:     rewritten,
		job:        rewritten.Jobs[req.Job],
	}, nil
}

// mountTarget returns the container path the shared volume is mounted at.
// Checkout jobs populate the workspace, so they mount it at their attach
// target or the storage path. Other jobs mount it where they attach it.
func mountTarget(job domain.JobSpec, defaults domain.ImageDefaults) string {
	at, _ := job.AttachPath()
	if at == "." {
		at = ""
	}

	target := at
	switch {
	case job.HasCheckout() && at == "":
		target = domain.ContainerStoragePath
	case at == "":
		target = job.WorkingDirectory
		if target == "" {
			target = defaults.WorkingDir
		}
	}
	return absolute(target, defaults)
}

func absolute(p string, defaults domain.ImageDefaults) string {
	switch {
	case p == "~":
		return defaults.Home
	case strings.HasPrefix(p, "~/"):
		return path.Join(defaults.Home, p[2:])
	case path.IsAbs(p):
		return path.Clean(p)
	default:
		return path.Join(absolute(defaults.WorkingDir, domain.ImageDefaults{Home: defaults.Home, WorkingDir: "/"}), p)
	}
}
