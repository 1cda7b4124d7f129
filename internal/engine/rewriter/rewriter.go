// Package rewriter replaces the workspace and cache directives of a job with
// shell commands over the shared volume.
package rewriter

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
)

// Step names of the synthesized run steps.
const (
	AttachWorkspaceName    = "Attach workspace"
	PersistToWorkspaceName = "Persist to workspace"
	RestoreCacheName       = "Restore cache"
	SaveCacheName          = "Save cache"
)

// Options are the per-run inputs of the rewrite.
type Options struct {
	// WorkingDir replaces an empty or "." attach_workspace target when the job
	// has no working_directory.
	WorkingDir string
	// Storage is the container path of the shared volume.
	Storage string
}

func (o Options) storage() string {
	if o.Storage == "" {
		return domain.ContainerStoragePath
	}
	return o.Storage
}

// Rewrite returns a copy of job in which attach_workspace, persist_to_workspace,
// restore_cache and save_cache are replaced by run steps.
// saves are the save_cache steps of the whole config. Restores without a matching
// save pass through unchanged and are reported in the returned warnings.
func Rewrite(job domain.JobSpec, saves []domain.SaveCacheStep, opts Options) (domain.JobSpec, []error) {
	if len(job.Steps) == 0 {
		return job, nil
	}

	var warnings []error
	steps := make([]domain.Step, 0, len(job.Steps))
	for _, step := range job.Steps {
		switch s := step.(type) {
		case domain.AttachWorkspaceStep:
			steps = append(steps, attachWorkspace(s, workingDir(job, opts), opts.storage()))
		case domain.PersistToWorkspaceStep:
			steps = append(steps, persistToWorkspace(s, opts.storage()))
		case domain.RestoreCacheStep:
			restored, err := restoreCache(s, saves, opts.storage())
			if err != nil {
				warnings = append(warnings, err)
			}
			steps = append(steps, restored)
		case domain.SaveCacheStep:
			steps = append(steps, saveCache(s, opts.storage()))
		case domain.CheckoutStep, domain.RunStep, domain.OpaqueStep:
			steps = append(steps, s)
		default:
			panic(fmt.Sprintf("rewriter: unhandled step type %T", step))
		}
	}
	return job.WithSteps(steps), warnings
}

// RewriteConfig returns a copy of cfg with the named job rewritten.
func RewriteConfig(cfg *domain.PipelineConfig, name string, opts Options) (*domain.PipelineConfig, []error, error) {
	job, ok := cfg.Job(name)
	if !ok {
		return nil, nil, zerr.With(domain.ErrJobNotFound, "job", name)
	}
	rewritten, warnings := Rewrite(job, SaveCacheSteps(cfg), opts)
	return cfg.WithJob(name, rewritten), warnings, nil
}

// SaveCacheSteps returns every save_cache step of cfg, ordered by job name.
func SaveCacheSteps(cfg *domain.PipelineConfig) []domain.SaveCacheStep {
	names := make([]string, 0, len(cfg.Jobs))
	for name := range cfg.Jobs {
		names = append(names, name)
	}
	slices.Sort(names)

	var saves []domain.SaveCacheStep
	for _, name := range names {
		for _, step := range cfg.Jobs[name].Steps {
			if s, ok := step.(domain.SaveCacheStep); ok {
				saves = append(saves, s)
			}
		}
	}
	return saves
}

// CacheDir returns the shell word for the directory a cache key is stored in.
func CacheDir(storage, key string) string {
	return `"` + path.Join(storage, ResolveKey(key)) + `"`
}

func workingDir(job domain.JobSpec, opts Options) string {
	switch {
	case job.WorkingDirectory != "":
		return job.WorkingDirectory
	case opts.WorkingDir != "":
		return opts.WorkingDir
	default:
		return domain.DefaultWorkingDirectory
	}
}

func attachWorkspace(s domain.AttachWorkspaceStep, defaultAt, storage string) domain.RunStep {
	at := s.At
	if at == "" || at == "." {
		at = defaultAt
	}
	src := storage + "/."
	return domain.RunStep{
		Name: AttachWorkspaceName,
		Command: fmt.Sprintf("if [ -d %s ]; then mkdir -p %s; cp -rn %s %s || cp -ru %s %s; fi",
			storage, at, src, at, src, at),
	}
}

func persistToWorkspace(s domain.PersistToWorkspaceStep, storage string) domain.RunStep {
	root := s.Root
	if root == "" {
		root = "."
	}

	lines := make([]string, 0, len(s.Paths))
	for _, p := range s.Paths {
		src := path.Join(root, p)
		if p == "." {
			src = root + "/."
		}
		dest := storage
		if dir := path.Dir(path.Clean(p)); dir != "." {
			dest = path.Join(storage, dir)
		}
		// BusyBox cp has no -n.
		lines = append(lines, fmt.Sprintf("mkdir -p %s; cp -rn %s %s || cp -ru %s %s", dest, src, dest, src, dest))
	}
	return domain.RunStep{Name: PersistToWorkspaceName, Command: strings.Join(lines, "\n")}
}

func saveCache(s domain.SaveCacheStep, storage string) domain.RunStep {
	dest := CacheDir(storage, s.Key)
	lines := make([]string, 0, len(s.Paths))
	for _, p := range s.Paths {
		lines = append(lines, fmt.Sprintf("mkdir -p %s; cp -rn %s %s || cp -ru %s %s", dest, p, dest, p, dest))
	}
	return domain.RunStep{Name: SaveCacheName, Command: strings.Join(lines, "\n")}
}

func restoreCache(s domain.RestoreCacheStep, saves []domain.SaveCacheStep, storage string) (domain.Step, error) {
	for _, key := range s.Candidates() {
		for _, save := range saves {
			if !matches(key, save.Key) {
				continue
			}
			dir := CacheDir(storage, save.Key)
			lines := make([]string, 0, len(save.Paths))
			for _, p := range save.Paths {
				clean := path.Clean(p)
				src := strings.TrimSuffix(dir, `"`) + "/" + path.Base(clean) + `"`
				parent := path.Dir(clean)
				lines = append(lines, fmt.Sprintf("if [ -e %s ]; then mkdir -p %s; cp -rn %s %s || cp -ru %s %s; fi",
					src, parent, src, parent, src, parent))
			}
			return domain.RunStep{Name: RestoreCacheName, Command: strings.Join(lines, "\n")}, nil
		}
	}
	return s, zerr.With(domain.ErrCacheKeyUnresolved, "keys", strings.Join(s.Candidates(), ", "))
}
