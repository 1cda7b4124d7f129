package config

import (
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encode renders cfg as a compiled config document.
// Steps decoded from a document keep their original form.
func Encode(cfg *domain.PipelineConfig) ([]byte, error) {
	doc := make(map[string]any, len(cfg.Extra)+2)
	for k, v := range cfg.Extra {
		doc[k] = v
	}
	if cfg.Setup {
		doc["setup"] = true
	}
	jobs := make(map[string]any, len(cfg.Jobs))
	for name, job := range cfg.Jobs {
		jobs[name] = encodeJob(job)
	}
	doc["jobs"] = jobs

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProcessFileWriteFailed.Error())
	}
	return data, nil
}

// EncodeJob renders a single job definition.
func EncodeJob(job domain.JobSpec) ([]byte, error) {
	data, err := yaml.Marshal(encodeJob(job))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProcessFileWriteFailed.Error())
	}
	return data, nil
}

func encodeJob(job domain.JobSpec) map[string]any {
	out := make(map[string]any, len(job.Extra)+3)
	for k, v := range job.Extra {
		out[k] = v
	}
	if len(job.Docker) > 0 {
		docker := make([]any, 0, len(job.Docker))
		for _, img := range job.Docker {
			if img.Raw != nil {
				docker = append(docker, img.Raw)
				continue
			}
			docker = append(docker, map[string]any{"image": img.Image})
		}
		out["docker"] = docker
	}
	if job.WorkingDirectory != "" {
		out["working_directory"] = job.WorkingDirectory
	}
	if len(job.Steps) > 0 {
		steps := make([]any, 0, len(job.Steps))
		for _, s := range job.Steps {
			if raw := encodeStep(s); raw != nil {
				steps = append(steps, raw)
			}
		}
		out["steps"] = steps
	}
	return out
}

func encodeStep(s domain.Step) any {
	if raw := s.Source(); raw != nil {
		return raw
	}
	switch s := s.(type) {
	case domain.CheckoutStep:
		return "checkout"
	case domain.RunStep:
		run := map[string]any{"command": s.Command}
		if s.Name != "" {
			run["name"] = s.Name
		}
		return map[string]any{"run": run}
	case domain.AttachWorkspaceStep:
		return map[string]any{"attach_workspace": map[string]any{"at": s.At}}
	case domain.PersistToWorkspaceStep:
		return map[string]any{"persist_to_workspace": map[string]any{"root": s.Root, "paths": s.Paths}}
	case domain.RestoreCacheStep:
		args := map[string]any{}
		if s.Key != "" {
			args["key"] = s.Key
		}
		if len(s.Keys) > 0 {
			args["keys"] = s.Keys
		}
		return map[string]any{"restore_cache": args}
	case domain.SaveCacheStep:
		return map[string]any{"save_cache": map[string]any{"key": s.Key, "paths": s.Paths}}
	}
	return nil
}
