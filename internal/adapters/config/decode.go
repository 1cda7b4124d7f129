package config

import (
	"fmt"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Decode parses a compiled config into the domain model.
func Decode(data []byte) (*domain.PipelineConfig, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedConfig.Error())
	}
	if len(doc.Jobs) == 0 {
		return nil, zerr.With(domain.ErrMalformedConfig, "reason", "no jobs")
	}

	cfg := &domain.PipelineConfig{
		Jobs:  make(map[string]domain.JobSpec, len(doc.Jobs)),
		Setup: doc.Setup,
		Extra: doc.Rest,
	}
	for name, dto := range doc.Jobs {
		if dto == nil {
			dto = &JobDTO{}
		}
		cfg.Jobs[name] = decodeJob(name, dto)
	}

	if doc.Workflows.Kind != 0 {
		workflows, err := decodeWorkflows(&doc.Workflows)
		if err != nil {
			return nil, err
		}
		cfg.Workflows = workflows
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra["workflows"] = &doc.Workflows
	}
	return cfg, nil
}

func decodeJob(name string, dto *JobDTO) domain.JobSpec {
	job := domain.JobSpec{
		Name:             name,
		WorkingDirectory: dto.WorkingDirectory,
		Extra:            dto.Rest,
	}
	for _, raw := range dto.Docker {
		img := domain.DockerImage{Raw: raw}
		if m, ok := raw.(map[string]any); ok {
			img.Image = stringField(m, "image")
		}
		job.Docker = append(job.Docker, img)
	}
	for _, raw := range dto.Steps {
		job.Steps = append(job.Steps, decodeStep(raw))
	}
	return job
}

func decodeStep(raw any) domain.Step {
	switch v := raw.(type) {
	case string:
		if v == "checkout" {
			return domain.CheckoutStep{Raw: raw}
		}
		return domain.OpaqueStep{Raw: raw}
	case map[string]any:
		if len(v) != 1 {
			return domain.OpaqueStep{Raw: raw}
		}
		for kind, body := range v {
			return decodeNamedStep(kind, body, raw)
		}
	}
	return domain.OpaqueStep{Raw: raw}
}

func decodeNamedStep(kind string, body, raw any) domain.Step {
	args, _ := body.(map[string]any)
	switch kind {
	case "checkout":
		return domain.CheckoutStep{Raw: raw}
	case "attach_workspace":
		return domain.AttachWorkspaceStep{At: stringField(args, "at"), Raw: raw}
	case "persist_to_workspace":
		return domain.PersistToWorkspaceStep{
			Root:  stringField(args, "root"),
			Paths: stringsField(args, "paths"),
			Raw:   raw,
		}
	case "restore_cache":
		return domain.RestoreCacheStep{
			Key:  stringField(args, "key"),
			Keys: stringsField(args, "keys"),
			Raw:  raw,
		}
	case "save_cache":
		return domain.SaveCacheStep{
			Key:   stringField(args, "key"),
			Paths: stringsField(args, "paths"),
			Raw:   raw,
		}
	case "run":
		if cmd, ok := body.(string); ok {
			return domain.RunStep{Command: cmd, Raw: raw}
		}
		return domain.RunStep{
			Name:    stringField(args, "name"),
			Command: stringField(args, "command"),
			Raw:     raw,
		}
	}
	return domain.OpaqueStep{Raw: raw}
}

// decodeWorkflows keeps the declaration order of workflows and their jobs.
func decodeWorkflows(node *yaml.Node) ([]domain.Workflow, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrMalformedConfig, "reason", "workflows is not a mapping")
	}

	var out []domain.Workflow
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i].Value, node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			// The version key and other scalars are not workflows.
			continue
		}
		wf := domain.Workflow{Name: name}
		jobs := mappingValue(body, "jobs")
		if jobs == nil {
			out = append(out, wf)
			continue
		}
		if jobs.Kind != yaml.SequenceNode {
			return nil, zerr.With(domain.ErrMalformedConfig, "workflow", name)
		}
		for _, entry := range jobs.Content {
			job, err := decodeWorkflowJob(entry)
			if err != nil {
				return nil, zerr.With(err, "workflow", name)
			}
			wf.Jobs = append(wf.Jobs, job)
		}
		out = append(out, wf)
	}
	return out, nil
}

func decodeWorkflowJob(entry *yaml.Node) (domain.WorkflowJob, error) {
	switch entry.Kind {
	case yaml.ScalarNode:
		return domain.WorkflowJob{Name: entry.Value}, nil
	case yaml.MappingNode:
		if len(entry.Content) != 2 {
			break
		}
		job := domain.WorkflowJob{Name: entry.Content[0].Value}
		var dto workflowJobDTO
		if entry.Content[1].Kind == yaml.MappingNode {
			if err := entry.Content[1].Decode(&dto); err != nil {
				return job, zerr.Wrap(err, domain.ErrMalformedConfig.Error())
			}
		}
		if dto.Name != "" {
			job.Name = dto.Name
		}
		job.Requires = dto.Requires
		return job, nil
	}
	return domain.WorkflowJob{}, zerr.With(domain.ErrMalformedConfig, "line", fmt.Sprint(entry.Line))
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func stringsField(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
