package domain

import "slices"

// PipelineConfig is a compiled pipeline document.
// It is immutable after load; rewriting produces new values.
type PipelineConfig struct {
	// Jobs maps job names to their definitions.
	Jobs map[string]JobSpec
	// Workflows are kept in document order.
	Workflows []Workflow
	// Setup is true for configs that generate a dynamic config.
	Setup bool
	// Extra holds the top-level keys the tool does not interpret, including
	// the raw workflows section, so they survive re-encoding.
	Extra map[string]any
}

// Job returns the named job.
func (c *PipelineConfig) Job(name string) (JobSpec, bool) {
	j, ok := c.Jobs[name]
	return j, ok
}

// WithJob returns a shallow copy of c in which name is replaced by job.
func (c *PipelineConfig) WithJob(name string, job JobSpec) *PipelineConfig {
	jobs := make(map[string]JobSpec, len(c.Jobs))
	for k, v := range c.Jobs {
		jobs[k] = v
	}
	jobs[name] = job
	return &PipelineConfig{
		Jobs:      jobs,
		Workflows: c.Workflows,
		Setup:     c.Setup,
		Extra:     c.Extra,
	}
}

// JobSpec is a single job definition.
type JobSpec struct {
	Name             string
	Docker           []DockerImage
	WorkingDirectory string
	Steps            []Step
	// Extra holds the job keys the tool does not interpret.
	Extra map[string]any
}

// PrimaryImage returns the image of the first docker entry.
func (j JobSpec) PrimaryImage() (string, bool) {
	if len(j.Docker) == 0 || j.Docker[0].Image == "" {
		return "", false
	}
	return j.Docker[0].Image, true
}

// HasCheckout reports whether the job checks out the repository.
func (j JobSpec) HasCheckout() bool {
	return slices.ContainsFunc(j.Steps, func(s Step) bool {
		_, ok := s.(CheckoutStep)
		return ok
	})
}

// AttachPath returns the at: of the first attach_workspace step.
func (j JobSpec) AttachPath() (string, bool) {
	for _, s := range j.Steps {
		if a, ok := s.(AttachWorkspaceStep); ok {
			return a.At, true
		}
	}
	return "", false
}

// WithSteps returns a copy of j with steps replaced.
func (j JobSpec) WithSteps(steps []Step) JobSpec {
	j.Steps = steps
	return j
}

// DockerImage is one entry of a job's docker list.
type DockerImage struct {
	Image string
	Raw   any
}

// Workflow is an ordered group of jobs.
type Workflow struct {
	Name string
	Jobs []WorkflowJob
}

// WorkflowJob is one job reference inside a workflow.
type WorkflowJob struct {
	Name     string
	Requires []string
}
