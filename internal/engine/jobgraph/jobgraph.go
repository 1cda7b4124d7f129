// Package jobgraph derives the job list and dependency map from a compiled config.
package jobgraph

import (
	"slices"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
)

// Graph is the ordered job list and the prerequisites of every job.
type Graph struct {
	// Jobs are listed in workflow declaration order.
	Jobs []string
	// Requires maps a job to its prerequisites, in declared order.
	Requires map[string][]string
}

// Build returns the jobs reachable from the config's workflows.
// Jobs that no workflow lists are excluded. When a job is listed more than
// once, the first occurrence wins.
func Build(cfg *domain.PipelineConfig) (*Graph, error) {
	if cfg == nil || cfg.Jobs == nil {
		return nil, zerr.Wrap(domain.ErrMalformedConfig, "config has no jobs section")
	}

	g := &Graph{Requires: make(map[string][]string)}
	for _, wf := range cfg.Workflows {
		for _, wj := range wf.Jobs {
			if _, seen := g.Requires[wj.Name]; seen {
				continue
			}
			g.Jobs = append(g.Jobs, wj.Name)
			g.Requires[wj.Name] = slices.Clone(wj.Requires)
			if g.Requires[wj.Name] == nil {
				g.Requires[wj.Name] = []string{}
			}
		}
	}
	return g, nil
}

// Has reports whether job is part of the graph.
func (g *Graph) Has(job string) bool {
	_, ok := g.Requires[job]
	return ok
}

// Roots returns the jobs without prerequisites, in job order.
func (g *Graph) Roots() []string {
	var roots []string
	for _, job := range g.Jobs {
		if len(g.Requires[job]) == 0 {
			roots = append(roots, job)
		}
	}
	return roots
}

// Owner returns the job a job is nested under: its last declared prerequisite.
func (g *Graph) Owner(job string) (string, bool) {
	reqs := g.Requires[job]
	if len(reqs) == 0 {
		return "", false
	}
	return reqs[len(reqs)-1], true
}

// Dependents returns the jobs owned by job, in job order.
func (g *Graph) Dependents(job string) []string {
	var out []string
	for _, candidate := range g.Jobs {
		if owner, ok := g.Owner(candidate); ok && owner == job {
			out = append(out, candidate)
		}
	}
	return out
}

// HasChildren reports whether any job is nested under job.
func (g *Graph) HasChildren(job string) bool {
	for _, candidate := range g.Jobs {
		if owner, ok := g.Owner(candidate); ok && owner == job {
			return true
		}
	}
	return false
}

// CheckoutJobs returns the sorted names of the jobs that check out the repository.
func CheckoutJobs(cfg *domain.PipelineConfig) []string {
	var out []string
	for name, job := range cfg.Jobs {
		if job.HasCheckout() {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// IsSoleCheckoutJob reports whether job is the only job that checks out the repository.
func IsSoleCheckoutJob(cfg *domain.PipelineConfig, job string) bool {
	jobs := CheckoutJobs(cfg)
	return len(jobs) == 1 && jobs[0] == job
}

// PrimaryImage returns the first docker image of job.
func PrimaryImage(cfg *domain.PipelineConfig, job string) (string, error) {
	spec, ok := cfg.Job(job)
	if !ok {
		return "", zerr.With(domain.ErrJobNotFound, "job", job)
	}
	image, ok := spec.PrimaryImage()
	if !ok {
		return "", zerr.With(domain.ErrNoImage, "job", job)
	}
	return image, nil
}
