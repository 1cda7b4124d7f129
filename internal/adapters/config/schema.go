package config

import "gopkg.in/yaml.v3"

// Document represents the structure of a compiled pipeline config.
type Document struct {
	Setup     bool               `yaml:"setup,omitempty"`
	Jobs      map[string]*JobDTO `yaml:"jobs"`
	Workflows yaml.Node          `yaml:"workflows,omitempty"`
	Rest      map[string]any     `yaml:",inline"`
}

// JobDTO represents a job definition in the compiled config.
type JobDTO struct {
	Docker           []any          `yaml:"docker,omitempty"`
	WorkingDirectory string         `yaml:"working_directory,omitempty"`
	Steps            []any          `yaml:"steps,omitempty"`
	Rest             map[string]any `yaml:",inline"`
}

// workflowJobDTO is the map form of a workflow job entry.
type workflowJobDTO struct {
	Name     string   `yaml:"name"`
	Requires []string `yaml:"requires"`
}
