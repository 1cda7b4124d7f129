// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/localci/internal/core/domain"
)

// ConfigLoader defines the interface for loading compiled pipeline configs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Locate walks up from cwd to the directory containing .circleci/config.yml.
	Locate(cwd string) (domain.Layout, error)

	// Load returns the compiled config of the layout's source config.
	// The external compiler only runs when opts.Hard is set or the cached
	// output for the current source bytes is missing.
	Load(ctx context.Context, layout domain.Layout, opts LoadOptions) (*domain.PipelineConfig, error)

	// LoadDynamic returns the dynamic config written by a setup job, or nil if there is none.
	LoadDynamic(layout domain.Layout) (*domain.PipelineConfig, error)
}

// LoadOptions control how a config is loaded.
type LoadOptions struct {
	// Hard forces the external compiler to run.
	Hard bool
	// Binary is the job runner executable that compiles the config.
	Binary string
}

// ConfigCompiler runs the external "config process" step.
type ConfigCompiler interface {
	// Compile returns the flattened document for the config at path.
	Compile(ctx context.Context, binary, path string) ([]byte, error)
}

// ProcessWriter persists rewritten configs for the job runner.
type ProcessWriter interface {
	// WriteProcessFile replaces the file at path with the encoded config.
	WriteProcessFile(path string, cfg *domain.PipelineConfig) error

	// EncodeJob returns the YAML encoding of a single job.
	EncodeJob(job domain.JobSpec) ([]byte, error)
}
