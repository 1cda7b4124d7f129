package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/localci/internal/core/domain"
)

func TestMountTarget(t *testing.T) {
	defaults := domain.ImageDefaults{WorkingDir: "/home/circleci/project", Home: "/home/circleci"}

	tests := []struct {
		name     string
		job      domain.JobSpec
		expected string
	}{
		{
			name:     "checkout job without attach",
			job:      domain.JobSpec{Steps: []domain.Step{domain.CheckoutStep{}}},
			expected: domain.ContainerStoragePath,
		},
		{
			name:     "checkout job attaching to home",
			job:      domain.JobSpec{Steps: []domain.Step{domain.CheckoutStep{}, domain.AttachWorkspaceStep{At: "~/ws"}}},
			expected: "/home/circleci/ws",
		},
		{
			name:     "dependent job attaching to dot",
			job:      domain.JobSpec{Steps: []domain.Step{domain.AttachWorkspaceStep{At: "."}}},
			expected: "/home/circleci/project",
		},
		{
			name:     "dependent job with working directory",
			job:      domain.JobSpec{WorkingDirectory: "~/repo", Steps: []domain.Step{domain.AttachWorkspaceStep{}}},
			expected: "/home/circleci/repo",
		},
		{
			name:     "relative attach path",
			job:      domain.JobSpec{Steps: []domain.Step{domain.AttachWorkspaceStep{At: "workspace"}}},
			expected: "/home/circleci/project/workspace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mountTarget(tt.job, defaults))
		})
	}
}
