package rewriter_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/engine/rewriter"
)

const depsKey = `v1-deps-{{ checksum "go.sum" }}`

func describe(steps []domain.Step) []byte {
	var b strings.Builder
	for i, s := range steps {
		switch s := s.(type) {
		case domain.RunStep:
			fmt.Fprintf(&b, "%d run %q\n%s\n", i, s.Name, s.Command)
		default:
			fmt.Fprintf(&b, "%d %T\n", i, s)
		}
	}
	return []byte(b.String())
}

func TestRewrite_Golden(t *testing.T) {
	save := domain.SaveCacheStep{Key: depsKey, Paths: []string{"~/go/pkg/mod"}}
	job := domain.JobSpec{
		Name: "build",
		Steps: []domain.Step{
			domain.CheckoutStep{Raw: "checkout"},
			domain.AttachWorkspaceStep{At: "."},
			domain.RestoreCacheStep{Keys: []string{"v1-deps-"}},
			domain.RunStep{Command: "make", Raw: map[string]any{"run": "make"}},
			save,
			domain.PersistToWorkspaceStep{Root: "~/project", Paths: []string{"dist", "bin/app"}},
			domain.OpaqueStep{Raw: map[string]any{"store_artifacts": map[string]any{"path": "dist"}}},
		},
	}

	got, warnings := rewriter.Rewrite(job, []domain.SaveCacheStep{save}, rewriter.Options{WorkingDir: "/home/circleci/project"})
	require.Empty(t, warnings)

	g := goldie.New(t)
	g.Assert(t, "rewrite_job", describe(got.Steps))
}

func TestRewrite_DoesNotMutateInput(t *testing.T) {
	steps := []domain.Step{
		domain.AttachWorkspaceStep{At: "/workspace"},
		domain.RunStep{Command: "ls"},
	}
	job := domain.JobSpec{Name: "test", Steps: steps}

	got, _ := rewriter.Rewrite(job, nil, rewriter.Options{})

	assert.Equal(t, domain.AttachWorkspaceStep{At: "/workspace"}, job.Steps[0])
	assert.IsType(t, domain.RunStep{}, got.Steps[0])
	assert.Len(t, got.Steps, 2)
	assert.Equal(t, steps[1], got.Steps[1])
}

func TestRewrite_ZeroSteps(t *testing.T) {
	job := domain.JobSpec{Name: "empty", WorkingDirectory: "/src"}

	got, warnings := rewriter.Rewrite(job, nil, rewriter.Options{})

	assert.Empty(t, warnings)
	assert.Equal(t, job, got)
}

func TestRewrite_IdempotentWithoutDirectives(t *testing.T) {
	job := domain.JobSpec{
		Name: "lint",
		Steps: []domain.Step{
			domain.CheckoutStep{Raw: "checkout"},
			domain.RunStep{Name: "lint", Command: "golangci-lint run"},
			domain.OpaqueStep{Raw: map[string]any{"setup_remote_docker": nil}},
		},
	}

	once, _ := rewriter.Rewrite(job, nil, rewriter.Options{})
	twice, _ := rewriter.Rewrite(once, nil, rewriter.Options{})

	assert.Equal(t, once, twice)
	assert.Equal(t, job.Steps, once.Steps)
}

func TestRewrite_RestoreWithoutSaveIsPassthrough(t *testing.T) {
	restore := domain.RestoreCacheStep{Key: "v2-node-{{ checksum \"package-lock.json\" }}", Raw: map[string]any{"restore_cache": nil}}
	save := domain.SaveCacheStep{Key: depsKey, Paths: []string{"vendor"}}
	job := domain.JobSpec{Name: "test", Steps: []domain.Step{restore}}

	got, warnings := rewriter.Rewrite(job, []domain.SaveCacheStep{save}, rewriter.Options{})

	require.Len(t, warnings, 1)
	assert.ErrorContains(t, warnings[0], domain.ErrCacheKeyUnresolved.Error())
	assert.Equal(t, restore, got.Steps[0])
}

func TestRewrite_AttachWorkspaceTarget(t *testing.T) {
	tests := []struct {
		name     string
		job      domain.JobSpec
		opts     rewriter.Options
		expected string
	}{
		{
			name:     "explicit at",
			job:      domain.JobSpec{Steps: []domain.Step{domain.AttachWorkspaceStep{At: "/tmp/ws"}}},
			expected: "mkdir -p /tmp/ws;",
		},
		{
			name:     "job working directory",
			job:      domain.JobSpec{WorkingDirectory: "~/repo", Steps: []domain.Step{domain.AttachWorkspaceStep{At: "."}}},
			opts:     rewriter.Options{WorkingDir: "/app"},
			expected: "mkdir -p ~/repo;",
		},
		{
			name:     "image working directory",
			job:      domain.JobSpec{Steps: []domain.Step{domain.AttachWorkspaceStep{}}},
			opts:     rewriter.Options{WorkingDir: "/app"},
			expected: "mkdir -p /app;",
		},
		{
			name:     "fallback",
			job:      domain.JobSpec{Steps: []domain.Step{domain.AttachWorkspaceStep{}}},
			expected: "mkdir -p /home/circleci/project;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := rewriter.Rewrite(tt.job, nil, tt.opts)
			run, ok := got.Steps[0].(domain.RunStep)
			require.True(t, ok)
			assert.Equal(t, rewriter.AttachWorkspaceName, run.Name)
			assert.Contains(t, run.Command, tt.expected)
		})
	}
}

func TestRewriteConfig(t *testing.T) {
	cfg := &domain.PipelineConfig{Jobs: map[string]domain.JobSpec{
		"build": {Name: "build", Steps: []domain.Step{domain.SaveCacheStep{Key: "v1", Paths: []string{"a"}}}},
		"test":  {Name: "test", Steps: []domain.Step{domain.RestoreCacheStep{Key: "v1"}}},
	}}

	got, warnings, err := rewriter.RewriteConfig(cfg, "test", rewriter.Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	run, ok := got.Jobs["test"].Steps[0].(domain.RunStep)
	require.True(t, ok)
	assert.Equal(t, rewriter.RestoreCacheName, run.Name)
	assert.IsType(t, domain.SaveCacheStep{}, got.Jobs["build"].Steps[0])
	assert.IsType(t, domain.RestoreCacheStep{}, cfg.Jobs["test"].Steps[0])

	_, _, err = rewriter.RewriteConfig(cfg, "deploy", rewriter.Options{})
	assert.ErrorContains(t, err, domain.ErrJobNotFound.Error())
}

func TestResolveKey(t *testing.T) {
	tests := []struct {
		template string
		expected string
	}{
		{"v1-deps", "v1-deps"},
		{"v1/deps with space", "v1-deps-with-space"},
		{`v1-{{ checksum "go.sum" }}`, "v1-$(sha256sum go.sum | cut -d' ' -f1)"},
		{"{{ .Branch }}-{{ .Revision }}", "$(git rev-parse --abbrev-ref HEAD)-$(git rev-parse HEAD)"},
		{"{{ .Environment.CACHE_VERSION }}-{{arch}}", "${CACHE_VERSION}-$(uname -m)"},
		{"v1-{{ epoch }}", "v1-$(date +%s)"},
		{"v1-{{ .Unknown }}-x", "v1--x"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriter.ResolveKey(tt.template))
		})
	}
}

func TestSaveCacheSteps(t *testing.T) {
	cfg := &domain.PipelineConfig{Jobs: map[string]domain.JobSpec{
		"b": {Steps: []domain.Step{domain.SaveCacheStep{Key: "b-key"}}},
		"a": {Steps: []domain.Step{domain.RunStep{}, domain.SaveCacheStep{Key: "a-key"}}},
	}}

	saves := rewriter.SaveCacheSteps(cfg)
	require.Len(t, saves, 2)
	assert.Equal(t, "a-key", saves[0].Key)
	assert.Equal(t, "b-key", saves[1].Key)
}
