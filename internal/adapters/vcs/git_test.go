package vcs_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/adapters/vcs"
	"go.trai.ch/localci/internal/core/domain"
)

func TestParseStatus(t *testing.T) {
	out := []byte(" M main.go\n" +
		"M  .circleci/config.yml\n" +
		"R  old.go -> new.go\n" +
		" D \"with space.txt\"\n" +
		"\n")
	assert.Equal(t, []string{"main.go", "new.go", "with space.txt"}, vcs.ParseStatus(out))
	assert.Empty(t, vcs.ParseStatus(nil))
}

func TestWarning(t *testing.T) {
	assert.Empty(t, vcs.Warning("build", nil, []string{"build"}))

	assert.Equal(t,
		"There are uncommitted changes that won't be part of this build job: a.go, b.go. "+
			"Please commit those changes if you'd like them to be part of the job.",
		vcs.Warning("build", []string{"a.go", "b.go"}, []string{"build"}))

	assert.Equal(t,
		"There are uncommitted changes that won't be part of this test job: a.go. "+
			"Please commit those changes if you'd like them to be part of the job. "+
			"Then, please rerun a checkout job, like build, lint.",
		vcs.Warning("test", []string{"a.go"}, []string{"build", "lint"}))
}

func TestGit_Uncommitted(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
	root := t.TempDir()
	gitRun := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=t", "GIT_AUTHOR_EMAIL=t@example.com",
			"GIT_COMMITTER_NAME=t", "GIT_COMMITTER_EMAIL=t@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}

	gitRun("init", "-q")
	write("main.go", "package main\n")
	write(".circleci/config.yml", "version: 2.1\n")
	gitRun("add", ".")
	gitRun("commit", "-q", "-m", "init")

	files, err := vcs.NewGit().Uncommitted(context.Background(), root)
	require.NoError(t, err)
	assert.Empty(t, files)

	write("main.go", "package main\n\nfunc main() {}\n")
	write(".circleci/config.yml", "version: 2.1\njobs: {}\n")
	write("untracked.go", "package main\n")

	files, err = vcs.NewGit().Uncommitted(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, files)

	_, err = vcs.NewGit().Uncommitted(context.Background(), t.TempDir())
	require.Error(t, err)
}
