// Package vcs inspects the git working tree a job is run from.
package vcs

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkingTree = (*Git)(nil)

// Git lists uncommitted changes with the git CLI.
type Git struct {
	binary string
}

// NewGit creates a Git using the git executable on PATH.
func NewGit() *Git {
	return &Git{binary: "git"}
}

// Uncommitted returns tracked files with uncommitted changes. The pipeline
// config is excluded: the runner reads it from disk, so edits to it still apply.
func (g *Git) Uncommitted(ctx context.Context, root string) ([]string, error) {
	cmd := exec.CommandContext(ctx, g.binary, "status", "--short", "--untracked-files=no")
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, strings.TrimSpace(stderr.String())), "root", root)
	}
	return ParseStatus(out), nil
}

// ParseStatus extracts the paths of `git status --short` output.
func ParseStatus(out []byte) []string {
	config := filepath.ToSlash(filepath.Join(domain.CircleCIDirName, domain.ConfigFileName))

	var files []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if len(line) < 4 {
			continue
		}
		path := strings.TrimSpace(line[3:])
		if _, to, ok := strings.Cut(path, " -> "); ok {
			path = to
		}
		path = strings.Trim(path, `"`)
		if path == "" || path == config {
			continue
		}
		files = append(files, path)
	}
	return files
}

// Warning returns the message shown before running job when files are uncommitted.
// Jobs that do not check out the repository only see the changes after a
// checkout job runs again.
func Warning(job string, files, checkoutJobs []string) string {
	if len(files) == 0 {
		return ""
	}
	msg := "There are uncommitted changes that won't be part of this " + job + " job: " +
		strings.Join(files, ", ") + ". Please commit those changes if you'd like them to be part of the job."
	isCheckout := false
	for _, c := range checkoutJobs {
		if c == job {
			isCheckout = true
			break
		}
	}
	if !isCheckout && len(checkoutJobs) > 0 {
		msg += " Then, please rerun a checkout job, like " + strings.Join(checkoutJobs, ", ") + "."
	}
	return msg
}
