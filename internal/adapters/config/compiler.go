package config

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compiler implements ports.ConfigCompiler by invoking "<binary> config process".
type Compiler struct{}

// NewCompiler creates a new Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile runs the job runner's config processor and returns its stdout.
// The processor's stderr becomes the error message on failure.
func (c *Compiler) Compile(ctx context.Context, binary, path string) ([]byte, error) {
	// #nosec G204 -- binary is chosen by the user
	cmd := exec.CommandContext(ctx, binary, "config", "process", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		wrapped := zerr.Wrap(err, domain.ErrConfigProcessFailed.Error()+": "+msg)
		return nil, zerr.With(wrapped, "binary", binary)
	}
	return stdout.Bytes(), nil
}
