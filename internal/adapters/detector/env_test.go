package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/localci/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		env      detector.Env
		expected detector.OutputMode
	}{
		{"interactive terminal", detector.Env{StdinTTY: true, StdoutTTY: true}, detector.ModeShell},
		{"CI=true forces linear mode", detector.Env{StdinTTY: true, StdoutTTY: true, CI: "true"}, detector.ModeLinear},
		{"CI=1 forces linear mode", detector.Env{StdinTTY: true, StdoutTTY: true, CI: "1"}, detector.ModeLinear},
		{"CI=false does not force linear", detector.Env{StdinTTY: true, StdoutTTY: true, CI: "false"}, detector.ModeShell},
		{"piped stdout", detector.Env{StdinTTY: true}, detector.ModeLinear},
		{"no stdin", detector.Env{StdoutTTY: true}, detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.env))
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{"auto respects auto-detection (shell)", detector.ModeShell, "auto", detector.ModeShell},
		{"auto respects auto-detection (linear)", detector.ModeLinear, "auto", detector.ModeLinear},
		{"empty flag respects auto-detection", detector.ModeShell, "", detector.ModeShell},
		{"shell overrides auto-detection", detector.ModeLinear, "shell", detector.ModeShell},
		{"linear overrides auto-detection", detector.ModeShell, "linear", detector.ModeLinear},
		{"ci is alias for linear", detector.ModeShell, "ci", detector.ModeLinear},
		{"invalid flag respects auto-detection", detector.ModeShell, "invalid", detector.ModeShell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.autoDetected, tt.userFlag)
			assert.Equal(t, tt.expected, got, "ResolveMode(%v, %q)", tt.autoDetected, tt.userFlag)
		})
	}
}
