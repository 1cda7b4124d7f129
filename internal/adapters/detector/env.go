// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how a job run is presented.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeShell runs the job with interactive debug shells.
	ModeShell
	// ModeLinear prints prefixed job output and opens no shells.
	ModeLinear
)

// Env reports the facts the detection is based on.
type Env struct {
	StdinTTY  bool
	StdoutTTY bool
	CI        string
}

// CurrentEnv inspects the process environment.
func CurrentEnv() Env {
	return Env{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		CI:        os.Getenv("CI"),
	}
}

// Detect returns the recommended output mode for env.
// Debug shells need a terminal on both ends and make no sense in CI.
func Detect(env Env) OutputMode {
	isCI := env.CI == "true" || env.CI == "1"
	if !env.StdinTTY || !env.StdoutTTY || isCI {
		return ModeLinear
	}
	return ModeShell
}

// DetectEnvironment returns the recommended output mode for the current process.
func DetectEnvironment() OutputMode {
	return Detect(CurrentEnv())
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "shell", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "shell":
		return ModeShell
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
