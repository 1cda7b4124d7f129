// Package license gates job runs behind a license key or a trial period.
package license

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LicenseChecker = (*Checker)(nil)

const (
	// EnvKey holds the license key.
	EnvKey = "LOCALCI_LICENSE"
	// TrialLength is how long the tool runs without a key.
	TrialLength = 15 * 24 * time.Hour

	trialFileName = "trial"
	keyPrefix     = "lci_"
	minKeyLength  = len(keyPrefix) + 16
)

// Checker accepts a well-formed license key, or runs within the trial period.
// The trial starts the first time Check runs on a machine.
type Checker struct {
	key      string
	stateDir string
	now      func() time.Time
}

// NewChecker creates a Checker reading the key from the environment and
// keeping the trial start in ~/.localci.
func NewChecker() *Checker {
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, domain.LocalCIDirName)
	}
	return NewCheckerWith(os.Getenv(EnvKey), dir, time.Now)
}

// NewCheckerWith creates a Checker with an explicit key, state directory and clock.
func NewCheckerWith(key, stateDir string, now func() time.Time) *Checker {
	return &Checker{key: strings.TrimSpace(key), stateDir: stateDir, now: now}
}

// Check returns domain.ErrLicenseInvalid when runs are not allowed.
func (c *Checker) Check(_ context.Context) error {
	if c.key != "" {
		if validKey(c.key) {
			return nil
		}
		return zerr.With(domain.ErrLicenseInvalid, "reason", "malformed license key")
	}

	started, err := c.trialStart()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLicenseInvalid.Error()), "reason", "could not read the trial state")
	}
	if c.now().Sub(started) > TrialLength {
		return zerr.With(domain.ErrLicenseInvalid, "trial_started", started.Format(time.DateOnly))
	}
	return nil
}

// TrialRemaining returns how much of the trial is left, or 0 once it expired.
func (c *Checker) TrialRemaining() (time.Duration, error) {
	started, err := c.trialStart()
	if err != nil {
		return 0, err
	}
	return max(TrialLength-c.now().Sub(started), 0), nil
}

// trialStart reads the trial start, recording now if there is none.
func (c *Checker) trialStart() (time.Time, error) {
	if c.stateDir == "" {
		return time.Time{}, errors.New("no home directory")
	}
	path := filepath.Join(c.stateDir, trialFileName)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		started, perr := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
		if perr != nil {
			return time.Time{}, zerr.With(perr, "path", path)
		}
		return started, nil
	case !errors.Is(err, fs.ErrNotExist):
		return time.Time{}, zerr.With(err, "path", path)
	}

	now := c.now().UTC().Truncate(time.Second)
	if err := os.MkdirAll(c.stateDir, domain.DirPerm); err != nil {
		return time.Time{}, zerr.With(err, "path", c.stateDir)
	}
	if err := os.WriteFile(path, []byte(now.Format(time.RFC3339)+"\n"), domain.PrivateFilePerm); err != nil {
		return time.Time{}, zerr.With(err, "path", path)
	}
	return now, nil
}

func validKey(key string) bool {
	if !strings.HasPrefix(key, keyPrefix) || len(key) < minKeyLength {
		return false
	}
	for _, r := range key[len(keyPrefix):] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
