package license_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/adapters/license"
	"go.trai.ch/localci/internal/core/domain"
)

func TestChecker_Key(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		valid bool
	}{
		{"well formed", "lci_0123456789abcdefXYZ", true},
		{"surrounding whitespace", "  lci_0123456789abcdef\n", true},
		{"wrong prefix", "key_0123456789abcdef", false},
		{"too short", "lci_abc", false},
		{"bad characters", "lci_0123456789abcdef-!", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := license.NewCheckerWith(tt.key, t.TempDir(), time.Now)
			err := c.Check(context.Background())
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, domain.ErrLicenseInvalid.Error())
		})
	}
}

func TestChecker_Trial(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".localci")
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	c := license.NewCheckerWith("", dir, func() time.Time { return clock })

	require.NoError(t, c.Check(context.Background()), "the first check starts the trial")
	data, err := os.ReadFile(filepath.Join(dir, "trial"))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01T12:00:00Z\n", string(data))

	clock = clock.Add(10 * 24 * time.Hour)
	require.NoError(t, c.Check(context.Background()))
	left, err := c.TrialRemaining()
	require.NoError(t, err)
	assert.Equal(t, 5*24*time.Hour, left)

	clock = clock.Add(6 * 24 * time.Hour)
	require.ErrorContains(t, c.Check(context.Background()), domain.ErrLicenseInvalid.Error())
	left, err = c.TrialRemaining()
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestChecker_CorruptTrialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trial"), []byte("yesterday"), domain.PrivateFilePerm))

	c := license.NewCheckerWith("", dir, time.Now)
	require.ErrorContains(t, c.Check(context.Background()), domain.ErrLicenseInvalid.Error())
}

func TestChecker_NoHome(t *testing.T) {
	c := license.NewCheckerWith("", "", time.Now)
	require.ErrorContains(t, c.Check(context.Background()), domain.ErrLicenseInvalid.Error())
}
