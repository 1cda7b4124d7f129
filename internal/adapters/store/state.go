// Package store persists job states and run logs under the repository's state directory.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.JobStateStore = (*StateStore)(nil)

// StateStore implements ports.JobStateStore using a file-per-job strategy.
type StateStore struct {
	mu  sync.Mutex
	now func() time.Time
}

// NewStateStore creates a new StateStore.
func NewStateStore() *StateStore {
	return &StateStore{now: time.Now}
}

// Get retrieves the last state of job, or nil if it never ran.
func (s *StateStore) Get(root, job string) (*domain.JobState, error) {
	filename := stateFilename(root, job)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "job", job)
	}

	var state domain.JobState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "job", job)
	}
	return &state, nil
}

// Put stores state, stamping it with the current time when it has none.
func (s *StateStore) Put(root string, state domain.JobState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = s.now().UTC()
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	filename := stateFilename(root, state.Job)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "job", state.Job)
	}
	return nil
}

// Reset forgets the state of every job.
func (s *StateStore) Reset(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.RemoveAll(domain.NewLayout(root).StoreDir()); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func stateFilename(root, job string) string {
	hash := sha256.Sum256([]byte(job))
	return filepath.Join(domain.NewLayout(root).StoreDir(), hex.EncodeToString(hash[:])+".json")
}
