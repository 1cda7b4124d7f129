package store

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	logExt = ".log"
	// logStamp sorts lexically in chronological order.
	logStamp = "2006-01-02T15-04-05.000"
	// logLabel is how a log is listed in the job tree.
	logLabel = "Jan 2 15:04:05"
)

var _ ports.LogStore = (*LogStore)(nil)

// LogStore implements ports.LogStore with one file per run under .localci/logs/<job>.
type LogStore struct {
	now func() time.Time
}

// NewLogStore creates a new LogStore.
func NewLogStore() *LogStore {
	return &LogStore{now: time.Now}
}

// Create opens a new log file for a run of job.
func (s *LogStore) Create(root, job string) (io.WriteCloser, string, error) {
	dir := domain.NewLayout(root).JobLogsDir(safeName(job))
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, domain.ErrLogCreateFailed.Error()), "job", job)
	}

	path := filepath.Join(dir, s.now().Format(logStamp)+logExt)
	//nolint:gosec // Path is constructed from the state directory and a timestamp
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, domain.ErrLogCreateFailed.Error()), "job", job)
	}
	return f, path, nil
}

// List returns the logs of job, newest first.
func (s *LogStore) List(root, job string) ([]domain.LogEntry, error) {
	dir := domain.NewLayout(root).JobLogsDir(safeName(job))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "job", job)
	}

	var out []domain.LogEntry
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, logExt) {
			continue
		}
		out = append(out, domain.LogEntry{
			Job:  job,
			Path: filepath.Join(dir, name),
			Name: label(strings.TrimSuffix(name, logExt)),
		})
	}
	slices.SortFunc(out, func(a, b domain.LogEntry) int {
		return strings.Compare(b.Path, a.Path)
	})
	return out, nil
}

func label(stamp string) string {
	t, err := time.ParseInLocation(logStamp, stamp, time.Local)
	if err != nil {
		return stamp
	}
	return t.Format(logLabel)
}

// safeName keeps job names usable as a single path element.
func safeName(job string) string {
	return strings.NewReplacer("/", "_", `\`, "_", "..", "_").Replace(job)
}
