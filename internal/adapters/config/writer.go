package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ProcessWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteProcessFile replaces the file at path with the encoded config.
func (w *Writer) WriteProcessFile(path string, cfg *domain.PipelineConfig) error {
	data, err := Encode(cfg)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := writeFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrProcessFileWriteFailed.Error()), "path", path)
	}
	return nil
}

// EncodeJob returns the YAML encoding of a single job.
func (w *Writer) EncodeJob(job domain.JobSpec) ([]byte, error) {
	return EncodeJob(job)
}

// writeFileAtomic writes data to a temp file in the target directory and renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*.yml")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
