package domain

import "path/filepath"

const (
	// LocalCIDirName is the name of the tool's state directory inside a repository.
	LocalCIDirName = ".localci"

	// CircleCIDirName is the directory holding the source pipeline config.
	CircleCIDirName = ".circleci"

	// ConfigFileName is the name of the source pipeline config.
	ConfigFileName = "config.yml"

	// ProcessFileName is the name of the rewritten compiled config.
	ProcessFileName = "process.yml"

	// CompiledDirName caches the external compiler's output.
	CompiledDirName = "compiled"

	// VolumeDirName is the shared volume directory.
	VolumeDirName = "volume"

	// LogsDirName holds per-job run logs.
	LogsDirName = "logs"

	// StoreDirName holds the last job state per job.
	StoreDirName = "store"

	// DynamicConfigFileName is written by setup jobs into the shared volume.
	DynamicConfigFileName = "dynamic-config.yml"

	// ContainerStoragePath is where checkout jobs mount the shared volume.
	ContainerStoragePath = "/tmp/localci-volume"

	// DefaultWorkingDirectory is used when neither the job nor its image names one.
	DefaultWorkingDirectory = "/home/circleci/project"

	// CommittedImageRepo namespaces the periodically committed job snapshots.
	CommittedImageRepo = "localci-committed"

	// DefaultBinary is the job runner executable.
	DefaultBinary = "circleci"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Layout resolves the tool's on-disk paths for one repository.
type Layout struct {
	// Root is the repository root, the directory containing .circleci.
	Root string
	// Config overrides the source config path when set.
	Config string
}

// NewLayout returns a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// StateDir returns <root>/.localci.
func (l Layout) StateDir() string {
	return filepath.Join(l.Root, LocalCIDirName)
}

// ConfigPath returns the source config, <root>/.circleci/config.yml by default.
func (l Layout) ConfigPath() string {
	if l.Config != "" {
		return l.Config
	}
	return filepath.Join(l.Root, CircleCIDirName, ConfigFileName)
}

// ProcessFilePath returns <root>/.localci/process.yml.
func (l Layout) ProcessFilePath() string {
	return filepath.Join(l.StateDir(), ProcessFileName)
}

// CompiledDir returns <root>/.localci/compiled.
func (l Layout) CompiledDir() string {
	return filepath.Join(l.StateDir(), CompiledDirName)
}

// VolumeDir returns <root>/.localci/volume.
func (l Layout) VolumeDir() string {
	return filepath.Join(l.StateDir(), VolumeDirName)
}

// LogsDir returns <root>/.localci/logs.
func (l Layout) LogsDir() string {
	return filepath.Join(l.StateDir(), LogsDirName)
}

// JobLogsDir returns the log directory of a single job.
func (l Layout) JobLogsDir(job string) string {
	return filepath.Join(l.LogsDir(), job)
}

// StoreDir returns <root>/.localci/store.
func (l Layout) StoreDir() string {
	return filepath.Join(l.StateDir(), StoreDirName)
}

// DynamicConfigPath returns the dynamic config written by setup jobs.
// Setup jobs write into the shared volume, so the file lives there.
func (l Layout) DynamicConfigPath() string {
	return filepath.Join(l.VolumeDir(), DynamicConfigFileName)
}

// CommittedImage returns the snapshot tag of a job.
func CommittedImage(job string) string {
	return CommittedImageRepo + "/" + sanitizeImageName(job)
}

func sanitizeImageName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.', c == '_', c == '-':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
