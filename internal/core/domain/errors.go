package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedConfig is returned when a compiled pipeline document has no jobs section
	// or cannot be decoded.
	ErrMalformedConfig = zerr.New("malformed pipeline config")

	// ErrNoContainerRuntime is returned when the container engine cannot be reached.
	ErrNoContainerRuntime = zerr.New("container runtime is not reachable")

	// ErrLicenseInvalid is returned when neither a license key nor an active trial is present.
	ErrLicenseInvalid = zerr.New("license is invalid or the trial has expired")

	// ErrCacheKeyUnresolved is returned when a restore_cache step has no matching save_cache step.
	ErrCacheKeyUnresolved = zerr.New("cache key has no matching save_cache step")

	// ErrProcessSpawnFailure is returned when a terminal process cannot be started.
	ErrProcessSpawnFailure = zerr.New("failed to spawn process")

	// ErrCleanupFailure is returned when committed images or containers cannot be removed.
	ErrCleanupFailure = zerr.New("failed to clean up committed image")

	// ErrRunInProgress is returned when a run is requested while another run is active.
	ErrRunInProgress = zerr.New("a job is already running")

	// ErrJobNotFound is returned when the requested job is not part of any workflow.
	ErrJobNotFound = zerr.New("job not found")

	// ErrConfigNotFound is returned when no .circleci/config.yml can be found.
	ErrConfigNotFound = zerr.New("could not find .circleci/config.yml")

	// ErrConfigReadFailed is returned when a config file cannot be read or decoded.
	ErrConfigReadFailed = zerr.New("failed to read config")

	// ErrConfigProcessFailed is returned when the external compiler rejects a config.
	ErrConfigProcessFailed = zerr.New("failed to process config")

	// ErrJobExecutionFailed is returned when the job ran and reported failure.
	ErrJobExecutionFailed = zerr.New("job execution failed")

	// ErrNoImage is returned when a job declares no docker image.
	ErrNoImage = zerr.New("job has no docker image")

	// ErrProcessFileWriteFailed is returned when the rewritten process file cannot be written.
	ErrProcessFileWriteFailed = zerr.New("failed to write process file")

	// ErrVolumeFailed is returned when the shared volume cannot be prepared.
	ErrVolumeFailed = zerr.New("failed to prepare shared volume")

	// ErrStoreReadFailed is returned when a job state record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read job state")

	// ErrStoreWriteFailed is returned when a job state record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write job state")

	// ErrStoreCreateFailed is returned when the job state store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create job state store directory")

	// ErrLogCreateFailed is returned when a job log file cannot be created.
	ErrLogCreateFailed = zerr.New("failed to create job log")

	// ErrNoLogs is returned when a job has no persisted logs.
	ErrNoLogs = zerr.New("job has no logs")

	// ErrNoRunningContainer is returned when no running container exists for a job image.
	ErrNoRunningContainer = zerr.New("no running container for job")

	// ErrWatcherFailed is returned when the config watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch config")
)
