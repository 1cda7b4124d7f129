package domain

import "time"

// JobStatus is the last known state of a job.
type JobStatus string

const (
	// JobIdle means the job has not run, or its last run ended without a verdict.
	JobIdle JobStatus = "idle"
	// JobRunning means a run of the job is in progress.
	JobRunning JobStatus = "running"
	// JobSucceeded means the last run printed the success marker.
	JobSucceeded JobStatus = "succeeded"
	// JobFailed means the last run printed the failure marker or could not start.
	JobFailed JobStatus = "failed"
)

// Terminal reports whether s is a verdict.
func (s JobStatus) Terminal() bool {
	return s == JobSucceeded || s == JobFailed
}

// JobState is the persisted state of a single job.
type JobState struct {
	Job       string    `json:"job"`
	Status    JobStatus `json:"status"`
	Expanded  bool      `json:"expanded,omitempty"`
	LastLog   string    `json:"lastLog,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LogEntry is one persisted run log of a job.
type LogEntry struct {
	Job  string
	Path string
	Name string
}
