package ports

import "go.trai.ch/localci/internal/core/domain"

// Notifier surfaces messages to the developer outside of the log stream.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Suggest reports a known problem and where to read about a fix.
	// An empty url means the message carries the fix itself.
	Suggest(msg, url string)

	// JobFinished reports the verdict of a run.
	JobFinished(job string, status domain.JobStatus, logPath string)

	// Message reports a plain informational message.
	Message(msg string)
}
