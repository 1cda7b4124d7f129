package domain

// RunPhase is the state of a single job run.
type RunPhase int

const (
	// PhasePreparing resolves the image and writes the process file.
	PhasePreparing RunPhase = iota
	// PhaseRunning means the main terminal is running the job.
	PhaseRunning
	// PhaseSucceeded means the job reported success.
	PhaseSucceeded
	// PhaseFailed means the job reported failure.
	PhaseFailed
	// PhaseDebugReady means the post-exit debug session is being opened.
	PhaseDebugReady
	// PhaseClosed means every terminal is closed and cleanup has run.
	PhaseClosed
)

func (p RunPhase) String() string {
	switch p {
	case PhasePreparing:
		return "preparing"
	case PhaseRunning:
		return "running"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	case PhaseDebugReady:
		return "debug-ready"
	case PhaseClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// TerminalRole names one of the three terminals of a run.
type TerminalRole string

const (
	// TerminalMain runs the job.
	TerminalMain TerminalRole = "main"
	// TerminalDebug is a shell into the live job container.
	TerminalDebug TerminalRole = "debug"
	// TerminalFinalDebug is a shell into the committed snapshot.
	TerminalFinalDebug TerminalRole = "final-debug"
)

// ImageDefaults are the settings of a job image that steps depend on.
type ImageDefaults struct {
	WorkingDir string
	Home       string
}
