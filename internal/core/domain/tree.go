package domain

// NodeKind distinguishes the entries of the job tree.
type NodeKind int

const (
	// NodeJob is a job of the pipeline.
	NodeJob NodeKind = iota
	// NodeLog is a persisted run log of its parent job.
	NodeLog
	// NodeWarning explains why the tree could not be built.
	NodeWarning
)

// TreeNode is one entry of the job tree.
type TreeNode struct {
	Kind   NodeKind
	Job    string
	Label  string
	Status JobStatus
	// Running marks the job of the active run.
	Running bool
	// Expanded marks jobs whose children should be shown by default.
	Expanded bool
	// Path is the log file of a NodeLog.
	Path string
	// Detail carries remediation text for a NodeWarning.
	Detail string
}
