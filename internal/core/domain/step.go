package domain

// Step is one entry of a job's step list.
// The set of implementations is closed; every type below is a Step and nothing else is.
type Step interface {
	// Source returns the decoded YAML value the step was read from, or nil for
	// steps synthesized by the rewriter.
	Source() any
	isStep()
}

// CheckoutStep checks out the repository.
type CheckoutStep struct {
	Raw any
}

// AttachWorkspaceStep restores the shared workspace into At.
type AttachWorkspaceStep struct {
	At  string
	Raw any
}

// PersistToWorkspaceStep copies Paths, relative to Root, into the shared workspace.
type PersistToWorkspaceStep struct {
	Root  string
	Paths []string
	Raw   any
}

// RestoreCacheStep restores the first cache whose key matches Key or one of Keys.
type RestoreCacheStep struct {
	Key  string
	Keys []string
	Raw  any
}

// Candidates returns the key templates in lookup order.
func (s RestoreCacheStep) Candidates() []string {
	out := make([]string, 0, len(s.Keys)+1)
	if s.Key != "" {
		out = append(out, s.Key)
	}
	return append(out, s.Keys...)
}

// SaveCacheStep stores Paths under the resolved Key.
type SaveCacheStep struct {
	Key   string
	Paths []string
	Raw   any
}

// RunStep executes a shell command.
type RunStep struct {
	Name    string
	Command string
	Raw     any
}

// OpaqueStep is any step the tool has no special handling for.
type OpaqueStep struct {
	Raw any
}

func (s CheckoutStep) Source() any           { return s.Raw }
func (s AttachWorkspaceStep) Source() any    { return s.Raw }
func (s PersistToWorkspaceStep) Source() any { return s.Raw }
func (s RestoreCacheStep) Source() any       { return s.Raw }
func (s SaveCacheStep) Source() any          { return s.Raw }
func (s RunStep) Source() any                { return s.Raw }
func (s OpaqueStep) Source() any             { return s.Raw }

func (CheckoutStep) isStep()           {}
func (AttachWorkspaceStep) isStep()    {}
func (PersistToWorkspaceStep) isStep() {}
func (RestoreCacheStep) isStep()       {}
func (SaveCacheStep) isStep()          {}
func (RunStep) isStep()                {}
func (OpaqueStep) isStep()             {}
