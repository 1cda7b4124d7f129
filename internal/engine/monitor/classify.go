package monitor

import (
	"regexp"
	"strings"
)

// Kind tags the result of classifying a chunk of job output.
type Kind int

const (
	// None means the chunk carries no known marker.
	None Kind = iota
	// Success means the job runner reported a successful run.
	Success
	// Failure means a step of the job failed.
	Failure
	// InfraError means the container runtime reported a known problem.
	InfraError
)

// Known output markers of the job runner.
const (
	// The runner prints this colored line once, at the very end of a successful run.
	SuccessMarker = "\x1b[32mSuccess!\x1b[0m"
	FailureMarker = "Task failed"
)

// Infra describes a known container runtime problem.
type Infra struct {
	// Signature is the substring that identifies the problem.
	Signature string
	// Message explains the fix.
	Message string
	// URL points to a longer explanation, if any.
	URL string
}

// Result is the classification of a chunk.
type Result struct {
	Kind  Kind
	Infra Infra
}

var infraErrors = []Infra{
	{
		Signature: "failed to create runner binary",
		Message:   "Restarting Docker should fix the error 'failed to create runner binary'",
	},
	{
		Signature: "error while creating mount source path",
		Message:   "Restarting Docker should fix the error 'error while creating mount source path'",
	},
	{
		Signature: "compinit: insecure directories",
		Message:   "You might be able to fix this failed job with shell commands",
		URL:       "https://github.com/zsh-users/zsh-completions/issues/680#issuecomment-864906013",
	},
	{
		Signature: "OCI runtime create failed",
		Message:   "You might be able to fix this failed job with shell commands",
		URL:       "https://github.com/getlocalci/local-ci/discussions/121#discussion-4075651",
	},
	{
		Signature: "--storage-opt is supported only for overlay",
		Message:   "You might be able to fix this failed job with shell commands",
		URL:       "https://github.com/getlocalci/local-ci/discussions/165#discussioncomment-3458645",
	},
}

// Classify returns the most significant marker in chunk.
// Success outranks failure, which outranks infra errors.
func Classify(chunk string) Result {
	results := Scan(chunk)
	if len(results) == 0 {
		return Result{Kind: None}
	}
	return results[0]
}

// Scan returns every marker in chunk, most significant first.
// Markers split across chunks are not detected.
func Scan(chunk string) []Result {
	var results []Result
	if strings.Contains(chunk, SuccessMarker) {
		results = append(results, Result{Kind: Success})
	}
	if strings.Contains(chunk, FailureMarker) {
		results = append(results, Result{Kind: Failure})
	}
	for _, infra := range infraErrors {
		if strings.Contains(chunk, infra.Signature) {
			results = append(results, Result{Kind: InfraError, Infra: infra})
		}
	}
	return results
}

var colorCode = regexp.MustCompile("\x1b?\\[[0-9;]*m")

// StripColors removes terminal color sequences such as "\x1b[32m".
func StripColors(s string) string {
	return colorCode.ReplaceAllString(s, "")
}
