// Package style provides shared UI styling primitives: colors, icons and
// the presentation of job states.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/localci/internal/core/domain"
)

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Blue   = lipgloss.Color("#3B82F6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Running = "◐"
	Idle    = "○"
	Log     = "≡"
	Arrow   = "→"
)

// StatusIcon returns the glyph shown next to a job in the given state.
func StatusIcon(s domain.JobStatus) string {
	switch s {
	case domain.JobSucceeded:
		return Check
	case domain.JobFailed:
		return Cross
	case domain.JobRunning:
		return Running
	default:
		return Idle
	}
}

// StatusColor returns the color of a job in the given state.
func StatusColor(s domain.JobStatus) lipgloss.Color {
	switch s {
	case domain.JobSucceeded:
		return Green
	case domain.JobFailed:
		return Red
	case domain.JobRunning:
		return Blue
	default:
		return Muted
	}
}
