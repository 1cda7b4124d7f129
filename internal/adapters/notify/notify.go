// Package notify prints notifications for the developer on the terminal.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/ui/output"
	"go.trai.ch/localci/internal/ui/style"
)

var _ ports.Notifier = (*Terminal)(nil)

// Terminal writes notifications as single highlighted lines.
// It is safe for concurrent use.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewTerminal creates a Terminal writing to w. A nil w writes to stderr.
func NewTerminal(w io.Writer) *Terminal {
	return NewTerminalWithProfile(w, output.ColorProfile)
}

// NewTerminalWithProfile creates a Terminal with an explicit color profile.
func NewTerminalWithProfile(w io.Writer, profileFn func() termenv.Profile) *Terminal {
	out := output.NewWithProfile(w, profileFn)
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profileFn())
	return &Terminal{w: out, renderer: r}
}

// Suggest prints a known problem and the page describing the fix.
func (t *Terminal) Suggest(msg, url string) {
	icon := t.renderer.NewStyle().Foreground(style.Yellow).Bold(true).Render(style.Warning)
	line := icon + " " + msg
	if url != "" {
		link := t.renderer.NewStyle().Foreground(style.Blue).Underline(true).Render(url)
		line += "\n  " + style.Arrow + " " + link
	}
	t.println(line)
}

// JobFinished prints the verdict of a run and where its log is.
func (t *Terminal) JobFinished(job string, status domain.JobStatus, logPath string) {
	color := style.StatusColor(status)
	icon := t.renderer.NewStyle().Foreground(color).Bold(true).Render(style.StatusIcon(status))

	var verdict string
	switch status {
	case domain.JobSucceeded:
		verdict = "succeeded"
	case domain.JobFailed:
		verdict = "failed"
	default:
		verdict = "stopped"
	}
	line := fmt.Sprintf("%s The job %s %s", icon, t.renderer.NewStyle().Bold(true).Render(job), verdict)
	if logPath != "" {
		line += "\n  " + t.renderer.NewStyle().Foreground(style.Muted).Render(style.Log+" "+logPath)
	}
	t.println(line)
}

// Message prints an informational line.
func (t *Terminal) Message(msg string) {
	t.println(t.renderer.NewStyle().Foreground(style.Accent).Render(style.Arrow) + " " + msg)
}

func (t *Terminal) println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.w, line)
}
