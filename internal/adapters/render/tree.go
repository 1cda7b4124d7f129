// Package render draws the job tree and job output on the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/ui/output"
	"go.trai.ch/localci/internal/ui/style"
)

const maxTreeDepth = 10

// Source provides the entries of the job tree.
type Source interface {
	// Children returns the entries under node; a nil node is the root.
	Children(node *domain.TreeNode) []domain.TreeNode
}

// TreeOptions control which entries are drawn.
type TreeOptions struct {
	// ExpandAll draws the children of every job, not only expanded ones.
	ExpandAll bool
	// MaxLogs limits the logs listed per job. Zero lists all of them.
	MaxLogs int
}

// TreeRenderer draws a job tree as indented text.
type TreeRenderer struct {
	renderer *lipgloss.Renderer

	job     lipgloss.Style
	running lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

// NewTreeRenderer creates a TreeRenderer using the terminal's color profile.
func NewTreeRenderer() *TreeRenderer {
	return NewTreeRendererWithProfile(output.ColorProfile)
}

// NewTreeRendererWithProfile creates a TreeRenderer with an explicit color profile.
func NewTreeRendererWithProfile(profileFn func() termenv.Profile) *TreeRenderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profileFn())
	return &TreeRenderer{
		renderer: r,
		job:      r.NewStyle().Bold(true),
		running:  r.NewStyle().Bold(true).Foreground(style.Blue),
		muted:    r.NewStyle().Foreground(style.Muted),
		warning:  r.NewStyle().Bold(true).Foreground(style.Yellow),
	}
}

// Render writes the tree of src to w.
func (t *TreeRenderer) Render(w io.Writer, src Source, opts TreeOptions) error {
	var b strings.Builder

	roots := src.Children(nil)
	if len(roots) == 0 {
		b.WriteString(t.muted.Render("No jobs found") + "\n")
	}
	for i := range roots {
		t.walk(&b, src, roots[i], "", "", opts, 0)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// walk writes node, then its children when the node is open.
// lead prefixes the node's own line; indent prefixes its children.
func (t *TreeRenderer) walk(b *strings.Builder, src Source, node domain.TreeNode, lead, indent string, opts TreeOptions, depth int) {
	b.WriteString(lead + t.line(node) + "\n")
	if node.Kind == domain.NodeWarning && node.Detail != "" {
		b.WriteString(indent + "  " + t.muted.Render(style.Arrow+" "+node.Detail) + "\n")
	}
	if node.Kind != domain.NodeJob || depth >= maxTreeDepth {
		return
	}
	if !opts.ExpandAll && !node.Expanded {
		return
	}

	children := limitLogs(src.Children(&node), opts.MaxLogs)
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		t.walk(b, src, child, indent+branch, indent+next, opts, depth+1)
	}
}

func (t *TreeRenderer) line(node domain.TreeNode) string {
	switch node.Kind {
	case domain.NodeLog:
		return t.muted.Render(style.Log + " " + node.Label)
	case domain.NodeWarning:
		return t.warning.Render(style.Warning + " " + node.Label)
	default:
		icon := t.renderer.NewStyle().Foreground(style.StatusColor(node.Status)).Render(style.StatusIcon(node.Status))
		name := t.job.Render(node.Label)
		if node.Running {
			name = t.running.Render(node.Label) + t.muted.Render(" (running)")
		}
		return fmt.Sprintf("%s %s", icon, name)
	}
}

// limitLogs keeps at most n log entries. Logs come first, newest first.
func limitLogs(nodes []domain.TreeNode, n int) []domain.TreeNode {
	if n <= 0 {
		return nodes
	}
	out := make([]domain.TreeNode, 0, len(nodes))
	logs := 0
	for _, node := range nodes {
		if node.Kind == domain.NodeLog {
			if logs == n {
				continue
			}
			logs++
		}
		out = append(out, node)
	}
	return out
}
