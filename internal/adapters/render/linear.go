package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/localci/internal/ui/output"
)

// PrefixWriter prints complete lines of job output prefixed with the job name.
// It is used when the job runs without debug shells, for example in CI.
type PrefixWriter struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	buf    bytes.Buffer
}

// NewPrefixWriter creates a PrefixWriter for job writing to w.
func NewPrefixWriter(w io.Writer, job string) *PrefixWriter {
	return NewPrefixWriterWithProfile(w, job, output.ColorProfileANSI)
}

// NewPrefixWriterWithProfile creates a PrefixWriter with an explicit color profile.
func NewPrefixWriterWithProfile(w io.Writer, job string, profileFn func() termenv.Profile) *PrefixWriter {
	out := termenv.NewOutput(io.Discard, termenv.WithProfile(profileFn()))
	return &PrefixWriter{
		w:      w,
		prefix: out.String(fmt.Sprintf("[%s]", job)).Faint().String(),
	}
}

// Write buffers p and prints every complete line.
func (p *PrefixWriter) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buf.Write(data)
	for {
		i := bytes.IndexByte(p.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := p.buf.Next(i + 1)
		p.printLineLocked(line)
	}
	if p.buf.Len() == 0 {
		p.buf.Reset()
	}
	return len(data), nil
}

// Flush prints the remaining partial line, if any.
func (p *PrefixWriter) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.buf.Len() > 0 {
		p.printLineLocked(p.buf.Bytes())
		p.buf.Reset()
	}
}

// printLineLocked must be called with p.mu held.
func (p *PrefixWriter) printLineLocked(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n", p.prefix, line)
}
