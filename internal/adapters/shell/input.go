package shell

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// inputRouter forwards a single input stream to the interactive session that is currently attached.
type inputRouter struct {
	in io.Reader

	mu      sync.Mutex
	target  io.Writer
	started bool
}

func newInputRouter(in io.Reader) *inputRouter {
	return &inputRouter{in: in}
}

// attach routes input to w and puts a terminal input into raw mode.
// The returned function detaches w and restores the terminal.
func (r *inputRouter) attach(w io.Writer) func() {
	r.mu.Lock()
	r.target = w
	if !r.started {
		r.started = true
		go r.pump()
	}
	r.mu.Unlock()

	restore := func() {}
	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if state, err := term.MakeRaw(int(f.Fd())); err == nil {
			restore = func() { _ = term.Restore(int(f.Fd()), state) }
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			if r.target == w {
				r.target = nil
			}
			r.mu.Unlock()
			restore()
		})
	}
}

func (r *inputRouter) pump() {
	buf := make([]byte, 4096)
	for {
		n, err := r.in.Read(buf)
		if n > 0 {
			r.mu.Lock()
			target := r.target
			r.mu.Unlock()
			if target != nil {
				_, _ = target.Write(buf[:n])
			}
		}
		if err != nil {
			return
		}
	}
}
