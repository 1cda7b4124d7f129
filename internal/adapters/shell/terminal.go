// Package shell runs terminal sessions in pseudo-terminals.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

// DrainTimeout bounds how long output is read after the process has exited.
const DrainTimeout = 500 * time.Millisecond

var _ ports.TerminalLauncher = (*Launcher)(nil)

// Launcher implements ports.TerminalLauncher using creack/pty.
type Launcher struct {
	input *inputRouter
}

// NewLauncher creates a Launcher forwarding the process's stdin to interactive sessions.
func NewLauncher() *Launcher {
	return NewLauncherWithInput(os.Stdin)
}

// NewLauncherWithInput creates a Launcher reading interactive input from in.
func NewLauncherWithInput(in io.Reader) *Launcher {
	return &Launcher{input: newInputRouter(in)}
}

// Launch starts spec.Args in a new pseudo-terminal.
func (l *Launcher) Launch(ctx context.Context, spec ports.TerminalSpec) (ports.Terminal, error) {
	if len(spec.Args) == 0 {
		return nil, zerr.With(domain.ErrProcessSpawnFailure, "role", string(spec.Role))
	}

	cmd := exec.CommandContext(ctx, spec.Args[0], spec.Args[1:]...) //nolint:gosec // commands are built by the orchestrator
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessSpawnFailure.Error()), "role", string(spec.Role))
	}

	out := spec.Output
	if out == nil {
		out = io.Discard
	}

	s := &session{
		role: spec.Role,
		cmd:  cmd,
		ptmx: ptmx,
		done: make(chan struct{}),
	}

	var release []func()
	if spec.Interactive {
		release = append(release, l.input.attach(ptmx), watchResize(ptmx))
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The PTY merges stdout and stderr.
		_, _ = io.Copy(out, ptmx)
	}()

	go func() {
		waitErr := cmd.Wait()
		// Background children can keep the PTY open after the process exits.
		drain := time.NewTimer(DrainTimeout)
		select {
		case <-ioDone:
		case <-drain.C:
		}
		drain.Stop()
		_ = ptmx.Close()
		for _, r := range release {
			r()
		}
		s.code = exitCode(waitErr)
		close(s.done)
	}()

	return s, nil
}

// session is one process running in a pseudo-terminal.
type session struct {
	role domain.TerminalRole
	cmd  *exec.Cmd
	ptmx *os.File

	mu     sync.Mutex
	closed bool

	done chan struct{}
	code int
}

// Wait blocks until the process exits and returns its exit code.
func (s *session) Wait() int {
	<-s.done
	return s.code
}

// Close kills the process and waits for it to exit. It is safe to call more than once.
func (s *session) Close() error {
	s.mu.Lock()
	first := !s.closed
	s.closed = true
	s.mu.Unlock()

	var err error
	if first {
		select {
		case <-s.done:
		default:
			if killErr := s.cmd.Process.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
				err = zerr.With(zerr.Wrap(killErr, "failed to kill terminal"), "role", string(s.role))
			}
		}
	}
	<-s.done
	return err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	// Killed by a signal or never ran.
	return 1
}
