package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/adapters/shell"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
)

// syncBuffer is a bytes.Buffer safe for the PTY copy goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLauncher_OutputAndExitCode(t *testing.T) {
	l := shell.NewLauncherWithInput(strings.NewReader(""))
	var out syncBuffer

	term, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role:   domain.TerminalMain,
		Args:   []string{"sh", "-c", "echo line1; echo line2 >&2; exit 3"},
		Dir:    t.TempDir(),
		Output: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, term.Wait())
	assert.Contains(t, out.String(), "line1")
	assert.Contains(t, out.String(), "line2")
	require.NoError(t, term.Close())
}

func TestLauncher_Env(t *testing.T) {
	l := shell.NewLauncherWithInput(strings.NewReader(""))
	var out syncBuffer

	term, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role:   domain.TerminalMain,
		Args:   []string{"sh", "-c", "echo value=$LOCALCI_TEST"},
		Env:    []string{"LOCALCI_TEST=42"},
		Output: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, term.Wait())
	assert.Contains(t, out.String(), "value=42")
}

func TestLauncher_InteractiveInput(t *testing.T) {
	in, feed := io.Pipe()
	defer func() { _ = feed.Close() }()

	l := shell.NewLauncherWithInput(in)
	var out syncBuffer

	term, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role:        domain.TerminalDebug,
		Args:        []string{"sh", "-c", "read line; echo got:$line"},
		Output:      &out,
		Interactive: true,
	})
	require.NoError(t, err)

	_, err = feed.Write([]byte("hello\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, term.Wait())
	assert.Contains(t, out.String(), "got:hello")
}

func TestLauncher_CloseKillsAndIsIdempotent(t *testing.T) {
	l := shell.NewLauncherWithInput(strings.NewReader(""))

	term, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role: domain.TerminalFinalDebug,
		Args: []string{"sleep", "30"},
	})
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.NotEqual(t, 0, term.Wait())
}

func TestLauncher_SpawnFailure(t *testing.T) {
	l := shell.NewLauncherWithInput(strings.NewReader(""))

	_, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role: domain.TerminalMain,
		Args: []string{"/nonexistent/localci-binary"},
	})
	require.ErrorContains(t, err, domain.ErrProcessSpawnFailure.Error())

	_, err = l.Launch(context.Background(), ports.TerminalSpec{Role: domain.TerminalMain})
	require.ErrorContains(t, err, domain.ErrProcessSpawnFailure.Error())
}

func TestLauncher_WaitIgnoresBackgroundChildren(t *testing.T) {
	l := shell.NewLauncherWithInput(strings.NewReader(""))
	var out syncBuffer

	term, err := l.Launch(context.Background(), ports.TerminalSpec{
		Role:   domain.TerminalMain,
		Args:   []string{"sh", "-c", `echo started; (trap "" HUP; sleep 30) & exit 0`},
		Output: &out,
	})
	require.NoError(t, err)

	start := time.Now()
	assert.Equal(t, 0, term.Wait())
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Contains(t, out.String(), "started")
}
