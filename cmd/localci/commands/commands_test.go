package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/cmd/localci/commands"
	"go.trai.ch/localci/internal/app"
	"go.trai.ch/localci/internal/build"
	"go.trai.ch/localci/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, job string, opts app.RunOptions) error

	jobsOpts  *app.JobsOptions
	logsJob   string
	logsOpts  *app.LogsOptions
	cleanOpts *app.CleanOptions
	jsonLogs  bool
}

func (m *mockApp) Run(ctx context.Context, job string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, job, opts)
	}
	return nil
}

func (m *mockApp) Jobs(_ context.Context, opts app.JobsOptions) error {
	m.jobsOpts = &opts
	return nil
}

func (m *mockApp) Logs(_ context.Context, job string, opts app.LogsOptions) error {
	m.logsJob = job
	m.logsOpts = &opts
	return nil
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.cleanOpts = &opts
	return nil
}

func (m *mockApp) SetJSONLogs(enable bool) { m.jsonLogs = enable }

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedJob string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, job string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedJob = job
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build", "--no-shell", "--ci", "--binary", "/opt/circleci", "--config", "ci.yml", "--json-logs"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "build", capturedJob)
		assert.True(t, capturedOpts.NoShell)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
		assert.Equal(t, app.Settings{Binary: "/opt/circleci", Config: "ci.yml"}, capturedOpts.Settings)
		assert.True(t, mock.jsonLogs)
	})

	t.Run("binary defaults to the environment", func(t *testing.T) {
		t.Setenv(app.EnvBinary, "/usr/local/bin/circleci")
		t.Setenv(app.EnvConfig, "")

		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/usr/local/bin/circleci", capturedOpts.Binary)
		assert.Equal(t, "auto", capturedOpts.OutputMode)
		assert.False(t, capturedOpts.NoShell)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return domain.ErrJobExecutionFailed
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrJobExecutionFailed))
	})

	t.Run("shows usage when no job provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("rejects more than one job", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "build", "test"})
		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Jobs(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"jobs", "--hard", "--watch", "--all", "--logs", "5"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, mock.jobsOpts)
	assert.True(t, mock.jobsOpts.Hard)
	assert.True(t, mock.jobsOpts.Watch)
	assert.True(t, mock.jobsOpts.All)
	assert.Equal(t, 5, mock.jobsOpts.MaxLogs)
}

func TestCommands_Logs(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"logs", "build", "-f"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "build", mock.logsJob)
	assert.True(t, mock.logsOpts.Follow)

	cli = commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"logs"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.False(t, mock.cleanOpts.All)

	cli = commands.New(mock)
	cli.SetArgs([]string{"clean", "--all"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleanOpts.All)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), "localci version")
}

func TestCommands_VersionShort(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version", "--short"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", buf.String())
}
