package monitor_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports/mocks"
	"go.trai.ch/localci/internal/engine/monitor"
	"go.uber.org/mock/gomock"
)

const successLine = "\x1b[32mSuccess!\x1b[0m\n"

type fakeRefresher struct {
	mu        sync.Mutex
	refreshed []string
	hard      int
}

func (f *fakeRefresher) Refresh(_ context.Context, job string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed = append(f.refreshed, job)
}

func (f *fakeRefresher) HardRefresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hard++
	return nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		kind  monitor.Kind
	}{
		{name: "plain output", chunk: "go test ./...\nok\n", kind: monitor.None},
		{name: "success marker", chunk: "====>> done\n" + successLine, kind: monitor.Success},
		{name: "uncolored success", chunk: "Success!\n", kind: monitor.None},
		{name: "color codes without escape byte", chunk: "[32mSuccess![0m\n", kind: monitor.None},
		{name: "success from a PTY with CRLF", chunk: "\x1b[32mSuccess!\x1b[0m\r\n", kind: monitor.Success},
		{name: "failure marker", chunk: "Error: Task failed\n", kind: monitor.Failure},
		{name: "success outranks failure", chunk: "Task failed earlier\n" + successLine, kind: monitor.Success},
		{name: "infra error", chunk: "docker: Error response from daemon: OCI runtime create failed: x", kind: monitor.InfraError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, monitor.Classify(tt.chunk).Kind)
		})
	}
}

func TestSuccessMarker_IsColoredLine(t *testing.T) {
	assert.Equal(t, []byte{0x1b, '[', '3', '2', 'm'}, []byte(monitor.SuccessMarker)[:5])
	assert.Equal(t, "Success!", monitor.StripColors(monitor.SuccessMarker))
}

func TestScan_InfraCarriesRemediation(t *testing.T) {
	results := monitor.Scan("compinit: insecure directories, run compaudit")

	require.Len(t, results, 1)
	assert.Equal(t, monitor.InfraError, results[0].Kind)
	assert.Equal(t, "https://github.com/zsh-users/zsh-completions/issues/680#issuecomment-864906013", results[0].Infra.URL)
}

func TestStripColors(t *testing.T) {
	assert.Equal(t, "Success!\n", monitor.StripColors(successLine))
	assert.Equal(t, "bold red", monitor.StripColors("\x1b[1;31mbold red\x1b[0m"))
	assert.Equal(t, "Success!", monitor.StripColors("[32mSuccess![0m"))
}

func TestHeader(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	got := monitor.Header("build", at, []byte("docker:\n- image: cimg/go\n"))

	assert.Equal(t, "Log for CircleCI job build\nWed, 04 Mar 2026 05:06:07 UTC\n\ndocker:\n- image: cimg/go\n", string(got))
}

type harness struct {
	states    *mocks.MockJobStateStore
	notifier  *mocks.MockNotifier
	logger    *mocks.MockLogger
	refresher *fakeRefresher
	log       *bytes.Buffer
	verdicts  []domain.JobStatus
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	return &harness{
		states:    mocks.NewMockJobStateStore(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		refresher: &fakeRefresher{},
		log:       &bytes.Buffer{},
	}
}

func (h *harness) config() monitor.Config {
	return monitor.Config{
		Root:      "/repo",
		Job:       "build",
		Log:       h.log,
		LogPath:   "/repo/.localci/logs/build/1.log",
		States:    h.states,
		Notifier:  h.notifier,
		Refresher: h.refresher,
		Logger:    h.logger,
		OnVerdict: func(s domain.JobStatus) { h.verdicts = append(h.verdicts, s) },
	}
}

func statusIs(status domain.JobStatus) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(domain.JobState)
		return ok && s.Status == status && s.Job == "build"
	})
}

func TestMonitor_SuccessIsLatched(t *testing.T) {
	h := newHarness(t)
	h.states.EXPECT().Put("/repo", statusIs(domain.JobSucceeded)).Return(nil).Times(1)
	h.notifier.EXPECT().JobFinished("build", domain.JobSucceeded, "/repo/.localci/logs/build/1.log").Times(1)

	m := monitor.New(context.Background(), h.config())

	_, err := m.Write([]byte("Running tests\n"))
	require.NoError(t, err)
	_, err = m.Write([]byte(successLine))
	require.NoError(t, err)
	_, err = m.Write([]byte(successLine + "Task failed\n"))
	require.NoError(t, err)
	require.NoError(t, m.Close())

	status, ok := m.Verdict()
	assert.True(t, ok)
	assert.Equal(t, domain.JobSucceeded, status)
	assert.Equal(t, []domain.JobStatus{domain.JobSucceeded}, h.verdicts)
	assert.Equal(t, []string{"build"}, h.refresher.refreshed)
	assert.Equal(t, "Running tests\nSuccess!\nSuccess!\nTask failed\n", h.log.String())
}

func TestMonitor_Failure(t *testing.T) {
	h := newHarness(t)
	h.states.EXPECT().Put("/repo", statusIs(domain.JobFailed)).Return(nil)
	h.notifier.EXPECT().JobFinished("build", domain.JobFailed, gomock.Any())

	m := monitor.New(context.Background(), h.config())
	_, _ = m.Write([]byte("Error: Task failed\n"))

	assert.Equal(t, []domain.JobStatus{domain.JobFailed}, h.verdicts)
	require.NoError(t, m.Close())
}

func TestMonitor_InfraErrorsFireOncePerKind(t *testing.T) {
	h := newHarness(t)
	h.notifier.EXPECT().Suggest(gomock.Any(), "https://github.com/getlocalci/local-ci/discussions/121#discussion-4075651").Times(1)
	h.notifier.EXPECT().Suggest(gomock.Any(), "").Times(1)
	h.states.EXPECT().Put("/repo", statusIs(domain.JobIdle)).Return(nil)

	m := monitor.New(context.Background(), h.config())
	_, _ = m.Write([]byte("OCI runtime create failed\n"))
	_, _ = m.Write([]byte("OCI runtime create failed\nfailed to create runner binary\n"))

	_, ok := m.Verdict()
	assert.False(t, ok)
	assert.Empty(t, h.verdicts)
	require.NoError(t, m.Close())
}

func TestMonitor_SplitMarkerIsNotDetected(t *testing.T) {
	h := newHarness(t)
	h.states.EXPECT().Put("/repo", statusIs(domain.JobIdle)).Return(nil)

	m := monitor.New(context.Background(), h.config())
	_, _ = m.Write([]byte("\x1b[32mSucc"))
	_, _ = m.Write([]byte("ess!\x1b[0m\n"))

	_, ok := m.Verdict()
	assert.False(t, ok)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Equal(t, []string{"build"}, h.refresher.refreshed)
}

func TestMonitor_DynamicConfigReport(t *testing.T) {
	tests := []struct {
		name     string
		hasJobs  bool
		expected string
	}{
		{name: "with jobs", hasJobs: true, expected: monitor.DynamicJobsMessage},
		{name: "without jobs", hasJobs: false, expected: monitor.NoDynamicJobsMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				h := newHarness(t)
				h.states.EXPECT().Put("/repo", statusIs(domain.JobSucceeded)).Return(nil)
				h.notifier.EXPECT().JobFinished("build", domain.JobSucceeded, gomock.Any())
				h.notifier.EXPECT().Message(tt.expected)

				cfg := h.config()
				cfg.Dynamic = true
				cfg.DynamicJobs = func() (bool, error) { return tt.hasJobs, nil }
				m := monitor.New(t.Context(), cfg)

				start := time.Now()
				_, _ = m.Write([]byte(successLine))
				require.NoError(t, m.Close())

				assert.Equal(t, monitor.DynamicReportDelay, time.Since(start))
				assert.Equal(t, 1, h.refresher.hard)
			})
		})
	}
}
