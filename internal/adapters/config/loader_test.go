package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/localci/internal/adapters/config"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/localci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const source = "version: 2.1\njobs:\n  build:\n    docker: [{image: alpine}]\n"

func writeSource(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, domain.CircleCIDirName)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), domain.FilePerm))
}

func TestLoader_Locate(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, source)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	loader := config.NewLoader(nil, nil)

	layout, err := loader.Locate(nested)
	require.NoError(t, err)
	assert.Equal(t, root, layout.Root)

	_, err = loader.Locate(t.TempDir())
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockConfigCompiler(ctrl)
	root := t.TempDir()
	writeSource(t, root, source)
	layout := domain.NewLayout(root)

	compiler.EXPECT().
		Compile(gomock.Any(), domain.DefaultBinary, layout.ConfigPath()).
		Return([]byte(compiled), nil).
		Times(1)

	loader := config.NewLoader(nil, compiler)

	first, err := loader.Load(context.Background(), layout, ports.LoadOptions{})
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), layout, ports.LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, first.Workflows, second.Workflows)

	entries, err := os.ReadDir(layout.CompiledDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoader_Load_HardAndChangedSourceRecompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockConfigCompiler(ctrl)
	root := t.TempDir()
	writeSource(t, root, source)
	layout := domain.NewLayout(root)

	compiler.EXPECT().
		Compile(gomock.Any(), "/opt/circleci", layout.ConfigPath()).
		Return([]byte(compiled), nil).
		Times(3)

	loader := config.NewLoader(nil, compiler)
	opts := ports.LoadOptions{Binary: "/opt/circleci"}

	_, err := loader.Load(context.Background(), layout, opts)
	require.NoError(t, err)

	opts.Hard = true
	_, err = loader.Load(context.Background(), layout, opts)
	require.NoError(t, err)

	writeSource(t, root, source+"# edited\n")
	opts.Hard = false
	_, err = loader.Load(context.Background(), layout, opts)
	require.NoError(t, err)

	entries, err := os.ReadDir(layout.CompiledDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "stale compiled configs are pruned")
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		loader := config.NewLoader(nil, nil)
		_, err := loader.Load(context.Background(), domain.NewLayout(t.TempDir()), ports.LoadOptions{})
		require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
	})

	t.Run("compiler failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		compiler := mocks.NewMockConfigCompiler(ctrl)
		root := t.TempDir()
		writeSource(t, root, source)

		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("Error: dial tcp: connection refused"))

		loader := config.NewLoader(nil, compiler)
		_, err := loader.Load(context.Background(), domain.NewLayout(root), ports.LoadOptions{})
		require.ErrorContains(t, err, "connection refused")
	})

	t.Run("compiled output without jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		compiler := mocks.NewMockConfigCompiler(ctrl)
		root := t.TempDir()
		writeSource(t, root, source)

		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("version: 2\n"), nil)

		loader := config.NewLoader(nil, compiler)
		_, err := loader.Load(context.Background(), domain.NewLayout(root), ports.LoadOptions{})
		require.ErrorContains(t, err, domain.ErrMalformedConfig.Error())
	})
}

func TestLoader_Load_ConfigOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockConfigCompiler(ctrl)
	root := t.TempDir()
	custom := filepath.Join(root, "ci.yml")
	require.NoError(t, os.WriteFile(custom, []byte(source), domain.FilePerm))

	compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), custom).Return([]byte(compiled), nil)

	loader := config.NewLoader(nil, compiler)
	cfg, err := loader.Load(context.Background(), domain.Layout{Root: root, Config: custom}, ports.LoadOptions{})
	require.NoError(t, err)
	assert.Contains(t, cfg.Jobs, "deploy")
}

func TestLoader_LoadDynamic(t *testing.T) {
	root := t.TempDir()
	layout := domain.NewLayout(root)
	loader := config.NewLoader(nil, nil)

	cfg, err := loader.LoadDynamic(layout)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	require.NoError(t, os.MkdirAll(layout.VolumeDir(), domain.DirPerm))
	require.NoError(t, os.WriteFile(layout.DynamicConfigPath(), []byte(compiled), domain.FilePerm))

	cfg, err = loader.LoadDynamic(layout)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Jobs, 2)

	require.NoError(t, os.WriteFile(layout.DynamicConfigPath(), []byte("version: 2\n"), domain.FilePerm))
	_, err = loader.LoadDynamic(layout)
	require.ErrorContains(t, err, domain.ErrMalformedConfig.Error())
}

func TestCompiler_Compile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the job runner")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "runner")
	body := "#!/bin/sh\nif [ \"$1 $2\" != \"config process\" ]; then echo bad args >&2; exit 2; fi\n" +
		"if [ \"$3\" = fail ]; then echo 'Error: config is invalid' >&2; exit 1; fi\n" +
		"printf 'jobs:\\n  a: {}\\n'\n"
	// #nosec G306 -- the script must be executable
	require.NoError(t, os.WriteFile(script, []byte(body), 0o700))

	c := config.NewCompiler()

	out, err := c.Compile(context.Background(), script, "config.yml")
	require.NoError(t, err)
	assert.Equal(t, "jobs:\n  a: {}\n", string(out))

	_, err = c.Compile(context.Background(), script, "fail")
	require.ErrorContains(t, err, domain.ErrConfigProcessFailed.Error())
	require.ErrorContains(t, err, "Error: config is invalid")

	_, err = c.Compile(context.Background(), filepath.Join(dir, "missing"), "config.yml")
	require.ErrorContains(t, err, domain.ErrConfigProcessFailed.Error())
}

func TestWriter_WriteProcessFile(t *testing.T) {
	cfg, err := config.Decode([]byte(compiled))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), ".localci", domain.ProcessFileName)
	w := config.NewWriter()
	require.NoError(t, w.WriteProcessFile(path, cfg))
	require.NoError(t, w.WriteProcessFile(path, cfg), "existing files are replaced")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	again, err := config.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Workflows, again.Workflows)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}
