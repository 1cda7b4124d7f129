// Package config loads, compiles and writes pipeline configs.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/localci/internal/core/domain"
	"go.trai.ch/localci/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader on top of an external compiler.
type Loader struct {
	Logger   ports.Logger
	Compiler ports.ConfigCompiler
}

// NewLoader creates a new Loader with the given logger and compiler.
func NewLoader(logger ports.Logger, compiler ports.ConfigCompiler) *Loader {
	return &Loader{Logger: logger, Compiler: compiler}
}

// Locate walks up from cwd until it finds a directory containing .circleci/config.yml.
func (l *Loader) Locate(cwd string) (domain.Layout, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.CircleCIDirName, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return domain.NewLayout(currentDir), nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return domain.Layout{}, zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load returns the compiled config for the layout's source config.
// Compiler output is cached under .localci/compiled keyed by the source bytes.
func (l *Loader) Load(ctx context.Context, layout domain.Layout, opts ports.LoadOptions) (*domain.PipelineConfig, error) {
	configPath := layout.ConfigPath()
	// #nosec G304 -- configPath is discovered by Locate or given on the command line
	src, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	cachePath := filepath.Join(layout.CompiledDir(), fmt.Sprintf("%016x.yml", xxhash.Sum64(src)))
	if !opts.Hard {
		// #nosec G304 -- cachePath is derived from the layout
		if data, readErr := os.ReadFile(cachePath); readErr == nil {
			if cfg, decodeErr := Decode(data); decodeErr == nil {
				return cfg, nil
			}
			l.warn("discarding unreadable compiled config " + cachePath)
		}
	}

	binary := opts.Binary
	if binary == "" {
		binary = domain.DefaultBinary
	}
	data, err := l.Compiler.Compile(ctx, binary, configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := l.storeCompiled(layout.CompiledDir(), cachePath, data); err != nil {
		l.warn(err.Error())
	}
	return cfg, nil
}

// LoadDynamic decodes the dynamic config a setup job wrote into the shared volume.
// It returns nil without error when no setup job has written one.
func (l *Loader) LoadDynamic(layout domain.Layout) (*domain.PipelineConfig, error) {
	path := layout.DynamicConfigPath()
	// #nosec G304 -- path is derived from the layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// storeCompiled replaces the cache with the latest compiler output.
func (l *Loader) storeCompiled(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create compiled config cache"), "dir", dir)
	}
	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, e := range entries {
			stale := filepath.Join(dir, e.Name())
			if stale != path {
				_ = os.Remove(stale)
			}
		}
	}
	if err := writeFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to cache compiled config"), "path", path)
	}
	return nil
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}
