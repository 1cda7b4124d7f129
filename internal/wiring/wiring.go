// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/localci/internal/adapters/config"
	_ "go.trai.ch/localci/internal/adapters/detector"
	_ "go.trai.ch/localci/internal/adapters/docker"
	_ "go.trai.ch/localci/internal/adapters/license"
	_ "go.trai.ch/localci/internal/adapters/logger"
	_ "go.trai.ch/localci/internal/adapters/notify"
	_ "go.trai.ch/localci/internal/adapters/render"
	_ "go.trai.ch/localci/internal/adapters/shell"
	_ "go.trai.ch/localci/internal/adapters/store"
	_ "go.trai.ch/localci/internal/adapters/telemetry"
	_ "go.trai.ch/localci/internal/adapters/vcs"
	_ "go.trai.ch/localci/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/localci/internal/app"
	_ "go.trai.ch/localci/internal/engine/orchestrator"
)
