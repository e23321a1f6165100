// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gird-dev/gird/internal/adapters/config"
	_ "github.com/gird-dev/gird/internal/adapters/fs"
	_ "github.com/gird-dev/gird/internal/adapters/logger"
	_ "github.com/gird-dev/gird/internal/adapters/shell"
	_ "github.com/gird-dev/gird/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/gird-dev/gird/internal/app"
	_ "github.com/gird-dev/gird/internal/engine/resolver"
	_ "github.com/gird-dev/gird/internal/engine/scheduler"
)
