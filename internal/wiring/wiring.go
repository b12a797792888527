// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/gantrybuild/gantry/internal/adapters/config"
	_ "github.com/gantrybuild/gantry/internal/adapters/intercept"
	_ "github.com/gantrybuild/gantry/internal/adapters/logger"
	_ "github.com/gantrybuild/gantry/internal/adapters/results"
	_ "github.com/gantrybuild/gantry/internal/adapters/shell"
	_ "github.com/gantrybuild/gantry/internal/adapters/telemetry"
	// Register the app node.
	_ "github.com/gantrybuild/gantry/internal/app"
)
