// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kmak/internal/adapters/config"
	_ "go.trai.ch/kmak/internal/adapters/console"
	_ "go.trai.ch/kmak/internal/adapters/fs"
	_ "go.trai.ch/kmak/internal/adapters/logger"
	_ "go.trai.ch/kmak/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/kmak/internal/app"
)
