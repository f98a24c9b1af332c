package ports

import "go.trai.ch/kmak/internal/core/domain"

// ScriptLoader defines the interface for reading a script file.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ScriptLoader interface {
	// Load returns the full text of the script at path.
	Load(path string) (string, error)
}

// ConfigLoader defines the interface for loading kmak settings.
type ConfigLoader interface {
	// Load reads the settings for scriptPath. When configPath is empty the
	// settings file next to the script is used if it exists, otherwise defaults
	// are returned.
	Load(scriptPath, configPath string) (*domain.Settings, error)
}
