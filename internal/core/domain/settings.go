package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// ConfigFileName is the settings file looked up next to the script.
	ConfigFileName = ".kmak.yaml"

	// MaxVariableNameLen is the longest name accepted inside a $(name) reference.
	MaxVariableNameLen = 127

	// LogFormatPretty renders human readable log lines.
	LogFormatPretty = "pretty"
	// LogFormatJSON renders one JSON object per log line.
	LogFormatJSON = "json"
)

// Limits caps how much a script may declare. Zero means unlimited.
type Limits struct {
	Variables int
	Tasks     int
	TaskLines int
}

// LogSettings configures the logger.
type LogSettings struct {
	Format string
	Level  string
}

// Settings holds everything kmak reads from its optional settings file.
type Settings struct {
	// Shell is the argv prefix for cmd directives. Nil selects the platform
	// default, an empty slice runs commands without a shell.
	Shell  []string
	Env    map[string]string
	Limits Limits
	Log    LogSettings
}

// DefaultShell returns the command interpreter used when no shell is configured.
func DefaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"sh", "-c"}
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Shell: DefaultShell(),
		Env:   map[string]string{},
		Log: LogSettings{
			Format: LogFormatPretty,
			Level:  "info",
		},
	}
}

// DefaultConfigPath returns the settings file path for the given script.
func DefaultConfigPath(scriptPath string) string {
	return filepath.Join(filepath.Dir(scriptPath), ConfigFileName)
}
