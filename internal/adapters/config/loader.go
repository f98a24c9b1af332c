// Package config provides the settings loader for kmak.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	kfs "go.trai.ch/kmak/internal/adapters/fs"
	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fsys   kfs.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys kfs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fsys: fsys, logger: logger}
}

// Load returns the settings for scriptPath. An explicit configPath must
// exist; the default settings file next to the script is optional.
func (l *Loader) Load(scriptPath, configPath string) (*domain.Settings, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = domain.DefaultConfigPath(scriptPath)
	}

	if _, err := l.fsys.Stat(configPath); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug(fmt.Sprintf("no settings file at %s, using defaults", configPath))
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	found, err := l.readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	settings := domain.DefaultSettings()
	if !found {
		return settings, nil
	}

	if err := apply(settings, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	l.logger.Debug(fmt.Sprintf("loaded settings from %s", configPath))
	return settings, nil
}

// readAndUnmarshalYAML decodes configPath into target, rejecting unknown keys.
// It reports false when the file holds no document.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *File) (bool, error) {
	data, err := l.fsys.ReadFile(configPath)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}

func apply(settings *domain.Settings, file *File) error {
	if file.Shell != nil {
		settings.Shell = append([]string{}, (*file.Shell)...)
	}

	for k, v := range file.Env {
		settings.Env[k] = v
	}

	limits := file.Limits
	if limits.Variables < 0 || limits.Tasks < 0 || limits.Lines < 0 {
		return domain.Tag(domain.ErrInvalidLimit, "variables", limits.Variables, "tasks", limits.Tasks, "lines", limits.Lines)
	}
	settings.Limits = domain.Limits{
		Variables: limits.Variables,
		Tasks:     limits.Tasks,
		TaskLines: limits.Lines,
	}

	if file.Log.Format != "" {
		settings.Log.Format = strings.ToLower(file.Log.Format)
	}
	if file.Log.Level != "" {
		settings.Log.Level = strings.ToLower(file.Log.Level)
	}

	return Validate(settings)
}

// Validate checks values that may also come from command line flags.
func Validate(settings *domain.Settings) error {
	switch settings.Log.Format {
	case domain.LogFormatPretty, domain.LogFormatJSON:
	default:
		return domain.Tag(domain.ErrInvalidLogFormat, "format", settings.Log.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.Log.Level)); err != nil {
		return domain.Tag(domain.ErrInvalidLogLevel, "level", settings.Log.Level)
	}

	return nil
}
