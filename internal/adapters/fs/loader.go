package fs

import (
	"unicode/utf8"

	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
)

// ScriptLoader implements ports.ScriptLoader on top of a FileSystem.
type ScriptLoader struct {
	fsys   FileSystem
	logger ports.Logger
}

// NewScriptLoader creates a new ScriptLoader.
func NewScriptLoader(fsys FileSystem, logger ports.Logger) *ScriptLoader {
	return &ScriptLoader{fsys: fsys, logger: logger}
}

// Load reads the whole script at path.
func (l *ScriptLoader) Load(path string) (string, error) {
	info, err := l.fsys.Stat(path)
	if err != nil {
		return "", domain.Tag(domain.ErrScriptOpenFailed, "path", path, "cause", err.Error())
	}
	if info.IsDir() {
		return "", domain.Tag(domain.ErrScriptOpenFailed, "path", path, "cause", "is a directory")
	}

	data, err := l.fsys.ReadFile(path)
	if err != nil {
		return "", domain.Tag(domain.ErrScriptOpenFailed, "path", path, "cause", err.Error())
	}

	if !utf8.Valid(data) {
		l.logger.Warn(path + ": script is not valid UTF-8")
	}

	return string(data), nil
}
