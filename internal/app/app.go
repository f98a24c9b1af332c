// Package app implements the application layer for kmak.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.trai.ch/kmak/internal/adapters/config"    //nolint:depguard // Flag overrides are validated like the settings file
	"go.trai.ch/kmak/internal/adapters/telemetry" //nolint:depguard // Tracing is set up per run
	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
	"go.trai.ch/kmak/internal/engine/interpreter"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scriptLoader ports.ScriptLoader
	launcher     ports.Launcher
	console      ports.Console
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	scriptLoader ports.ScriptLoader,
	launcher ports.Launcher,
	console ports.Console,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		scriptLoader: scriptLoader,
		launcher:     launcher,
		console:      console,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath overrides the settings file next to the script.
	ConfigPath string
	// Defines are NAME=VALUE overrides that script definitions cannot replace.
	Defines   []string
	DryRun    bool
	List      bool
	Trace     bool
	Verbose   bool
	LogFormat string
}

// levelSetter is implemented by loggers whose verbosity can change at runtime.
type levelSetter interface {
	SetLevel(level slog.Level)
}

// jsonSetter is implemented by loggers that can switch to JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// Run parses the script and, when taskName is not empty, runs that task.
func (a *App) Run(ctx context.Context, scriptPath, taskName string, opts RunOptions) error {
	settings, err := a.configLoader.Load(scriptPath, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	if err := a.configureLogger(settings, opts); err != nil {
		return err
	}

	overrides := make([]domain.Variable, 0, len(opts.Defines))
	for _, def := range opts.Defines {
		v, err := interpreter.ParseOverride(def)
		if err != nil {
			return err
		}
		overrides = append(overrides, v)
	}

	text, err := a.scriptLoader.Load(scriptPath)
	if err != nil {
		return err
	}

	state, err := interpreter.NewParser(a.logger, settings.Limits, overrides...).Parse(text)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "script", scriptPath)
	}

	if opts.List {
		a.console.Tasks(state.Tasks.Names())
	}

	if taskName == "" {
		return nil
	}

	var tracer ports.Tracer = telemetry.NewNoOpTracer()
	if opts.Trace {
		shutdown := telemetry.Setup(telemetry.NewBridge(a.logger))
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
		tracer = telemetry.NewOTelTracer("kmak")
	}

	executor := interpreter.NewExecutor(state, a.launcher, a.console, a.logger, tracer, interpreter.ExecOptions{
		Shell:  settings.Shell,
		Env:    settings.Env,
		DryRun: opts.DryRun,
	})

	if err := executor.Run(ctx, taskName); err != nil {
		if errors.Is(err, domain.ErrTaskNotDefined) {
			return err
		}
		return zerr.With(zerr.Wrap(err, domain.ErrTaskFailed.Error()), "task", taskName)
	}

	return nil
}

// configureLogger applies command line flags over the settings file and
// hands the result to the logger.
func (a *App) configureLogger(settings *domain.Settings, opts RunOptions) error {
	if opts.LogFormat != "" {
		settings.Log.Format = opts.LogFormat
	}
	if opts.Verbose {
		settings.Log.Level = "debug"
	}

	if err := config.Validate(settings); err != nil {
		return err
	}

	// Validate has accepted the level.
	var level slog.Level
	_ = level.UnmarshalText([]byte(settings.Log.Level))

	if l, ok := a.logger.(jsonSetter); ok {
		l.SetJSON(settings.Log.Format == domain.LogFormatJSON)
	}
	if l, ok := a.logger.(levelSetter); ok {
		l.SetLevel(level)
	}

	return nil
}
