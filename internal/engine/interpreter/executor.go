package interpreter

import (
	"context"
	"fmt"

	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
	"go.trai.ch/zerr"
)

// ExecOptions controls how cmd directives are launched.
type ExecOptions struct {
	Shell []string
	Env   map[string]string
	// DryRun echoes commands without launching them.
	DryRun bool
}

// Executor runs tasks from a parsed State.
type Executor struct {
	state    *State
	launcher ports.Launcher
	console  ports.Console
	logger   ports.Logger
	tracer   ports.Tracer
	opts     ExecOptions
}

// NewExecutor creates a new Executor.
func NewExecutor(
	state *State,
	launcher ports.Launcher,
	console ports.Console,
	logger ports.Logger,
	tracer ports.Tracer,
	opts ExecOptions,
) *Executor {
	return &Executor{
		state:    state,
		launcher: launcher,
		console:  console,
		logger:   logger,
		tracer:   tracer,
		opts:     opts,
	}
}

// Run executes the body of the named task line by line. It stops at the
// first directive that fails.
func (e *Executor) Run(ctx context.Context, name string) (err error) {
	task, ok := e.state.Tasks.Lookup(name)
	if !ok {
		return domain.Tag(domain.ErrTaskNotDefined, "task", name)
	}

	ctx, span := e.tracer.Start(ctx, "task "+task.Name)
	span.SetAttribute("task.lines", len(task.Body))
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	for _, line := range task.Body {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zerr.With(zerr.Wrap(ctxErr, "task interrupted"), "task", task.Name)
		}
		if err := e.runLine(ctx, line); err != nil {
			return domain.Tag(err, "task", task.Name, "line", line.Line)
		}
	}
	return nil
}

func (e *Executor) runLine(ctx context.Context, line domain.BodyLine) error {
	if text, ok := cutKeyword(line.Text, "print"); ok {
		out, err := Substitute(text, e.state.Variables.Lookup)
		if err != nil {
			return err
		}
		e.console.Print(out)
		return nil
	}

	if text, ok := cutKeyword(line.Text, "cmd"); ok {
		cmdline, err := Substitute(text, e.state.Variables.Lookup)
		if err != nil {
			return err
		}
		return e.runCommand(ctx, cmdline)
	}

	e.logger.Debug(fmt.Sprintf("line %d: ignoring %q", line.Line, line.Text))
	return nil
}

func (e *Executor) runCommand(ctx context.Context, cmdline string) error {
	ctx, span := e.tracer.Start(ctx, "cmd")
	defer span.End()
	span.SetAttribute("command", cmdline)

	e.console.Command(cmdline)
	if e.opts.DryRun {
		return nil
	}

	result, err := e.launcher.Launch(ctx, domain.Command{
		Line:  cmdline,
		Shell: e.opts.Shell,
		Env:   e.opts.Env,
	})
	if err == nil && !result.Started {
		err = domain.Tag(domain.ErrCommandNotStarted, "command", cmdline)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("exit_code", result.ExitCode)
	if result.ExitCode != 0 {
		err := domain.Tag(domain.ErrCommandFailed, "exit_code", result.ExitCode)
		span.RecordError(err)
		return err
	}
	return nil
}
