// Package shell provides the process launcher adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
	shellwords "mvdan.cc/sh/v3/shell"
)

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithIO replaces the standard streams handed to launched processes.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// NewLauncher creates a new Launcher that inherits the process streams.
func NewLauncher(logger ports.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch runs the command and waits for it to exit.
// With a non-empty Shell the line is passed to it as a single argument;
// otherwise the line is split into fields and executed directly.
func (l *Launcher) Launch(ctx context.Context, command domain.Command) (domain.LaunchResult, error) {
	notStarted := domain.LaunchResult{Started: false, ExitCode: -1}

	if strings.TrimSpace(command.Line) == "" {
		return notStarted, domain.ErrEmptyCommand
	}

	cmdEnv := resolveEnvironment(os.Environ(), command.Env)

	argv, err := l.argv(command, cmdEnv)
	if err != nil {
		return notStarted, err
	}

	if err := ctx.Err(); err != nil {
		return notStarted, domain.Tag(domain.ErrCommandNotStarted, "command", command.Line, "cause", err.Error())
	}

	name := argv[0]
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	// Cancellation is only checked before the start; a running command is
	// always waited for.
	cmd := exec.Command(executable, argv[1:]...) //nolint:gosec,noctx // user provided command

	// Keep the name as written in the script for argv[0].
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Env = cmdEnv
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	l.logger.Debug(fmt.Sprintf("launching %q", argv))

	if err := cmd.Start(); err != nil {
		return notStarted, domain.Tag(domain.ErrCommandNotStarted, "command", command.Line, "cause", err.Error())
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domain.LaunchResult{Started: true, ExitCode: exitErr.ExitCode()}, nil
		}
		return domain.LaunchResult{Started: true, ExitCode: -1},
			domain.Tag(domain.ErrCommandWaitFailed, "command", command.Line, "cause", err.Error())
	}

	return domain.LaunchResult{Started: true, ExitCode: 0}, nil
}

func (l *Launcher) argv(command domain.Command, env []string) ([]string, error) {
	if len(command.Shell) > 0 {
		argv := make([]string, 0, len(command.Shell)+1)
		argv = append(argv, command.Shell...)
		return append(argv, command.Line), nil
	}

	fields, err := shellwords.Fields(command.Line, envLookup(env))
	if err != nil {
		return nil, domain.Tag(domain.ErrCommandNotStarted, "command", command.Line, "cause", err.Error())
	}
	if len(fields) == 0 {
		return nil, domain.Tag(domain.ErrEmptyCommand, "command", command.Line)
	}
	return fields, nil
}

// envLookup resolves $NAME references in direct mode from the command environment.
func envLookup(env []string) func(string) string {
	return func(name string) string {
		prefix := name + "="
		for i := len(env) - 1; i >= 0; i-- {
			if v, ok := strings.CutPrefix(env[i], prefix); ok {
				return v
			}
		}
		return ""
	}
}

// resolveEnvironment merges the settings environment over the system one.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	path := envLookup(env)("PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
