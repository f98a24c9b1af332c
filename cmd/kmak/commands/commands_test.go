package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kmak/cmd/kmak/commands"
	"go.trai.ch/kmak/internal/app"
	"go.trai.ch/kmak/internal/build"
	"go.trai.ch/kmak/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, scriptPath, taskName string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, scriptPath, taskName string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, scriptPath, taskName, opts)
	}
	return nil
}

type runCall struct {
	scriptPath string
	taskName   string
	opts       app.RunOptions
}

func recordingApp(calls *[]runCall) *mockApp {
	return &mockApp{
		runFunc: func(_ context.Context, scriptPath, taskName string, opts app.RunOptions) error {
			*calls = append(*calls, runCall{scriptPath, taskName, opts})
			return nil
		},
	}
}

func TestRoot_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want runCall
	}{
		{
			name: "script only",
			args: []string{"build.kmak"},
			want: runCall{scriptPath: "build.kmak"},
		},
		{
			name: "script and task",
			args: []string{"build.kmak", "test"},
			want: runCall{scriptPath: "build.kmak", taskName: "test"},
		},
		{
			name: "all flags",
			args: []string{
				"-c", "ci.yaml", "-D", "CC=clang", "--define", "MODE=release",
				"-n", "-l", "--trace", "-v", "--log-format", "json",
				"build.kmak", "build",
			},
			want: runCall{
				scriptPath: "build.kmak",
				taskName:   "build",
				opts: app.RunOptions{
					ConfigPath: "ci.yaml",
					Defines:    []string{"CC=clang", "MODE=release"},
					DryRun:     true,
					List:       true,
					Trace:      true,
					Verbose:    true,
					LogFormat:  "json",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []runCall
			cli := commands.New(recordingApp(&calls))
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0])
		})
	}
}

func TestRoot_NoScript(t *testing.T) {
	var calls []runCall
	cli := commands.New(recordingApp(&calls))
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs([]string{})

	err := cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrNoScriptFile)
	assert.Empty(t, calls)
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Contains(t, stderr.String(), "kmak <script-file> [task]")
	assert.Empty(t, stdout.String())
}

func TestRoot_TooManyArgs(t *testing.T) {
	var calls []runCall
	cli := commands.New(recordingApp(&calls))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"a.kmak", "b", "c"})

	require.Error(t, cli.Execute(context.Background()))
	assert.Empty(t, calls)
}

func TestRoot_ScriptOpenFailureShowsUsage(t *testing.T) {
	cli := commands.New(&mockApp{
		runFunc: func(context.Context, string, string, app.RunOptions) error {
			return domain.Tag(domain.ErrScriptOpenFailed, "path", "missing.kmak")
		},
	})
	stderr := new(bytes.Buffer)
	cli.SetOutput(new(bytes.Buffer), stderr)
	cli.SetArgs([]string{"missing.kmak"})

	err := cli.Execute(context.Background())

	require.ErrorIs(t, err, domain.ErrScriptOpenFailed)
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRoot_RunFailure(t *testing.T) {
	cli := commands.New(&mockApp{
		runFunc: func(context.Context, string, string, app.RunOptions) error {
			return errors.New("simulated error")
		},
	})
	stderr := new(bytes.Buffer)
	cli.SetOutput(new(bytes.Buffer), stderr)
	cli.SetArgs([]string{"build.kmak", "build"})

	err := cli.Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestVersion(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		stdout := new(bytes.Buffer)
		cli.SetOutput(stdout, new(bytes.Buffer))
		cli.SetArgs([]string{"version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t,
			"kmak version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
			stdout.String())
	})

	t.Run("flag", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		stdout := new(bytes.Buffer)
		cli.SetOutput(stdout, new(bytes.Buffer))
		cli.SetArgs([]string{"--version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "kmak version "+build.Version)
	})
}
