package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kmak/internal/adapters/logger"
	"go.trai.ch/kmak/internal/app"
	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports"
	"go.trai.ch/kmak/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const script = `CC = gcc
task build
  print Building with $(CC)
  cmd $(CC) -o app main.c
task clean
  cmd rm -f app
`

type fixture struct {
	configLoader *mocks.MockConfigLoader
	scriptLoader *mocks.MockScriptLoader
	launcher     *mocks.MockLauncher
	console      *mocks.MockConsole
}

func newApp(t *testing.T, log ports.Logger) (*app.App, fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		scriptLoader: mocks.NewMockScriptLoader(ctrl),
		launcher:     mocks.NewMockLauncher(ctrl),
		console:      mocks.NewMockConsole(ctrl),
	}

	if log == nil {
		m := mocks.NewMockLogger(ctrl)
		m.EXPECT().Debug(gomock.Any()).AnyTimes()
		m.EXPECT().Info(gomock.Any()).AnyTimes()
		m.EXPECT().Warn(gomock.Any()).AnyTimes()
		m.EXPECT().Error(gomock.Any()).AnyTimes()
		log = m
	}

	return app.New(f.configLoader, f.scriptLoader, f.launcher, f.console, log), f
}

func (f fixture) expectScript(text string) {
	f.configLoader.EXPECT().Load("build.kmak", "").Return(domain.DefaultSettings(), nil)
	f.scriptLoader.EXPECT().Load("build.kmak").Return(text, nil)
}

func TestApp_RunTask(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript(script)

	gomock.InOrder(
		f.console.EXPECT().Print("Building with gcc"),
		f.console.EXPECT().Command("gcc -o app main.c"),
		f.launcher.EXPECT().Launch(gomock.Any(), domain.Command{
			Line:  "gcc -o app main.c",
			Shell: domain.DefaultShell(),
			Env:   map[string]string{},
		}).Return(domain.LaunchResult{Started: true}, nil),
	)

	require.NoError(t, a.Run(context.Background(), "build.kmak", "build", app.RunOptions{}))
}

func TestApp_ParseOnly(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript(script)

	require.NoError(t, a.Run(context.Background(), "build.kmak", "", app.RunOptions{}))
}

func TestApp_List(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript(script)
	f.console.EXPECT().Tasks([]string{"build", "clean"})

	require.NoError(t, a.Run(context.Background(), "build.kmak", "", app.RunOptions{List: true}))
}

func TestApp_Defines(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript(script)
	f.console.EXPECT().Print("Building with clang")
	f.console.EXPECT().Command("clang -o app main.c")

	err := a.Run(context.Background(), "build.kmak", "build", app.RunOptions{
		Defines: []string{"CC=clang"},
		DryRun:  true,
	})

	require.NoError(t, err)
}

func TestApp_InvalidDefine(t *testing.T) {
	a, f := newApp(t, nil)
	f.configLoader.EXPECT().Load("build.kmak", "").Return(domain.DefaultSettings(), nil)

	err := a.Run(context.Background(), "build.kmak", "build", app.RunOptions{Defines: []string{"=x"}})

	require.ErrorIs(t, err, domain.ErrInvalidDefine)
}

func TestApp_UndefinedTask(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript(script)

	err := a.Run(context.Background(), "build.kmak", "deploy", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrTaskNotDefined)
	assert.Equal(t, "task isn't defined", err.Error())
}

func TestApp_TaskFailure(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript("task clean\n  cmd rm -f app\n")
	f.console.EXPECT().Command("rm -f app")
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any()).
		Return(domain.LaunchResult{Started: true, ExitCode: 1}, nil)

	err := a.Run(context.Background(), "build.kmak", "clean", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.True(t, strings.HasPrefix(err.Error(), domain.ErrTaskFailed.Error()+": "), err.Error())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, map[string]any{"task": "clean"}, zErr.Metadata())
}

func TestApp_ScriptOpenFailure(t *testing.T) {
	a, f := newApp(t, nil)
	f.configLoader.EXPECT().Load("missing.kmak", "").Return(domain.DefaultSettings(), nil)
	f.scriptLoader.EXPECT().Load("missing.kmak").
		Return("", domain.Tag(domain.ErrScriptOpenFailed, "path", "missing.kmak"))

	err := a.Run(context.Background(), "missing.kmak", "", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrScriptOpenFailed)
}

func TestApp_StructuralError(t *testing.T) {
	a, f := newApp(t, nil)
	f.expectScript("task a\ntask a\n")

	err := a.Run(context.Background(), "build.kmak", "a", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrDuplicateTask)
	assert.Contains(t, err.Error(), domain.ErrParseFailed.Error())
}

func TestApp_SettingsError(t *testing.T) {
	a, f := newApp(t, nil)
	f.configLoader.EXPECT().Load("build.kmak", "custom.yaml").Return(nil, errors.New("boom"))

	err := a.Run(context.Background(), "build.kmak", "", app.RunOptions{ConfigPath: "custom.yaml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")
}

func TestApp_SettingsDriveLauncher(t *testing.T) {
	a, f := newApp(t, nil)

	settings := domain.DefaultSettings()
	settings.Shell = []string{}
	settings.Env = map[string]string{"CC": "clang"}
	f.configLoader.EXPECT().Load("build.kmak", "").Return(settings, nil)
	f.scriptLoader.EXPECT().Load("build.kmak").Return("task t\n  cmd make all\n", nil)
	f.console.EXPECT().Command("make all")
	f.launcher.EXPECT().Launch(gomock.Any(), domain.Command{
		Line:  "make all",
		Shell: []string{},
		Env:   map[string]string{"CC": "clang"},
	}).Return(domain.LaunchResult{Started: true}, nil)

	require.NoError(t, a.Run(context.Background(), "build.kmak", "t", app.RunOptions{}))
}

func TestApp_LimitsFromSettings(t *testing.T) {
	a, f := newApp(t, nil)

	settings := domain.DefaultSettings()
	settings.Limits.Tasks = 1
	f.configLoader.EXPECT().Load("build.kmak", "").Return(settings, nil)
	f.scriptLoader.EXPECT().Load("build.kmak").Return(script, nil)

	err := a.Run(context.Background(), "build.kmak", "", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrTooManyTasks)
}

func TestApp_ConfiguresLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	log := logger.New().(*logger.Logger)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	a, f := newApp(t, log)
	f.expectScript(script)

	require.NoError(t, a.Run(context.Background(), "build.kmak", "", app.RunOptions{
		Verbose:   true,
		LogFormat: domain.LogFormatJSON,
	}))

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), "parsed 1 variables and 2 tasks")
}

func TestApp_InvalidLogFormatFlag(t *testing.T) {
	a, f := newApp(t, nil)
	f.configLoader.EXPECT().Load("build.kmak", "").Return(domain.DefaultSettings(), nil)

	err := a.Run(context.Background(), "build.kmak", "", app.RunOptions{LogFormat: "xml"})

	require.ErrorIs(t, err, domain.ErrInvalidLogFormat)
}

func TestApp_InvalidLogLevelSetting(t *testing.T) {
	a, f := newApp(t, nil)
	settings := domain.DefaultSettings()
	settings.Log.Level = "loud"
	f.configLoader.EXPECT().Load("build.kmak", "").Return(settings, nil)

	err := a.Run(context.Background(), "build.kmak", "", app.RunOptions{})

	require.ErrorIs(t, err, domain.ErrInvalidLogLevel)
}

func TestApp_VerboseOverridesInvalidLevel(t *testing.T) {
	a, f := newApp(t, nil)
	settings := domain.DefaultSettings()
	settings.Log.Level = "loud"
	f.configLoader.EXPECT().Load("build.kmak", "").Return(settings, nil)
	f.scriptLoader.EXPECT().Load("build.kmak").Return(script, nil)

	err := a.Run(context.Background(), "build.kmak", "", app.RunOptions{Verbose: true})

	require.NoError(t, err)
}

func TestApp_Trace(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	log := logger.New().(*logger.Logger)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	a, f := newApp(t, log)
	f.expectScript(script)
	f.console.EXPECT().Print("Building with gcc")
	f.console.EXPECT().Command("gcc -o app main.c")

	require.NoError(t, a.Run(context.Background(), "build.kmak", "build", app.RunOptions{
		Trace:  true,
		DryRun: true,
	}))

	assert.Contains(t, buf.String(), `trace: cmd "gcc -o app main.c" took`)
	assert.Contains(t, buf.String(), "trace: task build took")
}
