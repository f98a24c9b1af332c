package fs_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kfs "go.trai.ch/kmak/internal/adapters/fs"
	"go.trai.ch/kmak/internal/core/domain"
	"go.trai.ch/kmak/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS) (*kfs.ScriptLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return kfs.NewScriptLoader(kfs.NewMapFSAdapter("/", files), log), log
}

func TestScriptLoader_Load(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"build.kmak": {Data: []byte("CC = gcc\r\ntask build\r\n  cmd $(CC) main.c\r\n")},
	})

	text, err := loader.Load("build.kmak")

	require.NoError(t, err)
	assert.Equal(t, "CC = gcc\r\ntask build\r\n  cmd $(CC) main.c\r\n", text)
}

func TestScriptLoader_Missing(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	_, err := loader.Load("missing.kmak")

	require.ErrorIs(t, err, domain.ErrScriptOpenFailed)
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "missing.kmak", zErr.Metadata()["path"])
}

func TestScriptLoader_Directory(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"scripts/build.kmak": {Data: []byte("")},
	})

	_, err := loader.Load("scripts")

	require.ErrorIs(t, err, domain.ErrScriptOpenFailed)
}

func TestScriptLoader_InvalidUTF8Warns(t *testing.T) {
	loader, log := newLoader(t, fstest.MapFS{
		"latin1.kmak": {Data: []byte("print caf\xe9\n")},
	})
	log.EXPECT().Warn("latin1.kmak: script is not valid UTF-8")

	text, err := loader.Load("latin1.kmak")

	require.NoError(t, err)
	assert.Equal(t, "print caf\xe9\n", text)
}
