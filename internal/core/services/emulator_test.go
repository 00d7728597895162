package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bargo/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bargo/internal/core/domain"
)

func newEmulatorFixture(t *testing.T, emuPath string) (*EmulatorService, *memory.FileSystem, *stubRunner) {
	t.Helper()
	fs := memory.NewFileSystem()
	store := memory.NewManifestStore()
	pkg := domain.DefaultPackage("game", "")
	pkg.EmuPath = emuPath
	require.NoError(t, store.Save(filepath.Join(testRoot, domain.ManifestFile), domain.NewManifest(pkg)))
	runner := &stubRunner{}
	return NewEmulatorService(testRoot, "/home/user", fs, store, runner), fs, runner
}

func TestEmulatorService_Run(t *testing.T) {
	emu := "/opt/fab-agon-emulator"
	service, fs, runner := newEmulatorFixture(t, emu)
	require.NoError(t, fs.MkdirAll(emu))
	fs.AddFile(filepath.Join(testRoot, "game.bas"), "10 PRINT 1\r\n")

	err := service.Run(context.Background())

	require.NoError(t, err)
	copied, ok := fs.File(filepath.Join(emu, "sdcard", "game.bas"))
	require.True(t, ok)
	assert.Equal(t, "10 PRINT 1\r\n", copied)

	autoexec, ok := fs.File(filepath.Join(emu, "sdcard", "autoexec.txt"))
	require.True(t, ok)
	assert.Equal(t, "bbcbasic /game.bas\r\n", autoexec)

	assert.Equal(t, emu, runner.dir)
	assert.Equal(t, filepath.Join(emu, "fab-agon-emulator"), runner.name)
	assert.Equal(t, []string{"-f", "--sdcard", "./sdcard"}, runner.args)
}

func TestEmulatorService_Run_ExpandsHome(t *testing.T) {
	service, fs, runner := newEmulatorFixture(t, "~/fab-agon-emulator")
	emu := filepath.Join("/home/user", "fab-agon-emulator")
	require.NoError(t, fs.MkdirAll(emu))
	fs.AddFile(filepath.Join(testRoot, "game.bas"), "10 END\r\n")

	require.NoError(t, service.Run(context.Background()))

	assert.Equal(t, emu, runner.dir)
}

func TestEmulatorService_Run_EmulatorMissing(t *testing.T) {
	service, _, runner := newEmulatorFixture(t, "/nowhere")

	err := service.Run(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmulatorNotFound)
	assert.Contains(t, err.Error(), "/nowhere")
	assert.Contains(t, err.Error(), "Bargo.toml")
	assert.Empty(t, runner.name)
}

func TestEmulatorService_Run_NotBuilt(t *testing.T) {
	service, fs, runner := newEmulatorFixture(t, "/emu")
	require.NoError(t, fs.MkdirAll("/emu"))

	err := service.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build first")
	assert.Empty(t, runner.name)
}

func TestEmulatorService_Run_LaunchFailure(t *testing.T) {
	service, fs, runner := newEmulatorFixture(t, "/emu")
	require.NoError(t, fs.MkdirAll("/emu"))
	fs.AddFile(filepath.Join(testRoot, "game.bas"), "10 END\r\n")
	runner.err = errors.New("exec format error")

	err := service.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not run emulator")
}

func TestEmulatorService_NilCollaborators(t *testing.T) {
	service := NewEmulatorService(testRoot, "", nil, nil, nil)

	assert.ErrorIs(t, service.Run(context.Background()), domain.ErrNotImplemented)
}
