package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bargo/internal/core/domain"
	"github.com/custodia-labs/bargo/internal/core/ports/driven"
	"github.com/custodia-labs/bargo/internal/core/ports/driving"
	"github.com/custodia-labs/bargo/internal/logger"
)

// Emulator layout.
const (
	emulatorBinary = domain.EmulatorDirName
	sdcardDir      = "sdcard"
	autoexecFile   = "autoexec.txt"
)

var emulatorArgs = []string{"-f", "--sdcard", "./" + sdcardDir}

// Ensure EmulatorService implements the interface.
var _ driving.EmulatorService = (*EmulatorService)(nil)

// EmulatorService installs the generated program on the emulator's sdcard
// and launches the emulator.
type EmulatorService struct {
	root      string
	homeDir   string
	fs        driven.FileSystem
	manifests driven.ManifestStore
	runner    driven.ProcessRunner
}

// NewEmulatorService creates a new emulator service.
func NewEmulatorService(
	root, homeDir string,
	fs driven.FileSystem,
	manifests driven.ManifestStore,
	runner driven.ProcessRunner,
) *EmulatorService {
	return &EmulatorService{root: root, homeDir: homeDir, fs: fs, manifests: manifests, runner: runner}
}

// Run copies <name>.bas to the sdcard, writes an autoexec.txt that loads it
// and starts the emulator from its own folder.
func (s *EmulatorService) Run(ctx context.Context) error {
	if s.fs == nil || s.manifests == nil || s.runner == nil {
		return domain.ErrNotImplemented
	}

	manifest, err := s.manifests.Load(filepath.Join(s.root, domain.ManifestFile))
	if err != nil {
		return err
	}
	pkg := manifest.Package
	emuDir := s.expandHome(pkg.EmuPath)

	exists, err := s.fs.Exists(emuDir)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: could not find the emulator in %s\nSpecify the full path to the emulator's folder in %s",
			domain.ErrEmulatorNotFound, emuDir, domain.ManifestFile)
	}

	program, err := s.fs.ReadFile(filepath.Join(s.root, pkg.OutputFile()))
	if err != nil {
		return fmt.Errorf("could not copy source to emulator\nGo to project's root folder and/or build first: %w", err)
	}
	dest := filepath.Join(emuDir, sdcardDir, pkg.OutputFile())
	if err := s.fs.WriteFile(dest, program); err != nil {
		return fmt.Errorf("could not copy source to emulator: %w", err)
	}

	autoexec := filepath.Join(emuDir, sdcardDir, autoexecFile)
	body := fmt.Sprintf("bbcbasic /%s%s", pkg.OutputFile(), domain.TerminatorCRLF)
	if err := s.fs.WriteFile(autoexec, []byte(body)); err != nil {
		return fmt.Errorf("could not write to %s: %w", autoexec, err)
	}

	logger.Info("Launching %s in %s", emulatorBinary, emuDir)
	if err := s.runner.Run(ctx, emuDir, filepath.Join(emuDir, emulatorBinary), emulatorArgs...); err != nil {
		return fmt.Errorf("could not run emulator: %w", err)
	}
	return nil
}

func (s *EmulatorService) expandHome(path string) string {
	if s.homeDir == "" {
		return path
	}
	if path == "~" {
		return s.homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(s.homeDir, path[2:])
	}
	return path
}
