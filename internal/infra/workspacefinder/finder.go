package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "yahtzee.yaml"

// Finder locates a Yahtzee workspace root by searching for yahtzee.yaml upward.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"
	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start dir is empty")}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}

	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFileName
	}

	for cur := filepath.Clean(abs); ; {
		if info, err := os.Stat(filepath.Join(cur, name)); err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: abs, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

// RootOrDir returns the workspace root above dir, or dir itself when no
// yahtzee.yaml exists. Games can be played without running init.
func (f *Finder) RootOrDir(dir string) (string, bool) {
	root, err := f.FindRoot(dir)
	if err != nil {
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return dir, false
		}
		return abs, false
	}
	return root, true
}
