package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"xurl/pkg/domain"
	"xurl/pkg/output"

	"github.com/go-faster/errors"
)

// sourceDirSuffix is appended to a target's name to form its decompiled tree.
const sourceDirSuffix = "_src"

// Workspace is the on-disk layout shared by all runs.
type Workspace struct {
	baseDir string
}

// NewWorkspace resolves baseDir, expanding a leading "~".
func NewWorkspace(baseDir string) (Workspace, error) {
	if baseDir == "" {
		return Workspace{}, errors.New("base directory is required")
	}

	dir, err := output.ExpandPath(baseDir)
	if err != nil {
		return Workspace{}, fmt.Errorf("could not resolve base directory: %w", err)
	}

	return Workspace{baseDir: dir}, nil
}

// BaseDir returns the resolved base directory.
func (w Workspace) BaseDir() string { return w.baseDir }

// SourceDir returns the decompiled tree location for target.
func (w Workspace) SourceDir(target domain.Target) string {
	return filepath.Join(w.baseDir, target.Name()+sourceDirSuffix)
}

// Prepare creates the base directory.
func (w Workspace) Prepare() error {
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", w.baseDir, err)
	}

	return nil
}

// ScanRoot picks what to scan for target: its decompiled tree when one exists,
// otherwise the raw package file.
func (w Workspace) ScanRoot(target domain.Target) string {
	dir := w.SourceDir(target)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}

	return target.Path()
}
