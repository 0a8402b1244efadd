package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockAndWrite holds an exclusive lock on the directory containing path while
// atomically replacing path with data, so concurrent runs sharing an output
// file never interleave. Locking the directory leaves no lock file behind.
func lockAndWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	lock := flock.New(dir, flock.SetFlag(os.O_RDONLY))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not lock %s: %w", dir, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file next to path and renames it into
// place. Readers see either the old or the new content, never a mix.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("could not write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("could not sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("could not set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	committed = true

	return nil
}
