// Package treescan walks a file tree and hands every readable regular file to
// a visitor as text. Reads are best effort: a file that cannot be read is
// skipped and counted, it never aborts the walk.
package treescan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"xurl/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
)

// File is a single scanned file and its decoded contents.
type File struct {
	// Path is the location of the file, rooted at the scan root.
	Path string
	// Text is the file contents with invalid UTF-8 sequences removed.
	Text string
}

// Stats summarises a walk.
type Stats struct {
	// Scanned is the number of files read and handed to the visitor.
	Scanned int
	// Skipped is the number of entries that could not be read.
	Skipped int
}

// ReadText reads the whole file at path as text. Byte sequences that are not
// valid UTF-8 are dropped rather than failing the read, so binary or oddly
// encoded files still yield their printable parts.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	b, err := io.ReadAll(transform.NewReader(f, dropInvalid{}))
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}

	return string(b), nil
}

// Scan walks root and calls visit for every regular file it can read. Root may
// be a directory or a single file. Directories are descended without a depth
// limit; symlinks to files are followed, symlinks to directories are not.
//
// Unreadable entries (permission errors, files removed mid-walk, devices,
// pipes, sockets) are skipped. A missing root produces no files and no error.
// Only cancellation of ctx stops the walk early, and is the only error returned.
func Scan(ctx context.Context, root string, visit func(File)) (Stats, error) {
	var stats Stats

	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// d is nil when the root itself could not be stat'ed; a non-nil
			// directory entry here means its listing failed.
			if d == nil || !d.IsDir() {
				stats.Skipped++
			}
			logger.Debug(ctx, "skipping unreadable entry", zap.String("path", path), zap.Error(err))

			return nil
		}

		if d.IsDir() {
			return nil
		}

		if !isRegular(path, d) {
			stats.Skipped++
			logger.Debug(ctx, "skipping non-regular file", zap.String("path", path))

			return nil
		}

		text, err := ReadText(path)
		if err != nil {
			stats.Skipped++
			logger.Debug(ctx, "skipping unreadable file", zap.String("path", path), zap.Error(err))

			return nil
		}

		stats.Scanned++
		visit(File{Path: path, Text: text})

		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("could not walk %s: %w", root, err)
	}

	return stats, nil
}

// isRegular reports whether the entry is a regular file, resolving symlinks.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
