// Package output persists a URL set to disk, one sorted entry per line (or as
// a JSON array), replacing any previous result at the same path.
package output

import (
	"context"
	"os"
	"path/filepath"
	"xurl/pkg/domain"
	"xurl/pkg/logger"
	"xurl/pkg/serrors"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// ErrNothingToWrite is returned by Write when the set is empty. No file is
// created or touched in that case.
var ErrNothingToWrite = errors.New("nothing to write")

// Options configure where and how results are written.
type Options struct {
	// Path is the output file. A leading "~" is expanded to the user's home.
	Path string
	// Format selects the file encoding; empty means FormatText.
	Format Format
}

// Writer writes URL sets to a single output file.
type Writer struct {
	path   string
	format Format
}

// New validates options and returns a Writer. The path is resolved once here
// so every Write targets the same file.
func New(options Options) (*Writer, error) {
	if options.Path == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "output path is required")
	}

	format := options.Format
	if format == "" {
		format = FormatText
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	path, err := ExpandPath(options.Path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid output path")
	}

	return &Writer{path: path, format: format}, nil
}

// Path returns the resolved output path.
func (w *Writer) Path() string { return w.path }

// Format returns the configured encoding.
func (w *Writer) Format() Format { return w.format }

// Write encodes urls in sorted order and atomically replaces the output file,
// creating parent directories as needed. It returns the resolved path written.
// An empty set returns ErrNothingToWrite without touching the filesystem.
func (w *Writer) Write(ctx context.Context, urls domain.URLSet) (string, error) {
	if urls.Len() == 0 {
		return "", ErrNothingToWrite
	}

	data, err := Encode(w.format, urls.Sorted())
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not encode urls")
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return "", serrors.Wrap(serrors.ErrWrite, err, "could not create output directory")
	}

	if err := lockAndWrite(w.path, data); err != nil {
		return "", serrors.Wrap(serrors.ErrWrite, err, "could not write %s", w.path)
	}

	logger.Debug(ctx, "urls written",
		zap.String("path", w.path),
		zap.String("format", string(w.format)),
		zap.Int("count", urls.Len()),
		zap.Int("bytes", len(data)))

	return w.path, nil
}
