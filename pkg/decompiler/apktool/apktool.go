// Package apktool provides a decompiler.Decompiler implementation that shells
// out to the apktool command line.
package apktool

import (
	"context"
	"fmt"
	"os/exec"
	"time"
	"xurl/pkg/decompiler"
	"xurl/pkg/domain"
	"xurl/pkg/logger"
	"xurl/pkg/serrors"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// DefaultBinary is the executable looked up on PATH when Options.Binary is empty.
const DefaultBinary = "apktool"

// outputTailSize bounds how much child output is kept for diagnostics.
const outputTailSize = 4 << 10

// waitDelay is how long Wait may block on the child's pipes after it was killed.
const waitDelay = 2 * time.Second

// Options configure the apktool invocation.
type Options struct {
	// Binary is the executable name or path. Defaults to DefaultBinary.
	Binary string
	// Timeout bounds a single decompilation. Zero means no limit.
	Timeout time.Duration
}

// Decompiler runs "apktool d -f -o <destination> <target>". It is safe for
// concurrent use as long as callers use distinct destinations.
type Decompiler struct {
	binary  string
	timeout time.Duration
}

// Decompile runs apktool to completion. The child's output is never printed;
// its tail is logged at debug level when the tool fails.
func (d *Decompiler) Decompile(ctx context.Context, target domain.Target, destination string) error {
	path, err := exec.LookPath(d.binary)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "%s not found", d.binary)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	out := &tailBuffer{limit: outputTailSize}
	cmd := exec.CommandContext(ctx, path, "d", "-f", "-o", destination, target.Path())
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = waitDelay

	start := time.Now()
	logger.Debug(ctx, "running decompiler", zap.Strings("args", cmd.Args))

	err = cmd.Run()
	if err == nil {
		logger.Debug(ctx, "decompiler finished", zap.Duration("took", time.Since(start)))

		return nil
	}

	logger.Debug(ctx, "decompiler failed",
		zap.Error(err),
		zap.Duration("took", time.Since(start)),
		zap.String("output", out.String()))

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, ctxErr, "%s did not finish within %s", d.binary, d.timeout)
		}

		return fmt.Errorf("decompilation interrupted: %w", ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return serrors.Wrap(serrors.ErrExternalTool, err, "%s exited with code %d", d.binary, exitErr.ExitCode())
	}

	return serrors.Wrap(serrors.ErrExternalTool, err, "could not run %s", d.binary)
}

// Ensure Decompiler conforms to the decompiler.Decompiler interface at compile time.
var _ decompiler.Decompiler = (*Decompiler)(nil)

// New constructs a Decompiler from options.
func New(options Options) *Decompiler {
	binary := options.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	return &Decompiler{binary: binary, timeout: options.Timeout}
}
