package pipeline

import (
	"context"
	"time"
	"xurl/pkg/domain"
)

// Pipeline runs one extraction over a single target.
type Pipeline interface {
	// Run executes the requested stages in order: decompile, then scan and
	// extract, filter and write. A decompilation failure stops the run before
	// any scanning happens.
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request selects the target and the stages to run.
type Request struct {
	Target domain.Target
	// Decompile runs the external decompiler into the workspace.
	Decompile bool
	// ExtractURLs scans, filters and writes the URLs.
	ExtractURLs bool
	// Filters keeps only URLs containing any of these terms, case-insensitively.
	// Empty keeps everything.
	Filters []string
}

// Result summarises a finished run.
type Result struct {
	// SourceDir is where the decompiled tree lives (or would live).
	SourceDir string
	// ScanRoot is what was actually scanned; empty when extraction was not requested.
	ScanRoot string

	FilesScanned  int
	FilesSkipped  int
	URLsExtracted int
	URLsKept      int

	// OutputPath is the written file, empty when nothing was written.
	OutputPath string
}

// Writer persists the final URL set and returns where it went.
type Writer interface {
	Write(ctx context.Context, urls domain.URLSet) (string, error)
}

// Reporter receives user-facing progress notifications.
type Reporter interface {
	Decompiling(target string)
	Decompiled(dir string)
	Saved(path string)
	NothingFound()
}

// Metrics receives run statistics.
type Metrics interface {
	Files(ctx context.Context, scanned, skipped int)
	URLs(ctx context.Context, stage string, n int)
	StageDuration(ctx context.Context, stage string, d time.Duration)
}
