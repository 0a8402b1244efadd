// Package pipeline drives a single extraction run: decompile the target,
// extract URLs from the result, filter them and write them out.
package pipeline

import (
	"context"
	"fmt"
	"time"
	"xurl/pkg/decompiler"
	"xurl/pkg/domain"
	"xurl/pkg/extractor"
	"xurl/pkg/filter"
	"xurl/pkg/logger"
	"xurl/pkg/metrics"
	"xurl/pkg/output"
	"xurl/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps are the collaborators of a pipeline.
type Deps struct {
	Decompiler decompiler.Decompiler
	Extractor  extractor.Extractor
	Writer     Writer
	Reporter   Reporter
	// Metrics is optional.
	Metrics Metrics
}

// Options configure the pipeline.
type Options struct {
	// BaseDir holds decompiled trees. A leading "~" is expanded.
	BaseDir string
}

// pipeline is the concrete implementation of the Pipeline interface.
type pipeline struct {
	deps      Deps
	workspace Workspace
}

// Run executes req. Stages run strictly in sequence and nothing is retried.
func (p *pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Target == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "target is required")
	}

	ctx = logger.WithFields(ctx,
		zap.String("runID", uuid.NewString()),
		zap.String("target", req.Target.Path()))

	res := &Result{SourceDir: p.workspace.SourceDir(req.Target)}

	if err := p.workspace.Prepare(); err != nil {
		return res, serrors.Wrap(serrors.ErrWrite, err, "could not prepare workspace")
	}

	if req.Decompile {
		if err := p.decompile(ctx, req.Target, res.SourceDir); err != nil {
			return res, err
		}
	}

	if !req.ExtractURLs {
		return res, nil
	}

	if err := p.extract(ctx, req, res); err != nil {
		return res, err
	}

	logger.Info(ctx, "run finished",
		zap.String("scanRoot", res.ScanRoot),
		zap.Int("filesScanned", res.FilesScanned),
		zap.Int("filesSkipped", res.FilesSkipped),
		zap.Int("urlsExtracted", res.URLsExtracted),
		zap.Int("urlsKept", res.URLsKept),
		zap.String("output", res.OutputPath))

	return res, nil
}

func (p *pipeline) decompile(ctx context.Context, target domain.Target, dest string) error {
	p.deps.Reporter.Decompiling(target.Path())

	start := time.Now()
	err := p.deps.Decompiler.Decompile(ctx, target, dest)
	p.deps.Metrics.StageDuration(ctx, metrics.StageDecompile, time.Since(start))
	if err != nil {
		logger.Error(ctx, "decompilation failed", zap.Error(err))

		return fmt.Errorf("could not decompile: %w", err)
	}

	p.deps.Reporter.Decompiled(dest)

	return nil
}

func (p *pipeline) extract(ctx context.Context, req Request, res *Result) error {
	res.ScanRoot = p.workspace.ScanRoot(req.Target)
	if res.ScanRoot != res.SourceDir {
		logger.Debug(ctx, "no decompiled tree, scanning the raw target", zap.String("sourceDir", res.SourceDir))
	}

	start := time.Now()
	urls, stats, err := p.deps.Extractor.Extract(ctx, res.ScanRoot)
	p.deps.Metrics.StageDuration(ctx, metrics.StageExtract, time.Since(start))
	res.FilesScanned, res.FilesSkipped = stats.Scanned, stats.Skipped
	p.deps.Metrics.Files(ctx, stats.Scanned, stats.Skipped)
	if err != nil {
		return fmt.Errorf("could not extract urls: %w", err)
	}
	res.URLsExtracted = urls.Len()
	p.deps.Metrics.URLs(ctx, "extracted", res.URLsExtracted)

	start = time.Now()
	kept := filter.Apply(urls, req.Filters)
	p.deps.Metrics.StageDuration(ctx, metrics.StageFilter, time.Since(start))
	res.URLsKept = kept.Len()
	p.deps.Metrics.URLs(ctx, "kept", res.URLsKept)

	start = time.Now()
	path, err := p.deps.Writer.Write(ctx, kept)
	p.deps.Metrics.StageDuration(ctx, metrics.StageWrite, time.Since(start))
	switch {
	case errors.Is(err, output.ErrNothingToWrite):
		p.deps.Reporter.NothingFound()

		return nil
	case err != nil:
		return fmt.Errorf("could not write urls: %w", err)
	}

	res.OutputPath = path
	p.deps.Reporter.Saved(path)

	return nil
}

// noopMetrics discards everything.
type noopMetrics struct{}

func (noopMetrics) Files(context.Context, int, int) {}

func (noopMetrics) URLs(context.Context, string, int) {}

func (noopMetrics) StageDuration(context.Context, string, time.Duration) {}

// New creates a Pipeline rooted at options.BaseDir.
func New(deps Deps, options Options) (Pipeline, error) {
	if deps.Decompiler == nil || deps.Extractor == nil || deps.Writer == nil || deps.Reporter == nil {
		return nil, serrors.With(serrors.ErrInternal, "pipeline dependencies are incomplete")
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}

	ws, err := NewWorkspace(options.BaseDir)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid workspace")
	}

	return &pipeline{deps: deps, workspace: ws}, nil
}
