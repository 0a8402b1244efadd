package main

import (
	"context"
	"strings"
	"xurl/internal/config"
	"xurl/internal/console"
	"xurl/internal/pipeline"
	"xurl/pkg/decompiler/apktool"
	"xurl/pkg/domain"
	"xurl/pkg/extractor"
	"xurl/pkg/logger"
	"xurl/pkg/metrics"
	"xurl/pkg/output"
	"xurl/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flags holds the raw command line values. Empty strings mean "use config".
type flags struct {
	configPath  string
	apk         string
	decompile   bool
	urls        bool
	filters     []string
	output      string
	format      string
	metricsFile string
}

func rootCommand() *cobra.Command {
	var (
		f   flags
		cfg *config.Config
	)

	cmd := &cobra.Command{
		Use:     "xurl -a <apk> [-d] [-u] [-f term ...]",
		Short:   "Extract URLs from an Android package",
		Long:    "xurl decompiles an APK with apktool and writes every http(s) URL found in it to a file.",
		Example: "  xurl -a app.apk -d -u\n  xurl -a app.apk -u -f api cdn",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return serrors.With(serrors.ErrBadRequest, "unexpected arguments %q", args)
			}

			return nil
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(f.configPath)
			if err != nil {
				return serrors.Wrap(serrors.ErrBadRequest, err, "invalid configuration")
			}
			logger.Setup(cfg.Environment, cfg.LogLevel)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			return run(cmd.Context(), cfg, f)
		},
	}

	cmd.SilenceErrors = true

	fs := cmd.Flags()
	fs.StringVarP(&f.apk, "apk", "a", "", "path to the APK file")
	fs.BoolVarP(&f.decompile, "decompile", "d", false, "decompile the APK with apktool")
	fs.BoolVarP(&f.urls, "urls", "u", false, "extract URLs from the decompiled source")
	fs.StringArrayVarP(&f.filters, "filter", "f", nil, "keep only URLs containing any of these keywords")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default <base dir>/apk_urls.txt)")
	fs.StringVar(&f.format, "format", "", "output format: text or json (default text)")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write run statistics to this Prometheus textfile")
	_ = cmd.MarkFlagRequired("apk")

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "config file path")

	return cmd
}

// execute runs the root command over the raw command line arguments.
func execute(ctx context.Context, args []string) error {
	cmd := rootCommand()
	cmd.SetArgs(expandFilterArgs(args))

	return cmd.ExecuteContext(ctx)
}

// expandFilterArgs rewrites "-f a b c" into "-f a --filter=b --filter=c": the
// words following a filter value, up to the next flag, are further terms.
// Positional words anywhere else are left alone and rejected later.
func expandFilterArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}

		out = append(out, arg)

		attached, ok := filterFlag(arg)
		if !ok {
			continue
		}
		if !attached {
			if i+1 >= len(args) {
				continue
			}
			i++
			out = append(out, args[i])
		}

		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, "--filter="+args[i])
		}
	}

	return out
}

// filterFlag reports whether arg sets the filter flag and whether its value is
// part of arg itself ("--filter=x", "-fx", "-ufx") rather than the next word.
func filterFlag(arg string) (attached, ok bool) {
	switch {
	case arg == "--filter":
		return false, true
	case strings.HasPrefix(arg, "--filter="):
		return true, true
	case strings.HasPrefix(arg, "--"), !strings.HasPrefix(arg, "-"):
		return false, false
	}

	// a cluster of boolean shorthands may end in -f: "-df", "-uf cdn", "-dufcdn"
	for i, c := range arg[1:] {
		switch c {
		case 'd', 'u':
			continue
		case 'f':
			return i+2 < len(arg), true
		}

		return false, false
	}

	return false, false
}

func run(ctx context.Context, cfg *config.Config, f flags) error {
	outPath := cfg.OutputFile()
	if f.output != "" {
		outPath = f.output
	}
	formatName := cfg.Output.Format
	if f.format != "" {
		formatName = f.format
	}
	metricsFile := cfg.MetricsFile
	if f.metricsFile != "" {
		metricsFile = f.metricsFile
	}

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	writer, err := output.New(output.Options{Path: outPath, Format: format})
	if err != nil {
		return err
	}

	recorder, err := metrics.NewRecorder()
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not set up metrics")
	}
	defer func() {
		if err := recorder.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not shutdown metrics", zap.Error(err))
		}
	}()

	p, err := pipeline.New(pipeline.Deps{
		Decompiler: apktool.New(apktool.Options{
			Binary:  cfg.Decompiler.Binary,
			Timeout: cfg.Decompiler.Timeout,
		}),
		Extractor: extractor.New(),
		Writer:    writer,
		Reporter:  console.Stdio(),
		Metrics:   recorder,
	}, pipeline.Options{BaseDir: cfg.Workspace.BaseDir})
	if err != nil {
		return err
	}

	_, runErr := p.Run(ctx, pipeline.Request{
		Target:      domain.Target(f.apk),
		Decompile:   f.decompile,
		ExtractURLs: f.urls,
		Filters:     f.filters,
	})

	if metricsFile != "" {
		if err := writeMetrics(recorder, metricsFile); err != nil {
			logger.Warn(ctx, "could not write metrics file", zap.Error(err))
		}
	}

	return runErr
}

func writeMetrics(recorder *metrics.Recorder, path string) error {
	path, err := output.ExpandPath(path)
	if err != nil {
		return err
	}

	return recorder.WriteTextfile(path)
}
