// Package main provides the CLI entrypoint for xurl.
// It wires the root command, loads configuration, and initializes logging.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"xurl/internal/console"
	"xurl/pkg/logger"

	"go.uber.org/zap"
)

// main executes the root command with a context cancelled on SIGINT/SIGTERM and
// maps any error to exit status 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := execute(ctx, os.Args[1:])
	stop()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		console.Stdio().Failed(err)
		os.Exit(1) //nolint: gocritic
	}
}
