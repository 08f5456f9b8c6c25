package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/stigoleg/timepicker/internal/cli"
	"github.com/stigoleg/timepicker/internal/config"
	"github.com/stigoleg/timepicker/internal/logging"
)

const appVersion = "1.0.0"

func main() {
	slog.SetDefault(logging.New(os.Stderr, slog.LevelWarn))

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals()...)
	defer stop()

	err := cli.NewRootCommand(appVersion).ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrCancelled) {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
	}
	os.Exit(1)
}
