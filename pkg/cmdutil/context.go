package cmdutil

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalRootContext returns a new empty context, that gets cancelled on
// SIGINT or SIGTERM.
func SignalRootContext() context.Context {
	return SignalContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// SignalContext returns a copy of the parent context that gets cancelled
// if the application gets any of the given signals.
func SignalContext(ctx context.Context, signals ...os.Signal) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	go func() {
		sig := <-c
		slog.Debug("received signal", "signal", sig.String())
		cancel()

		sig = <-c
		slog.Error("Two interrupts received. Exiting immediately. Note that data loss may have occurred.",
			"signal", sig.String())
		os.Exit(ExitCodeMultipleInterrupts)
	}()

	return ctx
}
