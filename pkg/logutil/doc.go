// Package logutil carries a slog.Logger through the context, tagged with
// the trace chain of the current request.
//
// Every Start call appends a fresh traceutil segment to the chain, so log
// entries from nested subsystems stay correlated with each other and with
// the identifier that the trace middleware propagates over the wire.
//
// Usage:
//
//	ctx = logutil.Start(ctx, "my-subsystem")
//	log := logutil.Get(ctx)
//	log.Info("service started")
//
//	// Add fields to context and logger
//	ctx = logutil.WithField(ctx, "user-id", "12345")
//
// Note: Functions invoked from webutil already have a subsystem and do
// not need to be started again.
package logutil
