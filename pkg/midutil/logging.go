package midutil

import (
	"log/slog"
	"time"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/redactutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/traceutil"
)

// Handler is the next stage of a middleware chain, ultimately reaching
// application logic. A nil response means the handler has nothing to
// report, which is a valid outcome and not an error.
type Handler func(recutil.Record) recutil.Record

// DurationField is the well-known response field WrapTiming fills in.
const DurationField = "duration_ms"

// WrapLogging surrounds next with start and finish log emissions.
//
// The incoming request runs through the configured transformation and the
// censor, the result is formatted and emitted as the start event. Then
// next is invoked with the original, unmodified request. A non-nil
// response takes the same path on the way out, with the finish formatter
// receiving both censored views; a nil response skips the finish event
// entirely. The response is returned unchanged in all cases.
//
// A panicking transformation, formatter or emitter is contained and
// costs only the affected log message. Panics from next itself propagate
// untouched.
func WrapLogging(next Handler, emitter Emitter, cfg *Config) Handler {
	if cfg == nil {
		cfg = NewConfig()
	}
	censorKeys := redactutil.Normalize(cfg.censorKeys)

	return func(req recutil.Record) recutil.Record {
		reqView := safeValue(func() any {
			return redactutil.Censor(cfg.txfmReq(req), censorKeys)
		})
		emitSafe(emitter, func() any {
			return cfg.formatReq(reqView)
		})

		resp := next(req)
		if resp == nil {
			return nil
		}

		emitSafe(emitter, func() any {
			respView := redactutil.Censor(cfg.txfmResp(resp), censorKeys)
			return cfg.formatResp(reqView, respView)
		})

		return resp
	}
}

// safeValue evaluates fn under a recover, so a panicking transformation
// hook degrades to a nil view instead of breaking the request path.
func safeValue(fn func() any) (out any) {
	defer func() { _ = recover() }()
	return fn()
}

// emitSafe runs the formatter and the emission under a recover, so that
// logging can never crash the request path it instruments.
func emitSafe(emitter Emitter, format func() any) {
	defer func() { _ = recover() }()
	emitter.Emit(slog.LevelInfo, format())
}

// WrapTiming measures the wall-clock time next takes and attaches the
// elapsed milliseconds to a non-nil response under DurationField. A nil
// response passes through unmodified. When the logged response should not
// contain the duration, compose WrapTiming outside WrapLogging.
func WrapTiming(next Handler) Handler {
	return func(req recutil.Record) recutil.Record {
		start := time.Now()
		resp := next(req)
		if resp == nil {
			return nil
		}

		elapsed := time.Since(start).Milliseconds()
		return recutil.SetPath(resp, recutil.Path{DurationField}, elapsed)
	}
}

// WrapTrace extends the trace chain found at the given path inside the
// request before invoking next, so every downstream log line and service
// call carries the correlation identifier. An empty path falls back to
// traceutil.DefaultPath. The response is never touched.
func WrapTrace(next Handler, path recutil.Path) Handler {
	if len(path) == 0 {
		path = traceutil.DefaultPath
	}

	return func(req recutil.Record) recutil.Record {
		prior, _ := recutil.GetPath(req, path)
		chain, _ := prior.(string)

		return next(recutil.SetPath(req, path, traceutil.Extend(chain)))
	}
}
