package webutil

import (
	"net/http"

	"github.com/sigil-labs/httplog-go-sdk/pkg/logutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/midutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/traceutil"
)

// Logging returns a middleware that runs every request through the
// midutil logging pipeline: a start event before the downstream handler
// and a finish event with status and body size afterwards. A nil config
// falls back to midutil defaults, which log the full request record.
func Logging(emitter midutil.Emitter, cfg *midutil.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &responseRecorder{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			pipeline := midutil.WrapLogging(func(recutil.Record) recutil.Record {
				next.ServeHTTP(recorder, r)
				return recorder.record()
			}, emitter, cfg)

			pipeline(RequestRecord(r))
		})
	}
}

// Tracing returns a middleware that extends the trace chain found in the
// given request header, exposes the result on request and response, and
// starts a context logger tagged with the chain. An empty header name
// falls back to traceutil.Header.
func Tracing(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = traceutil.Header
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			chain := traceutil.Extend(r.Header.Get(header))

			ctx := logutil.StartWithTrace(r.Context(), "request", chain)
			r = r.Clone(ctx)
			r.Header.Set(header, chain)
			w.Header().Set(header, chain)

			next.ServeHTTP(w, r)
		})
	}
}
