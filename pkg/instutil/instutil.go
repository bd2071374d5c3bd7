// Package instutil provides prometheus instrumentation for the logging
// pipeline and its HTTP middleware.
package instutil

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sigil-labs/httplog-go-sdk/pkg/midutil"
)

var namespaceSanitizer = regexp.MustCompile("[^a-zA-Z0-9]+")

// Instrumentation bundles the metrics of one pipeline instance. Create it
// once per process and share it between middlewares.
type Instrumentation struct {
	EventsTotal    *prometheus.CounterVec
	RequestSeconds prometheus.Histogram
}

// New registers the pipeline metrics under the given namespace. The
// namespace usually is the binary name and gets sanitized into a valid
// metric prefix.
func New(namespace string, registerer prometheus.Registerer) (*Instrumentation, error) {
	inst := &Instrumentation{
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: sanitize(namespace),
			Name:      "log_events_total",
			Help:      "Number of emitted request log events.",
		}, []string{"domain", "event"}),
		RequestSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: sanitize(namespace),
			Name:      "request_duration_seconds",
			Help:      "Wall-clock duration of instrumented HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, collector := range []prometheus.Collector{
		inst.EventsTotal,
		inst.RequestSeconds,
	} {
		err := registerer.Register(collector)
		if err != nil {
			return nil, errors.Wrap(err, "register pipeline metrics")
		}
	}

	return inst, nil
}

func sanitize(namespace string) string {
	return strings.ToLower(namespaceSanitizer.ReplaceAllString(namespace, ""))
}

// InstrumentEmitter wraps an emitter so that every structured Event gets
// counted by domain and event tag. Messages of other shapes pass through
// uncounted, since they carry no tag to aggregate on.
func InstrumentEmitter(next midutil.Emitter, inst *Instrumentation) midutil.Emitter {
	return midutil.EmitterFunc(func(level slog.Level, message any) {
		if event, ok := message.(midutil.Event); ok {
			inst.EventsTotal.WithLabelValues(event.Domain, event.Event).Inc()
		}
		next.Emit(level, message)
	})
}

// Middleware observes the wall-clock duration of every request.
func Middleware(inst *Instrumentation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			inst.RequestSeconds.Observe(time.Since(start).Seconds())
		})
	}
}
