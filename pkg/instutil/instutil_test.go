package instutil

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigil-labs/httplog-go-sdk/pkg/midutil"
)

func TestNew(t *testing.T) {
	inst, err := New("httplog-demo", prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, inst)

	// Registering the same namespace twice must fail loudly instead of
	// silently dropping metrics.
	registry := prometheus.NewRegistry()
	_, err = New("demo", registry)
	require.NoError(t, err)
	_, err = New("demo", registry)
	assert.Error(t, err)
}

func TestInstrumentEmitter(t *testing.T) {
	inst, err := New("demo", prometheus.NewRegistry())
	require.NoError(t, err)

	memory := new(midutil.MemoryEmitter)
	emitter := InstrumentEmitter(memory, inst)

	emitter.Emit(slog.LevelInfo, midutil.Event{
		Domain: midutil.DefaultDomain,
		Event:  midutil.EventStarted,
	})
	emitter.Emit(slog.LevelInfo, midutil.Event{
		Domain: midutil.DefaultDomain,
		Event:  midutil.EventFinished,
	})
	emitter.Emit(slog.LevelInfo, "plain text passes through uncounted")

	assert.Len(t, memory.Messages(), 3)

	started := inst.EventsTotal.WithLabelValues(midutil.DefaultDomain, midutil.EventStarted)
	assert.Equal(t, 1.0, testutil.ToFloat64(started))

	finished := inst.EventsTotal.WithLabelValues(midutil.DefaultDomain, midutil.EventFinished)
	assert.Equal(t, 1.0, testutil.ToFloat64(finished))
}

func TestMiddleware(t *testing.T) {
	inst, err := New("demo", prometheus.NewRegistry())
	require.NoError(t, err)

	handler := Middleware(inst)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(inst.RequestSeconds))
}
