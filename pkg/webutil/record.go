package webutil

import (
	"net/http"
	"strings"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

// RequestRecord converts an HTTP request into the Record shape the
// inbound selector presets expect. Header names are lower-cased and
// multi-valued headers joined, so selector specs do not need to know
// about canonical header casing.
func RequestRecord(r *http.Request) recutil.Record {
	headers := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	if r.Host != "" {
		headers["host"] = r.Host
	}

	return recutil.Record{
		"request_method": r.Method,
		"uri":            r.URL.Path,
		"query_string":   r.URL.RawQuery,
		"remote_addr":    r.RemoteAddr,
		"headers":        headers,
	}
}

// responseRecorder captures what the downstream handler wrote, so the
// finish event can report on it.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	n, err := r.ResponseWriter.Write(data)
	r.bytes += n
	return n, err
}

func (r *responseRecorder) record() recutil.Record {
	return recutil.Record{
		"status": r.status,
		"bytes":  r.bytes,
	}
}
