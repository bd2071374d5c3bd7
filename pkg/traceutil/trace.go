// Package traceutil generates the short random identifiers that correlate
// log lines of a single request across service boundaries. Identifiers
// form a chain: every hop appends its own segment, so "6d3d.ef66" reads
// as "second hop of trace 6d3d".
//
// The identifiers only need a low collision probability within one chain.
// They are not security tokens.
package traceutil

import (
	"math/rand/v2"
	"strings"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// IDLength is the number of characters of a single chain segment.
	IDLength = 4

	// Separator joins the segments of a trace chain.
	Separator = "."

	// Header is the header-equivalent Record field that carries the
	// trace chain between services.
	Header = "x-trace-id"
)

// DefaultPath locates the trace chain inside a request Record.
var DefaultPath = recutil.Path{"headers", Header}

// NewID returns a fresh random chain segment.
func NewID() string {
	b := make([]byte, IDLength)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// Extend appends a fresh segment to the given chain. An empty prior chain
// starts a new one.
func Extend(prior string) string {
	id := NewID()
	if prior == "" {
		return id
	}
	return prior + Separator + id
}

// Segments splits a chain into its individual identifiers.
func Segments(chain string) []string {
	if chain == "" {
		return nil
	}
	return strings.Split(chain, Separator)
}
