package midutil

import (
	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

// DefaultDomain tags structured events emitted by this pipeline.
const DefaultDomain = "http.handler.logging"

// Event tags for the two phases of a request/response cycle.
const (
	EventStarted  = "request/started"
	EventFinished = "request/finished"
)

// Event is the machine-readable form of a start or finish log message,
// as produced by the structured and JSON formatters.
type Event struct {
	Domain   string `json:"domain"`
	Event    string `json:"event"`
	Request  any    `json:"request"`
	Response any    `json:"response,omitempty"`
}

// TextRequestFormat renders the start event as human-readable text.
func TextRequestFormat(reqView any) any {
	return "Starting " + recutil.Render(reqView)
}

// TextResponseFormat renders the finish event as human-readable text,
// repeating the request view so a single line carries the whole cycle.
func TextResponseFormat(reqView, respView any) any {
	return "Finished " + recutil.Render(reqView) + " " + recutil.Render(respView)
}

// StructuredRequestFormat returns a start formatter producing Events for
// machine-readable log pipelines.
func StructuredRequestFormat(domain string) func(any) any {
	return func(reqView any) any {
		return Event{
			Domain:  domain,
			Event:   EventStarted,
			Request: reqView,
		}
	}
}

// StructuredResponseFormat returns the finish counterpart of
// StructuredRequestFormat.
func StructuredResponseFormat(domain string) func(any, any) any {
	return func(reqView, respView any) any {
		return Event{
			Domain:   domain,
			Event:    EventFinished,
			Request:  reqView,
			Response: respView,
		}
	}
}

// JSONRequestFormat returns a start formatter that serializes the
// structured Event to compact JSON text.
func JSONRequestFormat(domain string) func(any) any {
	structured := StructuredRequestFormat(domain)
	return func(reqView any) any {
		return recutil.Render(structured(reqView))
	}
}

// JSONResponseFormat returns the finish counterpart of JSONRequestFormat.
func JSONResponseFormat(domain string) func(any, any) any {
	structured := StructuredResponseFormat(domain)
	return func(reqView, respView any) any {
		return recutil.Render(structured(reqView, respView))
	}
}
