// Package midutil implements the request/response logging pipeline as
// composable middleware over Record handlers.
//
// WrapLogging emits a start event for the incoming request and a finish
// event for the outgoing response, with two hooks applied on each side: a
// transformation (typically a selutil selector) narrows the Record to the
// fields worth logging, and a formatter turns the censored result into
// the emitted message. Both views pass through redactutil before
// formatting, so configured censor keys can never leak into a sink.
//
// WrapTrace and WrapTiming are independent wrappers: one extends the
// trace chain in the request before downstream handling, the other
// attaches the elapsed wall-clock time to the response. The intended
// composition is
//
//	handler = midutil.WrapTrace(
//	    midutil.WrapTiming(
//	        midutil.WrapLogging(inner, emitter, cfg)), nil)
//
// so the trace chain is in place before anything gets logged, and the
// duration is attached after the response was logged.
//
// Everything in this package is observation-only: the wrapped handler
// receives the original request, its response is returned unchanged, and
// failures in formatting or emission never reach the request path.
package midutil
