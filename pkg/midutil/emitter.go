package midutil

import (
	"context"
	"log/slog"
	"sync"
)

// Emitter is the log sink collaborator of the pipeline. It receives the
// message a formatter produced, which is either a plain string or a
// structured value like Event. Transport, buffering and ordering between
// concurrent requests are the emitter's business, not the pipeline's.
type Emitter interface {
	Emit(level slog.Level, message any)
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(level slog.Level, message any)

func (fn EmitterFunc) Emit(level slog.Level, message any) {
	fn(level, message)
}

// SlogEmitter forwards emitted messages to a slog.Logger. Strings become
// the log message, Events become a message with structured attributes and
// anything else is attached as a single attribute. A zero SlogEmitter
// uses slog.Default.
type SlogEmitter struct {
	Logger *slog.Logger
}

func (e SlogEmitter) Emit(level slog.Level, message any) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch m := message.(type) {
	case string:
		logger.Log(context.Background(), level, m)
	case Event:
		attrs := []any{
			slog.String("domain", m.Domain),
			slog.Any("request", m.Request),
		}
		if m.Response != nil {
			attrs = append(attrs, slog.Any("response", m.Response))
		}
		logger.Log(context.Background(), level, m.Event, attrs...)
	default:
		logger.Log(context.Background(), level, "http event", slog.Any("event", message))
	}
}

// MemoryEmitter collects emitted messages in memory. It is meant for
// tests and is safe for concurrent use.
type MemoryEmitter struct {
	mu      sync.Mutex
	entries []EmittedMessage
}

// EmittedMessage is a single message captured by MemoryEmitter.
type EmittedMessage struct {
	Level   slog.Level
	Message any
}

func (e *MemoryEmitter) Emit(level slog.Level, message any) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries = append(e.entries, EmittedMessage{Level: level, Message: message})
}

// Entries returns a copy of everything captured so far.
func (e *MemoryEmitter) Entries() []EmittedMessage {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]EmittedMessage, len(e.entries))
	copy(out, e.entries)
	return out
}

// Messages returns only the captured message values, in emission order.
func (e *MemoryEmitter) Messages() []any {
	entries := e.Entries()

	out := make([]any, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Message)
	}
	return out
}
