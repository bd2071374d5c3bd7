package logutil

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/gosimple/slug"

	"github.com/sigil-labs/httplog-go-sdk/pkg/traceutil"
)

type contextKey string

const (
	contextKeyMeta contextKey = "meta"
)

// meta is a struct that is stored in the context. It stores the actual
// logger and the trace chain. The chain is stored separately to be able
// to recreate the logger with a full tracing path.
type meta struct {
	path []segment
	log  *slog.Logger
}

func (m meta) subsystem() string {
	subsystems := []string{"/"}

	for _, s := range m.path {
		subsystems = append(subsystems, s.subsystem)
	}

	return path.Join(subsystems...)
}

func (m meta) chain() string {
	ids := make([]string, 0, len(m.path))
	for _, s := range m.path {
		ids = append(ids, s.id)
	}
	return strings.Join(ids, traceutil.Separator)
}

type segment struct {
	id        string
	subsystem string
}

// Get extracts the current logger from the given context. It returns the
// default logger, if there is no logger in the context.
func Get(ctx context.Context) *slog.Logger {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		return slog.Default()
	}
	return m.log
}

// GetSubsystem extracts the name of the subsystem from the given context.
func GetSubsystem(ctx context.Context) string {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		return ""
	}
	return m.subsystem()
}

// GetTrace extracts the trace chain from the given context. It is the
// same dot-joined chain that traceutil propagates between services.
func GetTrace(ctx context.Context) string {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		return ""
	}
	return m.chain()
}

// Start creates a new logger and stores it in the returned context. It
// appends a fresh trace segment to the chain from the given context and
// injects the chain and subsystem path into the new logger.
func Start(ctx context.Context, subsystem string, opts ...ContextOption) context.Context {
	return StartWithTrace(ctx, subsystem, traceutil.NewID(), opts...)
}

// StartWithTrace works like Start, but uses the given identifier for the
// new segment instead of generating one. This ties the context logger to
// a trace chain that arrived over the wire.
func StartWithTrace(ctx context.Context, subsystem, id string, opts ...ContextOption) context.Context {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		m = meta{}
	}

	m.log = slog.Default()
	m.path = append(m.path, segment{
		id:        id,
		subsystem: subsystem,
	})

	for _, s := range m.path {
		name := fmt.Sprintf("trace-id-%s", slug.Make(s.subsystem))
		m.log = m.log.With(name, s.id)
	}

	m.log = m.log.With("subsystem", m.subsystem())
	m.log = m.log.With("trace-id", m.chain())

	for _, opt := range opts {
		m = opt(m)
	}

	return context.WithValue(ctx, contextKeyMeta, m)
}

// Update creates a new context with an updated logger.
func Update(ctx context.Context, opts ...ContextOption) context.Context {
	m, ok := ctx.Value(contextKeyMeta).(meta)
	if !ok {
		// This is a wrong usage, but not important enough to add error
		// handling or crash the application. Therefore silently return
		// unaltered context.
		return ctx
	}

	for _, opt := range opts {
		m = opt(m)
	}

	return context.WithValue(ctx, contextKeyMeta, m)
}

// ContextOption is used for modifying a logger.
type ContextOption func(meta) meta

// Field is a ContextOption that sets a single field to the logger.
func Field(key string, value any) ContextOption {
	return func(m meta) meta {
		m.log = m.log.With(key, value)
		return m
	}
}

// WithField is a shortcut for using the Update function with a single
// Field option.
func WithField(ctx context.Context, key string, value any) context.Context {
	return Update(ctx, Field(key, value))
}

// Fields is a ContextOption that sets the given fields to the logger.
func Fields(fields map[string]any) ContextOption {
	return func(m meta) meta {
		attrs := make([]any, 0, len(fields)*2)
		for k, v := range fields {
			attrs = append(attrs, k, v)
		}
		m.log = m.log.With(attrs...)
		return m
	}
}

// WithFields is a shortcut for using the Update function with a single
// Fields option.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	return Update(ctx, Fields(fields))
}
