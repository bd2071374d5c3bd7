package midutil

import (
	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/typeutil"
)

type formatMode int

const (
	formatText formatMode = iota
	formatStructured
	formatJSON
)

// Config holds the hooks of one logging pipeline instance. It is built
// once via NewConfig and read-only afterwards, so any number of pipelines
// with different configurations can serve requests concurrently without
// interfering.
type Config struct {
	domain     string
	mode       formatMode
	txfmReq    func(recutil.Record) any
	txfmResp   func(recutil.Record) any
	formatReq  func(reqView any) any
	formatResp func(reqView, respView any) any
	censorKeys *typeutil.Set[string]
}

// Option modifies a Config during construction.
type Option func(*Config)

// NewConfig builds an immutable pipeline configuration. Without options
// the pipeline logs the complete request and response as human-readable
// text and censors nothing.
func NewConfig(options ...Option) *Config {
	cfg := &Config{
		domain: DefaultDomain,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.txfmReq == nil {
		cfg.txfmReq = func(rec recutil.Record) any { return rec }
	}
	if cfg.txfmResp == nil {
		cfg.txfmResp = func(rec recutil.Record) any { return rec }
	}

	if cfg.formatReq == nil {
		switch cfg.mode {
		case formatStructured:
			cfg.formatReq = StructuredRequestFormat(cfg.domain)
		case formatJSON:
			cfg.formatReq = JSONRequestFormat(cfg.domain)
		default:
			cfg.formatReq = TextRequestFormat
		}
	}

	if cfg.formatResp == nil {
		switch cfg.mode {
		case formatStructured:
			cfg.formatResp = StructuredResponseFormat(cfg.domain)
		case formatJSON:
			cfg.formatResp = JSONResponseFormat(cfg.domain)
		default:
			cfg.formatResp = TextResponseFormat
		}
	}

	return cfg
}

// WithDomain overrides the domain tag of structured events.
func WithDomain(domain string) Option {
	return func(cfg *Config) {
		cfg.domain = domain
	}
}

// WithTransformRequest sets the hook that narrows the incoming request
// to its logged view. selutil.Transform adapts a selector spec to this
// signature.
func WithTransformRequest(txfm func(recutil.Record) any) Option {
	return func(cfg *Config) {
		cfg.txfmReq = txfm
	}
}

// WithTransformResponse sets the hook that narrows the outgoing response
// to its logged view.
func WithTransformResponse(txfm func(recutil.Record) any) Option {
	return func(cfg *Config) {
		cfg.txfmResp = txfm
	}
}

// WithFormatRequest overrides the start-event formatter.
func WithFormatRequest(format func(reqView any) any) Option {
	return func(cfg *Config) {
		cfg.formatReq = format
	}
}

// WithFormatResponse overrides the finish-event formatter. It receives
// both censored views, so a single finish message can carry the whole
// request/response cycle.
func WithFormatResponse(format func(reqView, respView any) any) Option {
	return func(cfg *Config) {
		cfg.formatResp = format
	}
}

// WithCensorKeys adds case-insensitive substrings whose matching keys get
// their values redacted. Repeated use accumulates.
func WithCensorKeys(keys ...string) Option {
	return func(cfg *Config) {
		cfg.censorKeys = typeutil.SetUnion(cfg.censorKeys, typeutil.NewSet(keys...))
	}
}

// WithCensorKeySet merges a whole censor-key set into the configuration.
func WithCensorKeySet(keys *typeutil.Set[string]) Option {
	return func(cfg *Config) {
		cfg.censorKeys = typeutil.SetUnion(cfg.censorKeys, keys)
	}
}

// WithTextFormat selects the human-readable formatters. This is the
// default.
func WithTextFormat() Option {
	return func(cfg *Config) {
		cfg.mode = formatText
	}
}

// WithStructuredFormat selects the Event-producing formatters.
func WithStructuredFormat() Option {
	return func(cfg *Config) {
		cfg.mode = formatStructured
	}
}

// WithJSONFormat selects formatters that serialize Events to JSON text.
func WithJSONFormat() Option {
	return func(cfg *Config) {
		cfg.mode = formatJSON
	}
}
