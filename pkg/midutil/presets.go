package midutil

import (
	"github.com/sigil-labs/httplog-go-sdk/pkg/selutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/traceutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/typeutil"
)

// DefaultCensorKeys covers the credential-bearing fields every preset
// redacts out of the box.
var DefaultCensorKeys = typeutil.NewSet(
	"authorization",
	"cookie",
	"password",
	"secret",
	"set-cookie",
	"token",
)

// InboundRequestSpec selects the request fields the inbound presets log:
// the request line plus a few noteworthy headers.
var InboundRequestSpec = selutil.Seq{
	selutil.Key("request_method"),
	selutil.Key("uri"),
	selutil.Key("query_string"),
	selutil.Key("remote_addr"),
	selutil.Obj{
		selutil.Sub("headers", selutil.Keys(
			"host",
			"user-agent",
			"content-type",
			traceutil.Header,
		)),
	},
}

// InboundResponseSpec selects the response fields the inbound presets log.
var InboundResponseSpec = selutil.Seq{
	selutil.Key("status"),
	selutil.Key("bytes"),
	selutil.Key(DurationField),
}

// OutboundRequestSpec selects what the outbound presets log about a
// request sent to another service.
var OutboundRequestSpec = selutil.Seq{
	selutil.Key("method"),
	selutil.Key("url"),
	selutil.Obj{
		selutil.Sub("headers", selutil.Keys(
			"content-type",
			traceutil.Header,
		)),
	},
}

// OutboundResponseSpec selects what the outbound presets log about the
// answer of another service.
var OutboundResponseSpec = selutil.Seq{
	selutil.Key("status"),
	selutil.Key(DurationField),
}

func preset(reqSpec, respSpec selutil.Spec, mode Option, options []Option) *Config {
	base := []Option{
		WithTransformRequest(selutil.Transform(reqSpec)),
		WithTransformResponse(selutil.Transform(respSpec)),
		WithCensorKeySet(DefaultCensorKeys),
		mode,
	}
	return NewConfig(append(base, options...)...)
}

// PresetInboundText configures a pipeline for server-side requests with
// human-readable messages. Additional options are applied on top.
func PresetInboundText(options ...Option) *Config {
	return preset(InboundRequestSpec, InboundResponseSpec, WithTextFormat(), options)
}

// PresetInboundStructured configures a pipeline for server-side requests
// with machine-readable Event messages.
func PresetInboundStructured(options ...Option) *Config {
	return preset(InboundRequestSpec, InboundResponseSpec, WithStructuredFormat(), options)
}

// PresetOutboundText configures a pipeline for client-side calls with
// human-readable messages.
func PresetOutboundText(options ...Option) *Config {
	return preset(OutboundRequestSpec, OutboundResponseSpec, WithTextFormat(), options)
}

// PresetOutboundStructured configures a pipeline for client-side calls
// with machine-readable Event messages.
func PresetOutboundStructured(options ...Option) *Config {
	return preset(OutboundRequestSpec, OutboundResponseSpec, WithStructuredFormat(), options)
}
