package midutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

func inboundRequest() recutil.Record {
	return recutil.Record{
		"request_method": "GET",
		"uri":            "/orders",
		"query_string":   "page=2",
		"remote_addr":    "10.0.0.7",
		"headers": map[string]string{
			"host":          "www.example.com",
			"user-agent":    "curl/8.0",
			"authorization": "Bearer t0ps3cret",
			"x-trace-id":    "6d3d",
		},
	}
}

func TestPresetInboundText(t *testing.T) {
	emitter := new(MemoryEmitter)

	handler := WrapLogging(func(req recutil.Record) recutil.Record {
		return recutil.Record{"status": 200, "bytes": 512}
	}, emitter, PresetInboundText())

	handler(inboundRequest())

	messages := emitter.Messages()
	require.Len(t, messages, 2)

	start := messages[0].(string)
	assert.Contains(t, start, `Starting {"request_method":"GET","uri":"/orders"`)
	assert.Contains(t, start, `"x-trace-id":"6d3d"`)
	assert.NotContains(t, start, "Bearer",
		"unselected headers must not appear")

	finish := messages[1].(string)
	assert.Contains(t, finish, `{"status":200,"bytes":512}`)
}

func TestPresetInboundStructured(t *testing.T) {
	emitter := new(MemoryEmitter)

	handler := WrapLogging(func(req recutil.Record) recutil.Record {
		return recutil.Record{"status": 201}
	}, emitter, PresetInboundStructured())

	handler(inboundRequest())

	messages := emitter.Messages()
	require.Len(t, messages, 2)

	start, ok := messages[0].(Event)
	require.True(t, ok)
	assert.Equal(t, DefaultDomain, start.Domain)
	assert.Equal(t, EventStarted, start.Event)

	finish, ok := messages[1].(Event)
	require.True(t, ok)
	assert.Equal(t, EventFinished, finish.Event)
	assert.Equal(t, `{"status":201}`, recutil.Render(finish.Response))
}

func TestPresetOutbound(t *testing.T) {
	emitter := new(MemoryEmitter)

	handler := WrapLogging(func(req recutil.Record) recutil.Record {
		return recutil.Record{"status": 502}
	}, emitter, PresetOutboundText())

	handler(recutil.Record{
		"method": "POST",
		"url":    "https://billing.internal/invoices",
		"headers": map[string]string{
			"content-type": "application/json",
		},
	})

	messages := emitter.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t,
		`Starting {"method":"POST","url":"https://billing.internal/invoices","headers":{"content-type":"application/json"}}`,
		messages[0])
	assert.Equal(t,
		`Finished {"method":"POST","url":"https://billing.internal/invoices","headers":{"content-type":"application/json"}} {"status":502}`,
		messages[1])
}

func TestPresetCensorsCredentials(t *testing.T) {
	emitter := new(MemoryEmitter)

	// An extra selector that explicitly picks up the authorization
	// header still may not leak its value.
	cfg := PresetInboundText(
		WithTransformRequest(func(rec recutil.Record) any {
			headers, _ := recutil.Get(rec, "headers")
			return headers
		}),
	)

	handler := WrapLogging(func(req recutil.Record) recutil.Record {
		return nil
	}, emitter, cfg)

	handler(inboundRequest())

	require.Len(t, emitter.Messages(), 1)
	start := emitter.Messages()[0].(string)
	assert.Contains(t, start, `"authorization":"█"`)
	assert.NotContains(t, start, "t0ps3cret")
}

func TestPresetExtraOptionsWin(t *testing.T) {
	cfg := PresetInboundStructured(WithDomain("billing.api"))

	emitter := new(MemoryEmitter)
	handler := WrapLogging(func(recutil.Record) recutil.Record { return nil }, emitter, cfg)
	handler(inboundRequest())

	start := emitter.Messages()[0].(Event)
	assert.Equal(t, "billing.api", start.Domain)
}
