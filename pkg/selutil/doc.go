// Package selutil implements declarative field selection over Records.
//
// A selector Spec describes which fields of an arbitrarily nested Record
// to extract. Specs come in exactly three shapes: a single Key, an ordered
// Seq of specs that get merged, and an Obj that maps keys to sub-specs for
// nested selection. Selection is strictly best-effort: missing fields are
// omitted silently and no input can make it fail. This allows writing a
// spec once and reusing it across heterogeneous payloads.
//
//	spec := selutil.Seq{
//	    selutil.Key("request_method"),
//	    selutil.Key("uri"),
//	    selutil.Obj{selutil.Sub("headers", selutil.Key("host"))},
//	}
//	view, ok := selutil.Select(record, spec)
package selutil
