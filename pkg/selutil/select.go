package selutil

import (
	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
)

// Spec is a selector specification. The set of shapes is closed: Key, Seq
// and Obj. This keeps the selection recursion exhaustive instead of
// relying on runtime type inspection of arbitrary values.
type Spec interface {
	isSpec()
}

// Key selects a single field from the source.
type Key string

// Seq applies every member spec to the same source and merges the results
// in order. On key collisions the later value wins, while the key keeps
// its first-seen position.
type Seq []Spec

// Obj selects nested structures: each Field looks up its key in the
// source and applies the sub-spec to the nested value. The field order
// determines the output order.
type Obj []Field

// Field is a single key to sub-spec pair of an Obj.
type Field struct {
	Key  string
	Spec Spec
}

func (Key) isSpec() {}
func (Seq) isSpec() {}
func (Obj) isSpec() {}

// Keys builds a Seq that selects each of the given fields.
func Keys(keys ...string) Seq {
	seq := make(Seq, 0, len(keys))
	for _, k := range keys {
		seq = append(seq, Key(k))
	}
	return seq
}

// Sub builds a single Obj field.
func Sub(key string, spec Spec) Field {
	return Field{Key: key, Spec: spec}
}

// Select extracts the fields described by spec from src and returns them
// as an ordered mapping. The second return value distinguishes "nothing
// to contribute" from an empty result:
//
//   - A Key yields a single-entry mapping, or reports absence when the
//     source has no such field.
//   - A Seq yields the in-order merge of its member results. Even if all
//     members are absent it is present (as an empty mapping), but an
//     enclosing Obj treats the empty mapping as absent.
//   - An Obj yields one entry per field whose recursive result is present
//     and non-empty; if that leaves no entries, the Obj itself is absent.
//
// Select never fails. Sources of unexpected shape and nil or unknown
// specs simply select nothing, and the input is never mutated.
func Select(src any, spec Spec) (*recutil.Map, bool) {
	switch s := spec.(type) {
	case Key:
		value, found := recutil.Get(src, string(s))
		if !found {
			return nil, false
		}
		return recutil.NewMap(string(s), value), true

	case Seq:
		merged := new(recutil.Map)
		for _, member := range s {
			result, found := Select(src, member)
			if !found {
				continue
			}
			result.Each(merged.Set)
		}
		return merged, true

	case Obj:
		out := new(recutil.Map)
		for _, field := range s {
			nested, found := recutil.Get(src, field.Key)
			if !found {
				continue
			}

			result, found := Select(nested, field.Spec)
			if !found || result.Len() == 0 {
				continue
			}

			out.Set(field.Key, result)
		}

		if out.Len() == 0 {
			return nil, false
		}
		return out, true

	default:
		return nil, false
	}
}

// Transform adapts a spec to the transformation hook signature of the
// logging pipeline. Absent selections come out as nil.
func Transform(spec Spec) func(recutil.Record) any {
	return func(rec recutil.Record) any {
		view, ok := Select(rec, spec)
		if !ok {
			return nil
		}
		return view
	}
}

// TransformAt works like Transform, but descends to the given path inside
// the Record before selecting.
func TransformAt(path recutil.Path, spec Spec) func(recutil.Record) any {
	return func(rec recutil.Record) any {
		nested, found := recutil.GetPath(rec, path)
		if !found {
			return nil
		}

		view, ok := Select(nested, spec)
		if !ok {
			return nil
		}
		return view
	}
}
