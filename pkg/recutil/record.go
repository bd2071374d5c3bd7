package recutil

// Record represents an HTTP-like request or response. A nil Record stands
// for "no value", which is distinct from an empty one.
type Record = map[string]any

// Path addresses a nested value inside a Record, one key per level.
type Path []string

// Get looks up a single key in any mapping-like value. It understands
// *Map, map[string]any and map[string]string. Everything else, including
// nil, reports absence.
func Get(src any, key string) (any, bool) {
	switch s := src.(type) {
	case *Map:
		return s.Get(key)
	case map[string]any:
		v, ok := s[key]
		return v, ok
	case map[string]string:
		v, ok := s[key]
		return v, ok
	default:
		return nil, false
	}
}

// GetPath walks the given path through nested mappings. It returns false
// as soon as any segment is missing.
func GetPath(src any, path Path) (any, bool) {
	current := src
	for _, key := range path {
		next, ok := Get(current, key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// SetPath returns a copy of rec with the value stored at the given path.
// Mappings along the path are shallow-copied, missing or non-mapping
// levels are replaced by fresh mappings. The input is never mutated.
func SetPath(rec Record, path Path, value any) Record {
	if len(path) == 0 {
		return rec
	}

	out := make(Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}

	key := path[0]
	if len(path) == 1 {
		out[key] = value
		return out
	}

	out[key] = SetPath(asRecord(out[key]), path[1:], value)
	return out
}

// asRecord widens mapping-like values into a Record, so SetPath keeps
// sibling entries of a map[string]string level instead of dropping them.
func asRecord(v any) Record {
	switch m := v.(type) {
	case Record:
		return m
	case map[string]string:
		out := make(Record, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	default:
		return nil
	}
}
