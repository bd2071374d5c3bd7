// Package redactutil removes sensitive values from Records before they
// reach a log sink. Matching is done on key names: a value is redacted
// when its lower-cased key contains any of the configured substrings.
// Keys themselves and the structure of the Record stay untouched.
package redactutil

import (
	"strings"

	"github.com/sigil-labs/httplog-go-sdk/pkg/recutil"
	"github.com/sigil-labs/httplog-go-sdk/pkg/typeutil"
)

// Marker replaces censored values. A single glyph that does not occur in
// legitimate payloads, so redacted fields are recognizable at a glance.
const Marker = "█"

// Normalize lower-cases a censor-key set into the substring list that
// Censor expects. The result is sorted, so repeated runs over the same
// configuration behave identically.
func Normalize(keys *typeutil.Set[string]) []string {
	if keys.Len() == 0 {
		return nil
	}

	subs := make([]string, 0, keys.Len())
	for _, k := range keys.ToList() {
		subs = append(subs, strings.ToLower(k))
	}
	return subs
}

// Censor returns a copy of v in which every mapping value whose key
// matches one of the given lower-cased substrings is replaced by Marker.
// It recurses through nested mappings and slices, including mappings
// buried inside slices, and passes every other value through unchanged.
// The input is never mutated.
func Censor(v any, substrings []string) any {
	if len(substrings) == 0 {
		return v
	}

	switch value := v.(type) {
	case *recutil.Map:
		if value == nil {
			return value
		}

		out := new(recutil.Map)
		value.Each(func(key string, nested any) {
			if matches(key, substrings) {
				out.Set(key, Marker)
				return
			}
			out.Set(key, Censor(nested, substrings))
		})
		return out

	case recutil.Record:
		out := make(recutil.Record, len(value))
		for key, nested := range value {
			if matches(key, substrings) {
				out[key] = Marker
				continue
			}
			out[key] = Censor(nested, substrings)
		}
		return out

	case map[string]string:
		out := make(recutil.Record, len(value))
		for key, nested := range value {
			if matches(key, substrings) {
				out[key] = Marker
				continue
			}
			out[key] = nested
		}
		return out

	case []any:
		out := make([]any, len(value))
		for i := range value {
			out[i] = Censor(value[i], substrings)
		}
		return out

	default:
		return v
	}
}

func matches(key string, substrings []string) bool {
	lower := strings.ToLower(key)
	for _, sub := range substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
