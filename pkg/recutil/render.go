package recutil

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

// Render produces a compact, deterministic text form of the given value.
// Ordered Maps keep their insertion order, plain maps are rendered with
// sorted keys by encoding/json. Values that cannot be marshaled fall back
// to fmt.
func Render(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

// Pretty renders the given value as indented JSON for human consumption.
// It falls back to fmt if the value cannot be marshaled.
func Pretty(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(pretty.Pretty(raw))
}
