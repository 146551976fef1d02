package settings

import (
	"math"

	"github.com/spf13/cast"
)

// Options is the open key/value bag attached to a setting definition. Each
// variant reads only the keys it recognizes.
type Options map[string]any

// Min returns the configured lower bound, or -Inf when unbounded.
func (o Options) Min() float64 {
	v, ok := o["min"]
	if !ok || v == nil {
		return math.Inf(-1)
	}
	return cast.ToFloat64(v)
}

// Max returns the configured upper bound, or +Inf when unbounded.
func (o Options) Max() float64 {
	v, ok := o["max"]
	if !ok || v == nil {
		return math.Inf(1)
	}
	return cast.ToFloat64(v)
}

// Choices returns the configured enum choices, nil when absent.
func (o Options) Choices() []any {
	v, ok := o["choices"]
	if !ok || v == nil {
		return nil
	}
	choices, ok := v.([]any)
	if !ok {
		return nil
	}
	return choices
}

// ListType returns the declared element type of a list setting.
func (o Options) ListType() string {
	return cast.ToString(o["list_type"])
}

// JSONSchema returns the raw JSON-schema text attached to the setting.
func (o Options) JSONSchema() string {
	return cast.ToString(o["json_schema"])
}

// Textarea reports whether the setting should be edited in a text area.
func (o Options) Textarea() bool {
	return cast.ToBool(o["textarea"])
}

// Description returns the human-readable description of the setting.
func (o Options) Description() string {
	return cast.ToString(o["description"])
}
