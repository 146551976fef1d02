package settings

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Definition is the immutable declarative description of a setting: name,
// default value, declared type and constraint options. It is input data
// supplied by the theme; nothing here mutates it.
type Definition struct {
	Name    string
	Default any
	Type    Type
	Options Options
}

// rawDefinition is the JSON shape of one declared setting in a theme's
// settings schema.
type rawDefinition struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Default any            `json:"default"`
	Options map[string]any `json:"options"`
}

// ErrUnknownTypeName is returned when a declared setting names a type outside
// the closed type set.
var ErrUnknownTypeName = errors.New("unknown setting type name")

// ParseDefinitions decodes a theme's declared settings from their JSON form.
func ParseDefinitions(data []byte) ([]Definition, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raw []rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings schema")
	}

	defs := make([]Definition, 0, len(raw))
	for _, r := range raw {
		code, ok := TypeNamed(r.Type)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownTypeName, "setting %q declares type %q", r.Name, r.Type)
		}

		defs = append(defs, Definition{
			Name:    r.Name,
			Default: r.Default,
			Type:    code,
			Options: Options(r.Options),
		})
	}

	return defs, nil
}
