// Package settings implements typed theme setting values: type dispatch,
// casting between stored and in-memory representations, validation, and lazy
// persistence of setting rows.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/bananabr/discourse/internal/db/models"
)

// Type is the numeric code of a setting value type. The set is closed; every
// variant is dispatched through an explicit switch on Type.
type Type int

const (
	// TypeBool stores "true"/"false" strings.
	TypeBool Type = iota
	// TypeInteger stores integers in string form.
	TypeInteger
	// TypeFloat stores floats in string form.
	TypeFloat
	// TypeString stores strings verbatim.
	TypeString
	// TypeEnum stores one of a configured set of choices.
	TypeEnum
	// TypeList stores a delimited list as a string.
	TypeList
	// TypeObjects stores structured values as JSON.
	TypeObjects
	// TypeUpload stores an upload reference id resolved to a CDN URL on read.
	TypeUpload
)

var typeNames = map[Type]string{
	TypeBool:    "bool",
	TypeInteger: "integer",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeEnum:    "enum",
	TypeList:    "list",
	TypeObjects: "objects",
	TypeUpload:  "upload",
}

var typeCodes = func() map[string]Type {
	codes := make(map[string]Type, len(typeNames))
	for code, name := range typeNames {
		codes[name] = code
	}
	return codes
}()

// TypeNamed returns the type code for a symbolic type name.
func TypeNamed(name string) (Type, bool) {
	code, ok := typeCodes[name]
	return code, ok
}

// String returns the symbolic name of the type. Unknown codes are a
// programming error and panic.
func (t Type) String() string {
	name, ok := typeNames[t]
	if !ok {
		panic(fmt.Sprintf("unknown setting type code %d", int(t)))
	}
	return name
}

// CastRow converts a persisted setting row's raw value to the typed
// representation of its declared type. Unknown type codes panic.
func CastRow(rec *models.ThemeSetting) any {
	switch Type(rec.DataType) {
	case TypeBool:
		return castBool(rec.Value)
	case TypeInteger:
		return cast.ToInt(rec.Value)
	case TypeFloat:
		return cast.ToFloat64(rec.Value)
	case TypeString, TypeEnum, TypeList, TypeUpload:
		return rec.Value
	case TypeObjects:
		var v any
		if len(rec.JSONValue) == 0 {
			return nil
		}
		if err := json.Unmarshal(rec.JSONValue, &v); err != nil {
			return nil
		}
		return v
	default:
		panic(fmt.Sprintf("unknown setting type code %d", rec.DataType))
	}
}

// castBool maps true and the string "true" to true; anything else is false.
func castBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return cast.ToString(v) == "true"
}
