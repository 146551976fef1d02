package settings

import (
	"github.com/spf13/cast"
	"github.com/xeipuuv/gojsonschema"

	"github.com/bananabr/discourse/internal/schemadoc"
)

// stringSetting stores strings verbatim and bounds their length. It also
// exposes a parsed JSON schema and a text-area flag as metadata.
type stringSetting struct {
	base
}

func (s *stringSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return cast.ToString(s.def.Default), nil
	}
	return raw, nil
}

// IsValid accepts candidates whose string length lies within the configured
// [min, max], bounds inclusive.
func (s *stringSetting) IsValid(v any) bool {
	n := float64(len(cast.ToString(v)))
	return n >= s.def.Options.Min() && n <= s.def.Options.Max()
}

func (s *stringSetting) SetValue(v any) (any, error) {
	if !s.IsValid(v) {
		return nil, s.invalidError("string")
	}
	return s.writeScalar(cast.ToString(v))
}

// Schema returns the parsed JSON schema attached to this setting, or nil when
// none is configured or the text does not parse. Malformed schema text is a
// soft failure: this is a metadata accessor, not a validator.
func (s *stringSetting) Schema() *gojsonschema.Schema {
	text := s.def.Options.JSONSchema()
	if text == "" {
		return nil
	}

	schema, err := schemadoc.Parse(text)
	if err != nil {
		return nil
	}

	return schema
}

// Textarea reports whether the setting should be edited in a text area.
func (s *stringSetting) Textarea() bool {
	return s.def.Options.Textarea()
}
