package settings

import (
	"strconv"

	"github.com/spf13/cast"
)

// floatSetting casts candidates to float64 before validating and storing.
// Unparsable input casts to 0.
type floatSetting struct {
	base
}

func (s *floatSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return cast.ToFloat64(s.def.Default), nil
	}
	return cast.ToFloat64(raw), nil
}

// IsValid accepts candidates whose float cast lies within the configured
// [min, max], bounds inclusive.
func (s *floatSetting) IsValid(v any) bool {
	f := cast.ToFloat64(v)
	return f >= s.def.Options.Min() && f <= s.def.Options.Max()
}

func (s *floatSetting) SetValue(v any) (any, error) {
	if !s.IsValid(v) {
		return nil, s.invalidError("number")
	}

	stored, err := s.writeScalar(strconv.FormatFloat(cast.ToFloat64(v), 'f', -1, 64))
	if err != nil {
		return nil, err
	}

	return cast.ToFloat64(stored), nil
}
