package settings

import (
	"strconv"

	"github.com/spf13/cast"
)

// integerSetting casts candidates to int before validating and storing.
// Unparsable input casts to 0 rather than failing; callers needing strict
// parsing must validate before relying on stored values.
type integerSetting struct {
	base
}

func (s *integerSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return cast.ToInt(s.def.Default), nil
	}
	return cast.ToInt(raw), nil
}

// IsValid accepts candidates whose integer cast lies within the configured
// [min, max], bounds inclusive.
func (s *integerSetting) IsValid(v any) bool {
	n := float64(cast.ToInt(v))
	return n >= s.def.Options.Min() && n <= s.def.Options.Max()
}

func (s *integerSetting) SetValue(v any) (any, error) {
	if !s.IsValid(v) {
		return nil, s.invalidError("number")
	}

	stored, err := s.writeScalar(strconv.Itoa(cast.ToInt(v)))
	if err != nil {
		return nil, err
	}

	return cast.ToInt(stored), nil
}
