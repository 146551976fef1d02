package settings

import "strconv"

// boolSetting accepts any candidate and stores its bool cast as a string.
type boolSetting struct {
	base
}

func (s *boolSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return castBool(s.def.Default), nil
	}
	return castBool(raw), nil
}

func (s *boolSetting) SetValue(v any) (any, error) {
	stored, err := s.writeScalar(strconv.FormatBool(castBool(v)))
	if err != nil {
		return nil, err
	}
	return castBool(stored), nil
}
