package settings

import "github.com/spf13/cast"

// listSetting stores a delimited list in its string form. The element type is
// metadata only; no per-element validation happens here.
type listSetting struct {
	base
}

func (s *listSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return cast.ToString(s.def.Default), nil
	}
	return raw, nil
}

func (s *listSetting) SetValue(v any) (any, error) {
	return s.writeScalar(cast.ToString(v))
}

// ListType returns the declared element type of the list.
func (s *listSetting) ListType() string {
	return s.def.Options.ListType()
}
