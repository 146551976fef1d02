package settings

import (
	"reflect"

	"github.com/spf13/cast"
)

// enumSetting accepts only values from the configured choices. On read the
// stored value is snapped to the matching choice so callers get the choice in
// its declared form even when storage returns a different string form.
type enumSetting struct {
	base
}

func (s *enumSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return s.def.Default, nil
	}
	return s.snap(raw), nil
}

// match returns the configured choice equal to v by value or by string form.
// Choices come from decoded JSON and may hold uncomparable types (maps,
// slices), so the value comparison uses reflect.DeepEqual instead of ==.
// The string comparison guards against string-vs-number mismatches coming
// back from storage; structured values have no string form (cast yields ""),
// so the empty form never matches.
func (s *enumSetting) match(v any) (any, bool) {
	vs := cast.ToString(v)

	for _, choice := range s.def.Options.Choices() {
		if reflect.DeepEqual(choice, v) {
			return choice, true
		}
		if vs != "" && cast.ToString(choice) == vs {
			return choice, true
		}
	}
	return nil, false
}

// snap returns the configured choice matching v, or the raw value when no
// choice matches.
func (s *enumSetting) snap(v any) any {
	if choice, ok := s.match(v); ok {
		return choice
	}
	return v
}

// IsValid accepts candidates that match a configured choice.
func (s *enumSetting) IsValid(v any) bool {
	_, ok := s.match(v)
	return ok
}

func (s *enumSetting) SetValue(v any) (any, error) {
	if !s.IsValid(v) {
		return nil, s.invalidError("enum")
	}

	stored, err := s.writeScalar(cast.ToString(v))
	if err != nil {
		return nil, err
	}

	return s.snap(stored), nil
}
