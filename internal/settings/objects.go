package settings

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bananabr/discourse/internal/db/controller/themesetting"
	"github.com/bananabr/discourse/internal/db/models"
)

// objectsSetting stores structured values as JSON instead of a scalar string.
// Candidates are not validated against the attached schema.
// TODO: validate candidates against Options.JSONSchema before persisting.
type objectsSetting struct {
	base
}

func (s *objectsSetting) Value() (any, error) {
	rec := s.record()
	if rec == nil {
		return s.def.Default, nil
	}
	return decodeJSONValue(rec)
}

func (s *objectsSetting) SetValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode setting %q", s.def.Name)
	}

	rec, err := s.ensureRecord()
	if err != nil {
		return nil, err
	}

	rec.JSONValue = data
	if err := themesetting.Save(s.env.DB, rec); err != nil {
		return nil, errors.Wrapf(err, "failed to save setting %q", s.def.Name)
	}

	return decodeJSONValue(rec)
}

func decodeJSONValue(rec *models.ThemeSetting) (any, error) {
	if len(rec.JSONValue) == 0 {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal(rec.JSONValue, &v); err != nil {
		return nil, errors.Wrapf(err, "failed to decode stored setting %q", rec.Name)
	}

	return v, nil
}
