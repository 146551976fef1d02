package settings

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	uploadctl "github.com/bananabr/discourse/internal/db/controller/upload"
	"github.com/bananabr/discourse/internal/db/models"
)

// uploadSetting stores an upload reference id and resolves it to a CDN URL on
// read. Its default is resolved through the sibling theme field whose name
// matches the declared default token; themes without such a field simply have
// no default, which is not an error.
type uploadSetting struct {
	base
}

// Default returns the CDN URL of the default upload, or an empty string when
// the theme declares no matching upload field.
func (s *uploadSetting) Default() any {
	up, err := s.defaultUpload()
	if err != nil || up == nil {
		return ""
	}
	return s.env.Uploads.CDNURL(up)
}

// defaultUpload resolves the declared default token to the upload referenced
// by the sibling theme field of the same name.
func (s *uploadSetting) defaultUpload() (*models.Upload, error) {
	token := cast.ToString(s.def.Default)
	if token == "" || s.theme == nil {
		return nil, nil
	}

	for i := range s.theme.Fields {
		field := &s.theme.Fields[i]
		if field.Name != token || field.Type != models.ThemeFieldUpload {
			continue
		}

		up, err := s.env.Uploads.FindByID(field.UploadID)
		if err != nil {
			if errors.Is(err, uploadctl.ErrUploadNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return up, nil
	}

	return nil, nil
}

func (s *uploadSetting) Value() (any, error) {
	raw, ok := s.rawValue()
	if !ok {
		return s.Default(), nil
	}

	id := cast.ToUint64(raw)
	if id == 0 {
		return "", nil
	}

	up, err := s.env.Uploads.FindByID(id)
	if err != nil {
		if errors.Is(err, uploadctl.ErrUploadNotFound) {
			return "", nil
		}
		return nil, errors.Wrapf(err, "failed to resolve upload for setting %q", s.def.Name)
	}

	return s.env.Uploads.CDNURL(up), nil
}

// SetValue stores the upload reference behind the given URL. A value equal to
// the resolved default stores the default's underlying upload id rather than
// the URL string; a blank value clears the reference; an unknown URL clears
// it as well.
func (s *uploadSetting) SetValue(v any) (any, error) {
	url := cast.ToString(v)
	if url == "" {
		if _, err := s.writeScalar(""); err != nil {
			return nil, err
		}
		return "", nil
	}

	defUp, err := s.defaultUpload()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve default upload for setting %q", s.def.Name)
	}

	var up *models.Upload
	if defUp != nil && url == s.env.Uploads.CDNURL(defUp) {
		up = defUp
	} else {
		up, err = s.env.Uploads.FindByURL(url)
		if err != nil && !errors.Is(err, uploadctl.ErrUploadNotFound) {
			return nil, errors.Wrapf(err, "failed to resolve upload url for setting %q", s.def.Name)
		}
	}

	raw := ""
	if up != nil {
		raw = strconv.FormatUint(up.ID, 10)
	}

	if _, err := s.writeScalar(raw); err != nil {
		return nil, err
	}

	return s.Value()
}
