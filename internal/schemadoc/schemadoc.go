// Package schemadoc wraps JSON-schema parsing for setting metadata.
package schemadoc

import (
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Parse compiles a JSON-schema document from its text form.
func Parse(text string) (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse json schema")
	}

	return schema, nil
}
