package recordkit

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

const (
	recordSchemaID      = "https://github.com/metalagman/recordkit/schemas/record.json"
	recordSchemaVersion = "http://json-schema.org/draft-07/schema#"
)

var (
	recordSchemaOnce sync.Once
	recordSchema     *gojsonschema.Schema
	recordSchemaErr  error
)

// RecordSchema produces the JSON Schema document describing a Record file.
// Unknown top-level fields are allowed, matching what Load accepts.
func RecordSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
	}

	s := r.Reflect(&Record{})
	s.Version = recordSchemaVersion
	s.ID = recordSchemaID
	s.Title = "recordkit Record"
	s.Description = "A named record persisted as pretty-printed JSON"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record schema: %w", err)
	}

	return data, nil
}

// ValidateRecordJSON reports whether data is a JSON document with the Record shape.
// Every failure, including malformed JSON, wraps ErrDecode.
func ValidateRecordJSON(data []byte) error {
	schema, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrDecode, strings.Join(errs, "; "))
}

func compiledRecordSchema() (*gojsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		data, err := RecordSchema()
		if err != nil {
			recordSchemaErr = err

			return
		}

		recordSchema, recordSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	})

	return recordSchema, recordSchemaErr
}
