package recordkit

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRecordSchema(t *testing.T) {
	data, err := RecordSchema()
	if err != nil {
		t.Fatalf("record schema: %v", err)
	}

	var doc struct {
		Schema     string                     `json:"$schema"`
		ID         string                     `json:"$id"`
		Type       string                     `json:"type"`
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}

	if doc.Schema != recordSchemaVersion {
		t.Errorf("unexpected $schema: %q", doc.Schema)
	}
	if doc.ID != recordSchemaID {
		t.Errorf("unexpected $id: %q", doc.ID)
	}
	if doc.Type != "object" {
		t.Errorf("expected object type, got %q", doc.Type)
	}
	if strings.Join(doc.Required, ",") != "name,value" {
		t.Errorf("unexpected required fields: %v", doc.Required)
	}
	for _, field := range []string{"name", "value"} {
		if _, ok := doc.Properties[field]; !ok {
			t.Errorf("property %s missing from schema", field)
		}
	}
	if strings.Contains(string(data), "$ref") {
		t.Error("expected an expanded schema without $ref")
	}
}

func TestValidateRecordJSON(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"name":"a","value":1}`},
		{name: "valid with extra field", doc: `{"name":"a","value":1,"x":[]}`},
		{name: "missing name", doc: `{"value":1}`, wantErr: true},
		{name: "string value", doc: `{"name":"a","value":"1"}`, wantErr: true},
		{name: "object value", doc: `{"name":"a","value":{}}`, wantErr: true},
		{name: "malformed", doc: `{"name":`, wantErr: true},
		{name: "null document", doc: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordJSON([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRecordJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestEncodeRecordHasNoTrailingNewline(t *testing.T) {
	data, err := EncodeRecord(Record{Name: "n", Value: 1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Fatalf("unexpected trailing newline in %q", data)
	}
}
