// Package recordkit saves and loads small named records as pretty-printed JSON files.
package recordkit

// Record is the entity persisted by Store.
// Both fields are required when a record is decoded.
type Record struct {
	Name  string `json:"name"  jsonschema:"description=Free-form record name"`
	Value int32  `json:"value" jsonschema:"description=Signed 32-bit value"`
}
