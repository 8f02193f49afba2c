package recordkit

import "os"

const (
	// DefaultFilePerm is the permission used for newly created record files.
	DefaultFilePerm os.FileMode = 0o644
	// RecordSchemaFileName is the conventional name for the exported record schema.
	RecordSchemaFileName = "record.schema.json"
	// ConfigFileName is the conventional name of the recordkit config file.
	ConfigFileName = "recordkit.yaml"
)
