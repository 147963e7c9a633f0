// Package schemas holds the JSON Schemas of the files the builder reads and writes.
package schemas

import _ "embed"

// DocumentSchema is the schema of a saved project file.
//
//go:embed document.schema.json
var DocumentSchema string

// DocumentSchemaFile is the file name of DocumentSchema in this directory.
const DocumentSchemaFile = "document.schema.json"
