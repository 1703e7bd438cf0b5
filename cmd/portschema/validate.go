package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// compileSchema checks that schema is a usable JSON Schema document
func compileSchema(schema NodeSchema) error {
	if _, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema)); err != nil {
		return fmt.Errorf("schema %s does not compile: %w", schema.ID, err)
	}
	return nil
}

// validateSchema validates a node schema against the meta-schema
func validateSchema(schema NodeSchema, metaSchemaPath string) error {
	// If meta-schema path is not provided, skip validation
	if metaSchemaPath == "" {
		return nil
	}

	metaSchemaLoader := gojsonschema.NewReferenceLoader("file://" + metaSchemaPath)

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("failed to marshal schema for validation: %w", err)
	}

	result, err := gojsonschema.Validate(metaSchemaLoader, gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		var b strings.Builder
		fmt.Fprintf(&b, "schema validation failed for %s:", schema.ID)
		for _, desc := range result.Errors() {
			fmt.Fprintf(&b, "\n  - %s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%s", b.String())
	}

	return nil
}
