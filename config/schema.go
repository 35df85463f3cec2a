package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file
func Schema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&Config{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect config schema")
	}
	schema.Title = "Mask Arena Configuration"
	schema.Description = "Match, spawn, player and engine settings; every key is optional and falls back to its default."
	return schema, nil
}

// SchemaJSON renders Schema as indented JSON
func SchemaJSON() ([]byte, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
