package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// GenerateSchema reflects the JSON schema of Config.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "json",
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/termify/termify/config.schema.json"
	schema.Title = "Termify Configuration"
	schema.Description = "Configuration for the termify layout client"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml.
func GenerateSchemaFile() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := GenerateSchema()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(configDir, schemaFileName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
