package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchemaFile generates a JSON schema file for the configuration so
// editors can validate config.yaml.
func GenerateSchemaFile(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = DefaultConfigDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	schemaFile := filepath.Join(dir, "config.schema.json")

	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/infinitty/infinitty/config.schema.json"
	schema.Title = "Infinitty Configuration"
	schema.Description = "Configuration schema for the Infinitty shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
