package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput() error {
	switch outputFormat {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use: text, json, yaml)", outputFormat)
	}
}

// render writes v as JSON or YAML, or calls text for the human format.
func render(w io.Writer, v any, text func() string) error {
	switch outputFormat {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text())
		return err
	}
}
