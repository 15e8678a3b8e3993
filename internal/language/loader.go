package language

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// OverrideFile is the YAML shape of a language override file
type OverrideFile struct {
	Languages []Override `yaml:"languages"`
}

// Override maps one extension to a language label
type Override struct {
	Extension string `yaml:"extension"`
	Language  string `yaml:"language"`
}

// LoadTable returns the built-in table merged with overrides from a
// YAML file. An empty path returns the built-in table unchanged.
func LoadTable(path string) (*Table, error) {
	table := NewTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read language overrides: %w", err)
	}

	var file OverrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse language overrides: %w", err)
	}

	for _, o := range file.Languages {
		ext := strings.ToLower(strings.TrimSpace(o.Extension))
		if ext == "" || o.Language == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		table.languages[ext] = o.Language
	}

	return table, nil
}
