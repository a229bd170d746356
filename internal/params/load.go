package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a parameter file and returns it as a Set.
//
// Two formats are supported, selected by file extension:
//   - .json / .jsonc: JSON with comments. Comments (// and /* */) and
//     trailing commas are stripped with github.com/tidwall/jsonc before
//     parsing, so annotated scenario files work out of the box.
//   - .yaml / .yml: parsed with gopkg.in/yaml.v3.
//
// Values are left as decoded; the translator coerces numeric types as
// needed, and the "time" parameter may remain an RFC 3339 string (it is
// parsed during translation).
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return parseJSONC(data, path)
	case ".yaml", ".yml":
		return parseYAML(data, path)
	default:
		return nil, fmt.Errorf("unsupported parameter file extension %q (use .json, .jsonc, .yaml or .yml)", filepath.Ext(path))
	}
}

// parseJSONC strips JSONC comments and parses the result as a flat
// JSON object.
func parseJSONC(data []byte, path string) (Set, error) {
	clean := jsonc.ToJSON(data)

	var raw map[string]any
	if err := json.Unmarshal(clean, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse parameter file %s: %w", path, err)
	}
	return Set(raw), nil
}

// parseYAML parses a flat YAML mapping. yaml.v3 decodes whole numbers as
// int; Set coercion helpers accept both int and float64, so no numeric
// normalization is required here.
func parseYAML(data []byte, path string) (Set, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse parameter file %s: %w", path, err)
	}
	return Set(raw), nil
}
