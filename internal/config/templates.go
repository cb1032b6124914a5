package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template returns the starter config for a format: toml or yaml.
func Template(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config format: %s", format)
	}
}

// WriteTemplate writes the starter config matching path's extension.
func WriteTemplate(path string, overwrite bool) error {
	template, err := Template(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `package = "tl"
import_path = "example.com/tl"
emit_methods = true

# Kinds dropped before aggregation, on top of Bool, True, Vector t and Null.
exclude = ["PeerSettings"]

# Extra identifiers rewritten with a trailing underscore.
reserved_words = []
`

const yamlTemplate = `package: tl
import_path: example.com/tl
emit_methods: true

# Kinds dropped before aggregation, on top of Bool, True, Vector t and Null.
exclude:
  - PeerSettings

# Extra identifiers rewritten with a trailing underscore.
reserved_words: []
`
