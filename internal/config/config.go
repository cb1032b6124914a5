package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config controls how tlgen turns a schema into Go.
type Config struct {
	Package       string   `toml:"package" yaml:"package"`
	ImportPath    string   `toml:"import_path" yaml:"import_path"`
	Exclude       []string `toml:"exclude" yaml:"exclude"`
	ReservedWords []string `toml:"reserved_words" yaml:"reserved_words"`
	EmitMethods   bool     `toml:"emit_methods" yaml:"emit_methods"`
}

func Default() Config {
	return Config{
		Package:     "tl",
		ImportPath:  "example.com/tl",
		EmitMethods: true,
	}
}

// Load reads a TOML or YAML config, chosen by file extension, over the
// defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeToml(data, &cfg)
	case ".yaml", ".yml":
		err = decodeYaml(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unknown format %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func decodeToml(data []byte, out *Config) error {
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func decodeYaml(data []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func ValidateConfig(cfg Config) error {
	pkg := strings.TrimSpace(cfg.Package)
	if pkg == "" {
		return fmt.Errorf("package is required")
	}
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("package %q is not a Go identifier", pkg)
	}
	if strings.TrimSpace(cfg.ImportPath) == "" {
		return fmt.Errorf("import_path is required")
	}
	if strings.ContainsAny(cfg.ImportPath, " \t\\") || strings.HasSuffix(cfg.ImportPath, "/") {
		return fmt.Errorf("import_path %q is malformed", cfg.ImportPath)
	}
	for i, kind := range cfg.Exclude {
		if strings.TrimSpace(kind) == "" {
			return fmt.Errorf("exclude[%d] is empty", i)
		}
	}
	for i, w := range cfg.ReservedWords {
		if !token.IsIdentifier(w) && !token.IsKeyword(w) {
			return fmt.Errorf("reserved_words[%d] %q is not an identifier", i, w)
		}
	}
	return nil
}
