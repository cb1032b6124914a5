package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

const sampleSchema = "../../internal/compiler/testdata/schema.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, metricsFile, forceInit = "", "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "check", sampleSchema)
	require.NoError(t, err)
	assert.Contains(t, out, "Schema valid")
	assert.Contains(t, out, "Modules:  3")
}

func TestTranslateCommand(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "tl.txtar")
	metrics := filepath.Join(dir, "tlgen.prom")

	out, err := run(t, "translate", sampleSchema, output, "--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+output)

	ar, err := txtar.ParseFile(output)
	require.NoError(t, err)
	names := make([]string, len(ar.Files))
	for i, f := range ar.Files {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"tl/tl_gen.go", "tl/auth_gen.go", "tl/help_gen.go"}, names)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "tlwire_compiler_translations_total")
}

func TestTranslateCommandUsesConfig(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tlgen.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("package = \"api\"\nimport_path = \"example.com/api\"\n"), 0o644))
	output := filepath.Join(dir, "api.txtar")

	_, err := run(t, "--config", cfg, "translate", sampleSchema, output)
	require.NoError(t, err)

	ar, err := txtar.ParseFile(output)
	require.NoError(t, err)
	require.NotEmpty(t, ar.Files)
	assert.Equal(t, "api/api_gen.go", ar.Files[0].Name)
	assert.Contains(t, string(ar.Files[0].Data), `// import "example.com/api"`)
}

func TestTranslateCommandRejectsBadSchema(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"constructors": [{"id": 1}]}`), 0o644))
	output := filepath.Join(dir, "out.txtar")

	_, err := run(t, "translate", input, output)
	require.Error(t, err)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigInitCommand(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "tlgen.yaml")

	_, err := run(t, "config", "init", path)
	require.NoError(t, err)
	_, err = run(t, "config", "init", path)
	assert.Error(t, err, "existing file without --force")
	_, err = run(t, "config", "init", "--force", path)
	require.NoError(t, err)

	out, err := run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "package:        tl")
	assert.Contains(t, out, "emit_methods:   true")
}
