package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/item-sample/internal/model"
)

// writeConfig writes content to a file with the given name inside a
// per-test temporary directory and returns its path.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireExitCode asserts err is a CLIError carrying the expected code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected *model.CLIError, got %T", err)
	assert.Equal(t, code, cliErr.Code)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "example", cfg.Name)
	assert.Equal(t, 10, cfg.Items)
	assert.Equal(t, "item_", cfg.ItemPrefix)
	assert.Equal(t, 5, cfg.Threshold)
	assert.NoError(t, cfg.Validate())
}

// TestValidate checks that only the numeric fields are constrained.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero items", func(c *Config) { c.Items = 0 }, false},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, false},
		{"empty name and prefix", func(c *Config) { c.Name, c.ItemPrefix = "", "" }, false},
		{"negative items", func(c *Config) { c.Items = -1 }, true},
		{"negative threshold", func(c *Config) { c.Threshold = -3 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				requireExitCode(t, err, model.ExitConfigError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "run.yaml", `
name: inventory
items: 3
itemPrefix: "sku-"
threshold: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "inventory", Items: 3, ItemPrefix: "sku-", Threshold: 2}, cfg)
}

// TestLoad_YAMLPartial verifies that fields missing from the file keep
// their default values.
func TestLoad_YAMLPartial(t *testing.T) {
	path := writeConfig(t, "run.yml", "items: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example", cfg.Name)
	assert.Equal(t, 5, cfg.Items)
	assert.Equal(t, "item_", cfg.ItemPrefix)
	assert.Equal(t, 5, cfg.Threshold)
}

// TestLoad_JSONC verifies comments and trailing commas are accepted in
// JSON config files.
func TestLoad_JSONC(t *testing.T) {
	path := writeConfig(t, "run.jsonc", `{
  // container name
  "name": "demo",
  /* block comment */
  "items": 7,
  "threshold": 6,
}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 7, cfg.Items)
	assert.Equal(t, "item_", cfg.ItemPrefix)
	assert.Equal(t, 6, cfg.Threshold)
}

func TestLoad_PlainJSON(t *testing.T) {
	path := writeConfig(t, "run.JSON", `{"itemPrefix": "row"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "row", cfg.ItemPrefix)
	assert.Equal(t, 10, cfg.Items)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		requireExitCode(t, err, model.ExitConfigNotFound)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfig(t, "run.toml", "items = 3\n")
		_, err := Load(path)
		requireExitCode(t, err, model.ExitConfigError)
		assert.Contains(t, err.Error(), ".toml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "run.yaml", "items: [1, 2\n")
		_, err := Load(path)
		requireExitCode(t, err, model.ExitConfigError)
	})

	t.Run("wrong type in json", func(t *testing.T) {
		path := writeConfig(t, "run.json", `{"items": "ten"}`)
		_, err := Load(path)
		requireExitCode(t, err, model.ExitConfigError)
	})
}

// TestLoad_DoesNotValidate verifies out-of-range values are returned as
// parsed, leaving validation to the caller after overrides are applied.
func TestLoad_DoesNotValidate(t *testing.T) {
	path := writeConfig(t, "run.yaml", "items: -2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, -2, cfg.Items)

	err = cfg.Validate()
	requireExitCode(t, err, model.ExitConfigError)
	assert.Contains(t, err.Error(), "must not be negative")
}
