// Package config handles the run configuration for the item-sample driver.
//
// A run is described by four values: the container name, how many items to
// append, the prefix each item name starts with, and the threshold the
// final count is compared against. Defaults reproduce the canonical sample
// run ("example", 10 items, "item_", threshold 5).
//
// Configuration can optionally be loaded from a file. YAML files are parsed
// with gopkg.in/yaml.v3; JSON files may contain comments and trailing
// commas, which are stripped with github.com/tidwall/jsonc before parsing
// with encoding/json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/item-sample/internal/model"
)

const (
	// DefaultName is the container name used by the sample run.
	DefaultName = "example"

	// DefaultItems is the number of items the sample run appends.
	DefaultItems = 10

	// DefaultItemPrefix is prepended to each item index to form its name.
	DefaultItemPrefix = "item_"

	// DefaultThreshold is the count the sample run must strictly exceed
	// to report its item count.
	DefaultThreshold = 5
)

// Config describes a single driver run.
type Config struct {
	// Name is the container name. Any text is accepted.
	Name string `yaml:"name" json:"name"`

	// Items is the number of items appended to the container.
	// Must not be negative.
	Items int `yaml:"items" json:"items"`

	// ItemPrefix is prepended to the zero-based item index, e.g. "item_3".
	ItemPrefix string `yaml:"itemPrefix" json:"itemPrefix"`

	// Threshold is compared against the final count with strict
	// greater-than. Must not be negative.
	Threshold int `yaml:"threshold" json:"threshold"`
}

// Default returns the configuration of the canonical sample run.
func Default() Config {
	return Config{
		Name:       DefaultName,
		Items:      DefaultItems,
		ItemPrefix: DefaultItemPrefix,
		Threshold:  DefaultThreshold,
	}
}

// Validate checks the numeric fields. Name and ItemPrefix are free text.
func (c Config) Validate() error {
	if c.Items < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid item count %d: must not be negative", c.Items))
	}
	if c.Threshold < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid threshold %d: must not be negative", c.Threshold))
	}
	return nil
}

// Load reads a configuration file and overlays it on Default().
// Fields absent from the file keep their default values.
//
// The format is chosen by extension: .yaml and .yml are parsed as YAML,
// .json and .jsonc as JSON with comments. Returns a CLIError with
// ExitConfigNotFound if the file does not exist, and ExitConfigError for
// any other read or parse failure.
//
// Load does not call Validate. Callers may still override fields (for
// example from command-line flags), so the merged result is validated
// by the caller.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, model.WrapCLIError(model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return cfg, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		return cfg, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext))
	}
	if err != nil {
		return cfg, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	return cfg, nil
}
