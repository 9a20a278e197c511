// Package cli implements the cobra-based CLI commands for item-sample.
//
// The root command performs the sample run itself. The "items" and "upper"
// subcommands are defined in their own files within this package. This file
// defines the root command, the global flags, and exit code handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/item-sample/internal/config"
	"github.com/shinji-kodama/item-sample/internal/driver"
	"github.com/shinji-kodama/item-sample/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables trace output on stderr.
	verbose bool

	// errOut receives error and verbose output.
	errOut io.Writer = os.Stderr
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// runFlags holds the persistent flags that describe a driver run.
// They are shared by the root command and the "items" subcommand.
type runFlags struct {
	// configPath is an optional YAML or JSONC file overlaid on the defaults.
	configPath string

	name      string
	items     int
	prefix    string
	threshold int
}

// NewRootCommand creates and configures the root cobra command.
//
// Running the root command with no arguments performs the sample run and
// prints exactly one line.
func NewRootCommand() *cobra.Command {
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "item-sample",
		Short: "Fill a named container with items and report the count",
		Long: `item-sample creates a named container, appends a sequence of items
named <prefix><index>, and reports the item count when it is greater
than the threshold.

With no flags the run uses the container name "example", 10 items
named item_0 through item_9, and a threshold of 5.

Examples:
  item-sample
  item-sample --items 5
  item-sample --config run.yaml --json`,

		// The root command takes no positional arguments. Anything else is
		// either a subcommand name or a usage error.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors lets Execute format errors (text or JSON).
		SilenceErrors: true,

		// Version is displayed when the --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// RunE returns an error to Execute, which maps it to an exit code.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, flags)
		},
	}

	// PersistentFlags are inherited by all subcommands, so --json and
	// --verbose work everywhere without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Run flags are persistent too, since "items" performs the same run.
	// Their defaults mirror config.Default() so help output shows real values.
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to a run configuration file (.yaml, .yml, .json, .jsonc)")
	rootCmd.PersistentFlags().StringVar(&flags.name, "name", config.DefaultName, "Container name")
	rootCmd.PersistentFlags().IntVar(&flags.items, "items", config.DefaultItems, "Number of items to append")
	rootCmd.PersistentFlags().StringVar(&flags.prefix, "prefix", config.DefaultItemPrefix, "Item name prefix")
	rootCmd.PersistentFlags().IntVar(&flags.threshold, "threshold", config.DefaultThreshold,
		"Report the count only when it is greater than this value")

	// Register subcommands. Each one is defined in its own file.
	rootCmd.AddCommand(NewItemsCommand(flags))
	rootCmd.AddCommand(NewUpperCommand())

	return rootCmd
}

// resolveConfig builds the run configuration. Precedence, highest first:
// explicitly set flags, the --config file, the built-in defaults.
func resolveConfig(cmd *cobra.Command, flags *runFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		VerboseLog("Loaded config from %s", flags.configPath)
	}

	// Only flags the user set explicitly override the file. cmd.Flag looks
	// up both local and inherited persistent flags.
	if f := cmd.Flag("name"); f != nil && f.Changed {
		cfg.Name = flags.name
	}
	if f := cmd.Flag("items"); f != nil && f.Changed {
		cfg.Items = flags.items
	}
	if f := cmd.Flag("prefix"); f != nil && f.Changed {
		cfg.ItemPrefix = flags.prefix
	}
	if f := cmd.Flag("threshold"); f != nil && f.Changed {
		cfg.Threshold = flags.threshold
	}

	// Validate the merged result, so a flag can replace an out-of-range
	// file value.
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runSample resolves the configuration, executes the driver and prints
// its single-line result.
func runSample(cmd *cobra.Command, flags *runFlags) error {
	// Step 1: Merge defaults, config file and explicit flags.
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Step 2: Build and populate the container, then compare its count
	// against the threshold.
	res, err := driver.Run(cfg)
	if err != nil {
		return err
	}
	VerboseLog("Run %s: container %q holds %d items (threshold %d)",
		res.RunID, res.Container.Name(), res.Container.Count(), res.Threshold)

	// Step 3: Output the result. Text mode prints exactly one line.
	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return writeJSON(out, sampleResultJSON{
			RunID:     res.RunID,
			Name:      res.Container.Name(),
			Count:     res.Container.Count(),
			Threshold: res.Threshold,
			Exceeded:  res.Exceeded,
			Message:   res.Message,
		})
	}

	_, err = fmt.Fprintln(out, res.Message)
	return err
}

// sampleResultJSON is the JSON output structure of the root command.
type sampleResultJSON struct {
	RunID     string `json:"runId"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Threshold int    `json:"threshold"`
	Exceeded  bool   `json:"exceeded"`
	Message   string `json:"message"`
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// CLIError values carry their own message and underlying cause;
		// any other error is printed as-is.
		code := exitCode(err)
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
		} else {
			printError(err.Error(), nil)
		}
		os.Exit(int(code))
	}
}

// exitCode maps an error to the process exit code. CLIError values carry
// their own code; any other error maps to ExitGeneralError.
func exitCode(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// stdout is reserved for successful command output.
		_ = writeJSON(errOut, errObj)
		return
	}

	if underlying != nil {
		fmt.Fprintf(errOut, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(errOut, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(errOut, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
