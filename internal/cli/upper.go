// upper.go implements the "item-sample upper" command,
// a thin wrapper around model.UtilityFunction.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/item-sample/internal/model"
)

// NewUpperCommand creates the "upper" cobra command.
func NewUpperCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upper <text>...",
		Short: "Print each argument in upper case",
		Long: `Print each argument upper-cased, one per line.

Examples:
  item-sample upper hello
  item-sample upper --json item_0 straße`,

		// At least one text argument is required; cobra reports the
		// error before RunE is called.
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpper(cmd, args)
		},
	}

	return cmd
}

// upperEntryJSON is one input/output pair in the upper command JSON output.
type upperEntryJSON struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// runUpper applies model.UtilityFunction to every argument and prints the
// results in argument order, as text lines or a JSON array.
func runUpper(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	VerboseLog("Upper-casing %d arguments", len(args))

	if IsJSONOutput() {
		type resultJSON struct {
			Results []upperEntryJSON `json:"results"`
		}
		// Preallocate so the JSON output is always an array, never null.
		result := resultJSON{Results: make([]upperEntryJSON, 0, len(args))}
		for _, arg := range args {
			result.Results = append(result.Results, upperEntryJSON{
				Input:  arg,
				Output: model.UtilityFunction(arg),
			})
		}
		return writeJSON(out, result)
	}

	for _, arg := range args {
		if _, err := fmt.Fprintln(out, model.UtilityFunction(arg)); err != nil {
			return err
		}
	}
	return nil
}
