// items.go implements the "item-sample items" command.
//
// The items command performs the same run as the root command but prints
// the container contents instead of the summary line, as a text table or
// a JSON object depending on the --json flag.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/item-sample/internal/driver"
	"github.com/shinji-kodama/item-sample/internal/model"
)

// NewItemsCommand creates the "items" cobra command. The run flags are
// inherited from the root command, so the same --config/--items/... apply.
func NewItemsCommand(flags *runFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List the items appended to the container",
		Long: `List every item in the container in insertion order.

Examples:
  item-sample items
  item-sample items --items 3 --prefix row-
  item-sample items --json`,

		// The run is fully described by the inherited flags.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.

		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, flags)
		},
	}

	return cmd
}

// runItems resolves the configuration, executes the driver and prints the
// resulting container.
func runItems(cmd *cobra.Command, flags *runFlags) error {
	// Step 1: Merge defaults, config file and explicit flags.
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Step 2: Execute the same run the root command performs.
	res, err := driver.Run(cfg)
	if err != nil {
		return err
	}
	VerboseLog("Run %s: listing %d items", res.RunID, res.Container.Count())

	// Step 3: Output the container contents in the requested format.
	out := cmd.OutOrStdout()
	if IsJSONOutput() {
		return writeJSON(out, itemsResultJSON{
			Name:  res.Container.Name(),
			Count: res.Container.Count(),
			Items: res.Container.Items(),
		})
	}

	_, err = io.WriteString(out, FormatItemsTable(res.Container))
	return err
}

// itemsResultJSON is the JSON output structure of the items command.
// Items is always a JSON array, never null.
type itemsResultJSON struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Items []string `json:"items"`
}

// FormatItemsTable renders the container as a text table with one row per
// item. Returns a fixed notice when the container is empty.
//
// The table format is:
//
//	CONTAINER: example (2 items)
//	INDEX  ITEM
//	0      item_0
//	1      item_1
func FormatItemsTable(c *model.Container) string {
	if c.Count() == 0 {
		return fmt.Sprintf("Container %q has no items.\n", c.Name())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CONTAINER: %s (%d items)\n", c.Name(), c.Count())
	fmt.Fprintf(&b, "%-6s %s\n", "INDEX", "ITEM")
	for i, item := range c.Items() {
		fmt.Fprintf(&b, "%-6d %s\n", i, item)
	}
	return b.String()
}
