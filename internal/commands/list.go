package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quicklaunch/internal/discovery"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/filter"
)

var listNoPager bool

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the applications matching a query",
	Long: `Scan the application directories and print every entry whose name
contains query (case-insensitive), one "name<TAB>path" line per entry.

Output to a terminal is shown in a pager; pipe it or pass --no-pager for plain text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listNoPager, "no-pager", false, "print directly even when stdout is a terminal")
}

func runList(cmd *cobra.Command, args []string) error {
	_, opts, err := loadSettings(nil)
	if err != nil {
		return err
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	catalog := discovery.Discover(cmd.Context(), opts)
	view := filter.Filter(catalog, query)

	var buf bytes.Buffer
	if err := writeEntries(&buf, view); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !listNoPager && buf.Len() > 0 && isTerminal(out) {
		return page(buf.String())
	}
	_, err = io.Copy(out, &buf)
	return err
}

// writeEntries writes one name<TAB>path line per entry
func writeEntries(w io.Writer, view domain.FilteredView) error {
	for _, entry := range view {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.Name, entry.Path); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	return nil
}
