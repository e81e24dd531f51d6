package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/camelot/keygraph"
	"github.com/katalvlaran/camelot/transition"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print every edge of the key wheel",
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := keygraph.Build(keygraphCatalog())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FROM\tTRANSITION\tTO")
		for _, e := range kg.Core().Edges() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.From, e.Label, e.To)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

// keygraphCatalog is the rule set every command builds the wheel from.
func keygraphCatalog() []transition.Transition {
	return transition.Catalog()
}
