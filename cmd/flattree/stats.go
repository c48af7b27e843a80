package main

import (
	"fmt"

	"github.com/npillmayer/flattree/metrics"
	"github.com/spf13/cobra"
)

func newStatsCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [dir]",
		Short: "Show statistics about a directory hierarchy",
		Long: `The stats command reads the hierarchy below dir (default ".") and
reports the number of nodes and leaves, the height, the widest level and the
entry with the most direct children.

Example:
  flattree stats
  flattree stats src --hidden`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := walkDir(cmd, g, dirArg(args), false)
			if err != nil {
				return err
			}
			m := metrics.Collect(tree)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:       %d\n", m.Nodes)
			fmt.Fprintf(out, "leaves:      %d\n", m.Leaves)
			fmt.Fprintf(out, "height:      %d\n", m.Height)
			fmt.Fprintf(out, "width:       %d\n", m.Width())
			fmt.Fprintf(out, "max fan-out: %d (%s)\n", m.MaxFanOut, tree.Values()[m.FanOutAt])
			for l, n := range m.Widths {
				fmt.Fprintf(out, "  level %2d:  %d\n", l, n)
			}
			return nil
		},
	}
	return cmd
}
