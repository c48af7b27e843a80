package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by all sub-commands.
type globalOptions struct {
	verbose bool
	hidden  bool
	depth   int
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:   "flattree",
		Short: "Display directory hierarchies as trees",
		Long: `flattree reads a directory hierarchy into a pre-order flat tree
and prints it as tree-art, Graphviz DOT or a nested HTML list, or reports
statistics about its shape.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				tracing.Select("flattree").SetTraceLevel(tracing.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug tracing")
	root.PersistentFlags().BoolVar(&g.hidden, "hidden", false, "Include entries starting with '.'")
	root.PersistentFlags().IntVar(&g.depth, "max-depth", 0, "Maximum depth below dir (0 = unlimited)")
	root.AddCommand(newWalkCmd(g))
	root.AddCommand(newStatsCmd(g))
	return root
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// dirArg returns the directory argument of a command, defaulting to ".".
func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
