package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/npillmayer/flattree"
	"github.com/npillmayer/flattree/formatter"
	"github.com/npillmayer/flattree/fswalk"
	"github.com/npillmayer/flattree/html"
	"github.com/spf13/cobra"
)

// Output formats of the walk command.
const (
	formatText  = "text"
	formatColor = "color"
	formatDot   = "dot"
	formatHTML  = "html"
)

func newWalkCmd(g *globalOptions) *cobra.Command {
	var format string
	var recursive bool
	cmd := &cobra.Command{
		Use:   "walk [dir]",
		Short: "Print a directory hierarchy",
		Long: `The walk command reads the hierarchy below dir (default ".") and
prints it in one of several formats.

Example:
  flattree walk
  flattree walk src --max-depth 2
  flattree walk . --format dot | dot -Tsvg > tree.svg
  flattree walk . --format html --hidden`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := walkDir(cmd, g, dirArg(args), recursive)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), baseNames(tree, dirArg(args)), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, color, dot or html")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Build the tree by recursive descent")
	return cmd
}

// walkDir reads the hierarchy below dir, reporting progress to stderr when
// verbose output is requested.
func walkDir(cmd *cobra.Command, g *globalOptions, dir string, recursive bool) (*flattree.Tree[string], error) {
	fsys := os.DirFS(dir)
	opts := fswalk.Options{IncludeHidden: g.hidden, MaxDepth: g.depth}
	w := fswalk.NewWalker(fsys, opts)
	defer w.Close()
	reported := make(chan struct{})
	if g.verbose {
		ch, err := w.Subscribe(cmd.Context(), 64)
		if err != nil {
			return nil, err
		}
		errOut := cmd.ErrOrStderr()
		go func() {
			defer close(reported)
			for m := range ch {
				if p, ok := m.(fswalk.Progress); ok && p.IsDir {
					fmt.Fprintf(errOut, "reading %s\n", p.Path)
				}
			}
		}()
	} else {
		close(reported)
	}
	var tree *flattree.Tree[string]
	var err error
	if recursive {
		tree, err = w.WalkRecursive(cmd.Context(), ".")
	} else {
		tree, err = w.Walk(cmd.Context(), ".")
	}
	w.Close() // closes the progress channel
	<-reported
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}
	return tree, nil
}

// baseNames returns a tree of the same shape as tree, holding only the last
// element of each path. The root is labelled with rootLabel.
func baseNames(tree *flattree.Tree[string], rootLabel string) *flattree.Tree[string] {
	labels := flattree.WithCapacity(rootLabel, tree.Len())
	levels, parents := tree.Levels(), tree.Parents()
	for i, p := range tree.Values()[1:] {
		labels.Append(path.Base(p), levels[i+1], parents[i+1])
	}
	return labels
}

func render(w io.Writer, tree *flattree.Tree[string], format string) error {
	switch format {
	case formatText:
		return tree.Print(w)
	case formatColor:
		config := formatter.ConfigFromTerminal()
		config.NoColor = false // asked for explicitly
		return formatter.Output(tree, w, config)
	case formatDot:
		return flattree.Tree2Dot(tree, w)
	case formatHTML:
		return html.RenderList(tree, w, func(s string) string { return s })
	}
	return fmt.Errorf("unknown format %q, expected one of text, color, dot, html", format)
}
