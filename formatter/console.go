package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/flattree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Ellipsis is appended to labels which have been cut off.
const Ellipsis = "…"

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // in fixed-width positions ('en's); 0 means unlimited
	Context   *uax11.Context // context for UAX#11 width; nil means uax11.LatinContext
	Palette   []*color.Color // colors for levels, repeating; nil means DefaultPalette
	NoColor   bool           // suppress colors altogether
}

// DefaultPalette returns a color for the root and one for each of the next
// levels. Deeper levels repeat the colors of the upper ones.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

var setupGraphemes sync.Once

// Print writes a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](tree *flattree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(tree, os.Stdout, config)
}

// Output writes a tree in tree-art format to w, using colors for the levels
// of the tree and cutting off labels at config.LineWidth.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output[T any](tree *flattree.Tree[T], w io.Writer, config *Config) error {
	if tree.IsEmpty() || w == nil || config == nil {
		return flattree.ErrIllegalArguments
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	for prefix, node := range tree.RangeBranches() {
		label := strings.ReplaceAll(fmt.Sprintf("%v", node.Value()), "\n", " ")
		if config.LineWidth > 0 {
			avail := config.LineWidth - width(prefix, context)
			label = truncate(label, avail, context)
		}
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		var err error
		if config.NoColor || len(palette) == 0 {
			_, err = io.WriteString(w, label)
		} else {
			_, err = palette[node.Level()%len(palette)].Fprint(w, label)
		}
		if err != nil {
			return err
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate cuts s so that s plus an ellipsis fits into avail positions.
// If avail is too small to even hold the ellipsis, only the ellipsis is
// returned.
func truncate(s string, avail int, context *uax11.Context) string {
	if width(s, context) <= avail {
		return s
	}
	ellipsis := width(Ellipsis, context)
	if avail <= ellipsis {
		return Ellipsis
	}
	cut := 0
	for i := range s { // i is at rune boundaries
		if i > 0 && width(s[:i], context)+ellipsis > avail {
			break
		}
		cut = i
	}
	return s[:cut] + Ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched off
// for non-terminals.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 0
		config.NoColor = true
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
