package viz

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/vlvec"
	"golang.org/x/term"
)

// Slot classifies buffer slots for colorization.
type Slot uint8

const (
	// LiveInline is a live slot of a vector in inline mode.
	LiveInline Slot = iota
	// LiveHeap is a live slot of a vector in heap mode.
	LiveHeap
	// Free is an unused slot between count and capacity.
	Free
)

// Palette maps slot classes to colors, used for display. It may contain just
// a subset of the classes; uncolored classes are printed plainly.
type Palette map[Slot]*color.Color

func makeDefaultPalette() Palette {
	return Palette{
		LiveInline: color.New(color.FgBlue),
		LiveHeap:   color.New(color.FgRed),
		Free:       color.New(color.FgHiBlack),
	}
}

// Config controls the console rendering.
type Config struct {
	// LineWidth is the target line length in fixed-width ‘en’s; long slot
	// rows wrap at this width.
	LineWidth int
	// Context is the East Asian width context used to measure slot cells.
	// If unset, uax11.LatinContext is used.
	Context *uax11.Context
	// Palette maps slot classes to colors. If unset, a default palette is used.
	Palette Palette
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		config.LineWidth = 65
	}
	return config
}

// Dump renders the storage state of a vector to w.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive). Config.Context will then
// be created from the user environment.
func Dump[T any](v *vlvec.Vec[T], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	palette := config.Palette
	if palette == nil {
		palette = makeDefaultPalette()
	}
	tracer().Debugf("viz: dump of vector with count=%d cap=%d", v.Len(), v.Capacity())
	mode, live := "inline", LiveInline
	if !v.IsInline() {
		mode, live = "heap", LiveHeap
	}
	if _, err := fmt.Fprintf(w, "Vec mode=%s count=%d cap=%d\n", mode, v.Len(), v.Capacity()); err != nil {
		return err
	}
	cells := renderCells(v)
	cellwidth := 1
	for _, cell := range cells {
		width := uax11.StringWidth(grapheme.StringFromString(cell), config.Context)
		if width > cellwidth {
			cellwidth = width
		}
	}
	linelen := 0
	for i, cell := range cells {
		width := uax11.StringWidth(grapheme.StringFromString(cell), config.Context)
		padded := cell + strings.Repeat(" ", cellwidth-width)
		class := live
		if i >= v.Len() {
			class = Free
		}
		if linelen+cellwidth+2 > config.LineWidth && linelen > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			linelen = 0
		}
		if err := printCell(w, "["+padded+"]", palette[class]); err != nil {
			return err
		}
		linelen += cellwidth + 2
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// renderCells formats one cell string per slot of the active buffer, live
// slots first.
func renderCells[T any](v *vlvec.Vec[T]) []string {
	cells := make([]string, v.Capacity())
	for i, value := range v.Data() {
		cells[i] = fmt.Sprintf("%v", value)
	}
	for i := v.Len(); i < v.Capacity(); i++ {
		cells[i] = "·"
	}
	return cells
}

// printCell outputs a single cell, colorized if a color is configured for
// its class.
func printCell(w io.Writer, s string, c *color.Color) error {
	if c != nil {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
