package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/gogpu/selection"
)

// reporter prints one line per script step.
type reporter struct {
	w      io.Writer
	header *color.Color
	step   *color.Color
	empty  *color.Color
	bounds *color.Color
}

func newReporter(w io.Writer, noColor bool) *reporter {
	r := &reporter{
		w:      w,
		header: color.New(color.FgCyan, color.Bold),
		step:   color.New(color.FgWhite),
		empty:  color.New(color.FgYellow),
		bounds: color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{r.header, r.step, r.empty, r.bounds} {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) begin(s *Script, run string) {
	r.header.Fprintf(r.w, "%s %dx%d, %d steps (run %s)\n", s.Name, s.Width, s.Height, len(s.Steps), run)
}

func (r *reporter) report(i int, st Step, c *selection.Channel) {
	r.step.Fprintf(r.w, "%3d  %-28s ", i+1, st)
	if rect, ok := c.Bounds(); ok {
		r.bounds.Fprintf(r.w, "bounds %v\n", rect)
	} else {
		r.empty.Fprintln(r.w, "empty")
	}
}

func (r *reporter) done(path string) {
	fmt.Fprintf(r.w, "saved %s\n", path)
}
