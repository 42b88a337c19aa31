/*
Package display renders diagnostic dumps of keyed containers.

Every container of this module exposes a Print method which delegates to
Table. Output consists of a title line, carrying container name, ordering,
element count and capacity, and a table of the elements:

	ORDERED LIST (ascending key) | 3 elements | capacity 10
	+---+-----+---------------------------+
	| # | KEY | ELEMENT                   |
	+---+-----+---------------------------+
	| 0 |  10 | Student 10 · Ana Lima ... |
	...

The title is colored if the writer is a terminal.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package display

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/keyed"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Header describes a container for the title line of a dump.
type Header struct {
	Title    string // container name, e.g. "RING QUEUE"
	Order    string // ordering of the rows, e.g. "front→back" or "in-order"
	Count    int    // number of elements
	Capacity int    // 0 if not applicable
	// Mark, if set, returns an annotation for the row at a position,
	// e.g. "front" for the first row of a queue.
	Mark func(pos int) string
}

// String formats the title line of h, without color.
func (h Header) String() string {
	s := h.Title
	if h.Order != "" {
		s += " (" + h.Order + ")"
	}
	s += " | " + strconv.Itoa(h.Count) + " element"
	if h.Count != 1 {
		s += "s"
	}
	if h.Capacity > 0 {
		s += " | capacity " + strconv.Itoa(h.Capacity)
	}
	return s
}

// TitleColor is used for the title line when writing to a terminal.
var TitleColor = color.New(color.FgBlue, color.Bold)

// Table writes a title line for h followed by a table of elems to w.
func Table(w io.Writer, h Header, elems iter.Seq[keyed.Element]) {
	title(w, h)
	rows := 0
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	withMarks := h.Mark != nil
	if withMarks {
		table.SetHeader([]string{"#", "", "KEY", "ELEMENT"})
	} else {
		table.SetHeader([]string{"#", "KEY", "ELEMENT"})
	}
	for e := range elems {
		row := []string{strconv.Itoa(rows)}
		if withMarks {
			row = append(row, h.Mark(rows))
		}
		row = append(row, strconv.FormatInt(e.Key(), 10), keyed.Describe(e))
		table.Append(row)
		rows++
	}
	if rows == 0 {
		io.WriteString(w, "(empty)\n")
		return
	}
	table.Render()
}

func title(w io.Writer, h Header) {
	c := *TitleColor
	if !isTerminal(w) {
		c.DisableColor()
	}
	c.Fprintln(w, h.String())
}

// isTerminal reports whether w is a terminal. Colors are never used for
// buffers and files.
func isTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Line writes a single untabulated line, e.g. a tree visualization, below
// a title for h.
func Line(w io.Writer, h Header, line string) {
	title(w, h)
	fmt.Fprintln(w, line)
}
