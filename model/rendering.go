package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	worldPosLive  = "#"
	worldPosEmpty = "-"
	worldPosSep   = " "

	gridPosLive  = "#"
	gridPosEmpty = "-"

	// ANSI: cursor up one line, erase the line, cursor left
	ansiCursorUp   = "\x1b[1A"
	ansiEraseLine  = "\x1b[2K"
	ansiCursorLeft = "\x1b[%dD"
)

// String renders the bounding box of the live cells padded by one empty row and
// column on every side. Rows run from the highest y down. An empty world renders as "".
func (w *World) String() string {
	b, ok := w.Bounds()
	if !ok {
		return ""
	}

	var (
		sb       strings.Builder
		emptyRow = emptyWorldRow(b)
	)
	sb.WriteString(emptyRow)
	walkDown(b.MaxY, b.MinY, func(y int) {
		sb.WriteByte('\n')
		sb.WriteString(worldPosEmpty)
		walkUp(b.MinX, b.MaxX, func(x int) {
			sb.WriteString(worldPosSep)
			if w.Contains(x, y) {
				sb.WriteString(worldPosLive)
			} else {
				sb.WriteString(worldPosEmpty)
			}
		})
		sb.WriteString(worldPosSep)
		sb.WriteString(worldPosEmpty)
	})
	sb.WriteByte('\n')
	sb.WriteString(emptyRow)
	return sb.String()
}

func emptyWorldRow(b Bounds) string {
	var sb strings.Builder
	sb.WriteString(worldPosEmpty)
	walkUp(b.MinX, b.MaxX, func(int) {
		sb.WriteString(worldPosSep)
		sb.WriteString(worldPosEmpty)
	})
	sb.WriteString(worldPosSep)
	sb.WriteString(worldPosEmpty)
	return sb.String()
}

// walkUp calls fn for lo..hi inclusive without stepping past hi, so hi may be math.MaxInt
func walkUp(lo, hi int, fn func(int)) {
	if lo > hi {
		return
	}
	for v := lo; ; v++ {
		fn(v)
		if v == hi {
			return
		}
	}
}

// walkDown calls fn for hi..lo inclusive
func walkDown(hi, lo int, fn func(int)) {
	if lo > hi {
		return
	}
	for v := hi; ; v-- {
		fn(v)
		if v == lo {
			return
		}
	}
}

// String renders the grid one row per line, top row first, with no separators
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.width {
			if g.cells[y][x] {
				sb.WriteString(gridPosLive)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
	}
	return sb.String()
}

// TerminalRenderer prints simulation snapshots and can erase the previous one in place
type TerminalRenderer struct {
	out   io.Writer
	au    aurora.Aurora
	lines []int
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer(color bool) *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout, color)
}

// NewTerminalRendererTo creates a renderer writing to out
func NewTerminalRendererTo(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, au: aurora.NewAurora(color)}
}

// Display prints the snapshot of sim and remembers its shape for Rewind
func (r *TerminalRenderer) Display(sim Simulation) {
	snapshot := sim.String()
	r.lines = r.lines[:0]
	if snapshot == "" {
		return
	}
	for _, line := range strings.Split(snapshot, "\n") {
		r.lines = append(r.lines, len(line))
		fmt.Fprintln(r.out, r.colorize(line))
	}
}

// Rewind erases the lines written by the last Display
func (r *TerminalRenderer) Rewind() {
	for i := len(r.lines) - 1; i >= 0; i-- {
		fmt.Fprint(r.out, ansiCursorUp)
		fmt.Fprint(r.out, ansiEraseLine)
		fmt.Fprintf(r.out, ansiCursorLeft, r.lines[i])
	}
	r.lines = r.lines[:0]
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, "\x1b[H\x1b[2J")
	r.lines = r.lines[:0]
}

func (r *TerminalRenderer) colorize(line string) string {
	return strings.ReplaceAll(line, worldPosLive, r.au.BrightGreen(worldPosLive).String())
}
