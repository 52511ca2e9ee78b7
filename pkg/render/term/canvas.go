// Package term implements a [render.Canvas] on a terminal cell grid.
//
// One content unit maps to one cell. The grid is an ntcharts canvas sized
// to the visible bounds; content coordinates are translated by the bounds
// origin, so the same adapter code paints into the SVG and terminal
// contexts.
//
// [render.Canvas]: github.com/wqcharts/bizchart/pkg/render.Canvas
package term

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"

	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/render"
)

// FillRune is the rune painted by FillRect.
const FillRune = '█'

// Canvas paints into an ntcharts canvas.
type Canvas struct {
	bounds geom.Rect
	grid   canvas.Model
	clip   render.ClipStack
}

var _ render.Canvas = (*Canvas)(nil)

// New creates a canvas covering bounds. Fractional sizes round to the
// nearest cell.
func New(bounds geom.Rect) *Canvas {
	w := max(0, int(math.Round(bounds.Width)))
	h := max(0, int(math.Round(bounds.Height)))
	c := &Canvas{bounds: bounds, grid: canvas.New(w, h)}
	c.Clear()
	return c
}

// Clear blanks every cell and drops the clip.
func (c *Canvas) Clear() {
	blank := lipgloss.NewStyle()
	for y := range c.Height() {
		for x := range c.Width() {
			c.grid.SetRuneWithStyle(canvas.Point{X: x, Y: y}, ' ', blank)
		}
	}
	c.clip.Reset()
}

// Width returns the grid width in cells.
func (c *Canvas) Width() int { return c.grid.Width() }

// Height returns the grid height in cells.
func (c *Canvas) Height() int { return c.grid.Height() }

// ClipToRect limits later painting to r intersected with any active clip.
func (c *Canvas) ClipToRect(r geom.Rect) { c.clip.Push(r) }

// ResetClip removes every clip.
func (c *Canvas) ResetClip() { c.clip.Reset() }

// FillRect paints the cells covered by r.
func (c *Canvas) FillRect(r geom.Rect, color string) {
	r = c.clip.Apply(r)
	if r.IsEmpty() {
		return
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	x0, y0 := c.cell(r.MinX(), r.MinY())
	x1, y1 := c.cell(r.MaxX(), r.MaxY())
	for y := max(y0, 0); y < min(y1, c.Height()); y++ {
		for x := max(x0, 0); x < min(x1, c.Width()); x++ {
			c.grid.SetRuneWithStyle(canvas.Point{X: x, Y: y}, FillRune, style)
		}
	}
}

// Text writes s one rune per cell starting at p. Runes outside the clip or
// the grid are dropped.
func (c *Canvas) Text(p geom.Point, s string, color string) {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	clip, clipped := c.clip.Current()
	x, y := c.cell(p.X, p.Y)
	if y < 0 || y >= c.Height() {
		return
	}
	for i, r := range []rune(s) {
		cx := x + i
		if cx < 0 {
			continue
		}
		if cx >= c.Width() {
			break
		}
		if clipped && !clip.Contains(geom.Point{X: p.X + float64(i), Y: p.Y}) {
			continue
		}
		c.grid.SetRuneWithStyle(canvas.Point{X: cx, Y: y}, r, style)
	}
}

// View renders the grid.
func (c *Canvas) View() string { return c.grid.View() }

// cell converts a content coordinate to a grid cell.
func (c *Canvas) cell(x, y float64) (int, int) {
	return int(math.Round(x - c.bounds.X)), int(math.Round(y - c.bounds.Y))
}
