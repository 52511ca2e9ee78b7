package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/render"
)

const defaultFontSize = 12

// Option configures a Canvas.
type Option func(*Canvas)

// WithFontSize sets the font size used by Text.
func WithFontSize(size float64) Option { return func(c *Canvas) { c.fontSize = size } }

// WithPixelScale sets the size of one content unit in output pixels. It
// only changes the width and height attributes; coordinates stay in
// content units.
func WithPixelScale(k float64) Option {
	return func(c *Canvas) {
		if k > 0 {
			c.pixelScale = k
		}
	}
}

// WithBackground fills the visible bounds with color before anything else.
func WithBackground(color string) Option { return func(c *Canvas) { c.background = color } }

// Canvas accumulates SVG elements for one draw pass.
type Canvas struct {
	bounds     geom.Rect
	fontSize   float64
	pixelScale float64
	background string

	body  bytes.Buffer
	clips int // clip-path ids handed out
	open  int // clip groups currently open
	clip  render.ClipStack
}

var _ render.Canvas = (*Canvas)(nil)

// New creates a canvas whose viewBox is bounds.
func New(bounds geom.Rect, opts ...Option) *Canvas {
	c := &Canvas{bounds: bounds, fontSize: defaultFontSize, pixelScale: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClipToRect opens a group clipped to r. Groups nest, so the effective clip
// is the intersection of every open rect.
func (c *Canvas) ClipToRect(r geom.Rect) {
	c.clip.Push(r)
	c.clips++
	id := "clip" + strconv.Itoa(c.clips)
	fmt.Fprintf(&c.body, `  <clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`+"\n",
		id, num(r.X), num(r.Y), num(r.Width), num(r.Height))
	fmt.Fprintf(&c.body, `  <g clip-path="url(#%s)">`+"\n", id)
	c.open++
}

// ResetClip closes every open clip group.
func (c *Canvas) ResetClip() {
	c.closeGroups()
	c.clip.Reset()
}

// FillRect writes a filled rect. Rectangles that are empty or fall
// entirely outside the clip are skipped.
func (c *Canvas) FillRect(r geom.Rect, color string) {
	if r.IsEmpty() {
		return
	}
	if clip, ok := c.clip.Current(); ok && !clip.Intersects(r) {
		return
	}
	fmt.Fprintf(&c.body, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(r.X), num(r.Y), num(r.Width), num(r.Height), Color(color))
}

// Text writes s with its top-left corner at p.
func (c *Canvas) Text(p geom.Point, s string, color string) {
	if s == "" {
		return
	}
	fmt.Fprintf(&c.body, `  <text x="%s" y="%s" font-family="monospace" font-size="%s" dominant-baseline="hanging" fill="%s">%s</text>`+"\n",
		num(p.X), num(p.Y), num(c.fontSize), Color(color), escapeXML(s))
}

// Bytes returns the complete document. Clip groups left open by the caller
// are closed in the output but stay open on the canvas.
func (c *Canvas) Bytes() []byte {
	var buf bytes.Buffer
	b := c.bounds
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		num(b.X), num(b.Y), num(b.Width), num(b.Height), num(b.Width*c.pixelScale), num(b.Height*c.pixelScale))
	if c.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(b.X), num(b.Y), num(b.Width), num(b.Height), Color(c.background))
	}
	buf.Write(c.body.Bytes())
	for range c.open {
		buf.WriteString("  </g>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (c *Canvas) closeGroups() {
	for ; c.open > 0; c.open-- {
		c.body.WriteString("  </g>\n")
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
