package render

import (
	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/geom"
)

// Canvas is a chart.Context that adapters can paint on. Coordinates are in
// content space; implementations translate by the scroll offset themselves.
// Colors are hex strings ("#7D56F4") or ANSI color numbers ("36").
type Canvas interface {
	chart.Context

	// FillRect paints r with color, limited to the current clip.
	FillRect(r geom.Rect, color string)

	// Text draws s with its top-left corner at p.
	Text(p geom.Point, s string, color string)
}

// ClipStack tracks nested clip regions for canvases that clip in software.
// The zero value is unclipped.
type ClipStack struct {
	rects []geom.Rect
}

// Push intersects the current clip with r.
func (s *ClipStack) Push(r geom.Rect) {
	if cur, ok := s.Current(); ok {
		r = cur.Intersect(r)
	}
	s.rects = append(s.rects, r)
}

// Reset removes every pushed clip.
func (s *ClipStack) Reset() {
	s.rects = s.rects[:0]
}

// Current returns the active clip; ok is false when nothing is pushed.
func (s *ClipStack) Current() (geom.Rect, bool) {
	if len(s.rects) == 0 {
		return geom.Rect{}, false
	}
	return s.rects[len(s.rects)-1], true
}

// Apply limits r to the active clip.
func (s *ClipStack) Apply(r geom.Rect) geom.Rect {
	if cur, ok := s.Current(); ok {
		return cur.Intersect(r)
	}
	return r
}
