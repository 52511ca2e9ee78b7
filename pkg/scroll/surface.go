// Package scroll models the scrollable host a chart view draws into.
//
// A [Surface] owns the viewport size, the scroll offset and the content
// size. It receives the content size from the view as a
// [chart.ContentSizeSink] and hands [Surface.Bounds] to [chart.View.Draw].
//
// Scrolling past either end is allowed with resistance, producing the
// rubber-band overscroll the view compensates for while drawing.
// [Surface.Settle] springs the offset back into range.
//
// [chart.ContentSizeSink]: github.com/wqcharts/bizchart/pkg/chart.ContentSizeSink
// [chart.View.Draw]: github.com/wqcharts/bizchart/pkg/chart.View.Draw
package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/geom"
)

const (
	defaultResistance = 0.5
	defaultFrequency  = 8.0
	defaultDamping    = 1.0
	settleFPS         = 60
	restEpsilon       = 0.01
)

// Option configures a Surface.
type Option func(*Surface)

// WithResistance sets the factor applied to movement past the content
// edges. 1 scrolls freely, 0 blocks overscroll. Values are clamped to [0, 1].
func WithResistance(r float64) Option {
	return func(s *Surface) { s.resistance = min(max(r, 0), 1) }
}

// WithSpring sets the angular frequency and damping ratio used by Settle.
func WithSpring(frequency, damping float64) Option {
	return func(s *Surface) {
		s.spring = harmonica.NewSpring(harmonica.FPS(settleFPS), frequency, damping)
	}
}

// Surface is a viewport over scrollable content.
type Surface struct {
	viewport   geom.Size
	content    geom.Size
	offset     geom.Point
	velocity   geom.Point
	resistance float64
	spring     harmonica.Spring
}

var _ chart.ContentSizeSink = (*Surface)(nil)

// NewSurface creates a surface with the given viewport at offset zero.
func NewSurface(viewport geom.Size, opts ...Option) *Surface {
	s := &Surface{
		viewport:   viewport,
		resistance: defaultResistance,
		spring:     harmonica.NewSpring(harmonica.FPS(settleFPS), defaultFrequency, defaultDamping),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Viewport returns the visible size.
func (s *Surface) Viewport() geom.Size { return s.viewport }

// SetViewport changes the visible size. The offset is kept; call Settle to
// bring it back into range.
func (s *Surface) SetViewport(size geom.Size) { s.viewport = size }

// ContentSize returns the last content size received.
func (s *Surface) ContentSize() geom.Size { return s.content }

// SetContentSize records the scroll range.
func (s *Surface) SetContentSize(size geom.Size) { s.content = size }

// Offset returns the scroll offset.
func (s *Surface) Offset() geom.Point { return s.offset }

// MaxOffset returns the largest in-range offset on each axis.
func (s *Surface) MaxOffset() geom.Point {
	return geom.Point{
		X: max(0, s.content.Width-s.viewport.Width),
		Y: max(0, s.content.Height-s.viewport.Height),
	}
}

// Bounds returns the rectangle to pass to View.Draw: the offset as origin
// and the viewport as size.
func (s *Surface) Bounds() geom.Rect {
	return geom.NewRect(s.offset, s.viewport)
}

// ScrollTo jumps to p, clamped into range, and stops any settling.
func (s *Surface) ScrollTo(p geom.Point) {
	m := s.MaxOffset()
	s.offset = geom.Point{X: clamp(p.X, 0, m.X), Y: clamp(p.Y, 0, m.Y)}
	s.velocity = geom.Point{}
}

// ScrollBy moves the offset. Movement that pushes past an edge is scaled
// by the resistance.
func (s *Surface) ScrollBy(dx, dy float64) {
	m := s.MaxOffset()
	s.offset.X = rubberBand(s.offset.X, dx, m.X, s.resistance)
	s.offset.Y = rubberBand(s.offset.Y, dy, m.Y, s.resistance)
}

// Overscrolled reports whether the offset lies outside the content range.
func (s *Surface) Overscrolled() bool {
	m := s.MaxOffset()
	return s.offset.X < 0 || s.offset.X > m.X || s.offset.Y < 0 || s.offset.Y > m.Y
}

// Settle advances the settle spring by one frame and returns true while the
// surface is still moving. Once at rest the offset is exactly in range.
func (s *Surface) Settle() bool {
	m := s.MaxOffset()
	tx, ty := clamp(s.offset.X, 0, m.X), clamp(s.offset.Y, 0, m.Y)

	s.offset.X, s.velocity.X = s.spring.Update(s.offset.X, s.velocity.X, tx)
	s.offset.Y, s.velocity.Y = s.spring.Update(s.offset.Y, s.velocity.Y, ty)

	if atRest(s.offset.X, s.velocity.X, tx) && atRest(s.offset.Y, s.velocity.Y, ty) {
		s.offset = geom.Point{X: tx, Y: ty}
		s.velocity = geom.Point{}
		return false
	}
	return true
}

// rubberBand applies delta to pos. The part of the movement beyond
// [0, limit] in the direction of travel is scaled by r.
func rubberBand(pos, delta, limit, r float64) float64 {
	target := pos + delta
	switch {
	case delta < 0 && target < 0:
		start := min(pos, 0)
		return start + (target-start)*r
	case delta > 0 && target > limit:
		start := max(pos, limit)
		return start + (target-start)*r
	default:
		return target
	}
}

func atRest(pos, vel, target float64) bool {
	return math.Abs(pos-target) < restEpsilon && math.Abs(vel) < restEpsilon
}

func clamp(v, lo, hi float64) float64 { return min(max(v, lo), hi) }
