package chart

import (
	"fmt"

	"github.com/wqcharts/bizchart/pkg/geom"
)

// fixedRow has a fixed cross size and a fixed measured length. A negative
// length means "fill the visual range".
type fixedRow struct {
	width  float64
	length float64
}

func (r fixedRow) Width() float64 { return r.width }

func (r fixedRow) MeasureLength(visualRange float64) float64 {
	if r.length < 0 {
		return visualRange
	}
	return r.length
}

// rangeRow records the bounds it was distributed over.
type rangeRow struct {
	fixedRow
}

type rangePath struct{ lower, upper float64 }

func (r rangeRow) Distribute(lower, upper float64) DistributionPath {
	return rangePath{lower: lower, upper: upper}
}

// recordingAdapter counts protocol calls and records callback order.
type recordingAdapter struct {
	rows        []Row
	countCalls  int
	rowAtCalls  []int
	events      []string
	paths       map[int]DistributionPath
	drawnFrames map[int]geom.Rect
}

func newRecordingAdapter(rows ...Row) *recordingAdapter {
	return &recordingAdapter{
		rows:        rows,
		paths:       map[int]DistributionPath{},
		drawnFrames: map[int]geom.Rect{},
	}
}

func (a *recordingAdapter) Count(v *View) int {
	a.countCalls++
	return len(a.rows)
}

func (a *recordingAdapter) RowAt(v *View, index int) Row {
	a.rowAtCalls = append(a.rowAtCalls, index)
	return a.rows[index]
}

func (a *recordingAdapter) DistributeRow(v *View, path DistributionPath, index int) {
	a.events = append(a.events, fmt.Sprintf("distribute:%d", index))
	a.paths[index] = path
}

func (a *recordingAdapter) DrawRow(v *View, index int, ctx Context) {
	a.events = append(a.events, fmt.Sprintf("draw:%d", index))
	if f, ok := v.RowFrame(index); ok {
		a.drawnFrames[index] = f
	}
}

func (a *recordingAdapter) WillDraw(v *View, ctx Context) {
	a.events = append(a.events, "will")
}

func (a *recordingAdapter) DidDraw(v *View, ctx Context) {
	a.events = append(a.events, "did")
}

func (a *recordingAdapter) resetCalls() {
	a.countCalls = 0
	a.rowAtCalls = nil
	a.events = nil
	a.paths = map[int]DistributionPath{}
	a.drawnFrames = map[int]geom.Rect{}
}

// minimalAdapter implements only the required methods.
type minimalAdapter struct {
	rows []Row
}

func (a minimalAdapter) Count(*View) int          { return len(a.rows) }
func (a minimalAdapter) RowAt(_ *View, i int) Row { return a.rows[i] }

// recordingContext records clip operations.
type recordingContext struct {
	ops []string
}

func (c *recordingContext) ClipToRect(r geom.Rect) {
	c.ops = append(c.ops, fmt.Sprintf("clip:%v,%v,%v,%v", r.X, r.Y, r.Width, r.Height))
}

func (c *recordingContext) ResetClip() {
	c.ops = append(c.ops, "reset")
}

// sizeSink records content sizes written by layout.
type sizeSink struct {
	sizes []geom.Size
}

func (s *sizeSink) SetContentSize(size geom.Size) {
	s.sizes = append(s.sizes, size)
}
