package bars

import (
	"math"

	"github.com/wqcharts/bizchart/pkg/chart"
)

// Series describes one row of bars.
type Series struct {
	Label     string    // Drawn at the start of the visible part of the row
	Width     float64   // Row thickness across the stack axis
	Values    []float64 // Bar values, clamped to [0, 1] when drawn
	BarLength float64   // Length of each bar along the row
	Color     string    // Bar color, hex or ANSI number
}

// Length returns the length the values need along the row.
func (s Series) Length() float64 {
	if s.BarLength <= 0 {
		return 0
	}
	return float64(len(s.Values)) * s.BarLength
}

// Path is the range of bars that intersect the distribution bounds.
// First > Last means no bar is visible.
type Path struct {
	Lower, Upper float64 // Bounds along the row, relative to its start
	First, Last  int     // Inclusive bar indices
}

// Len returns the number of bars in the path.
func (p Path) Len() int { return max(0, p.Last-p.First+1) }

// Row is a chart row backed by a Series.
type Row struct {
	series Series
}

var _ chart.DistributionRow = (*Row)(nil)

// NewRow wraps s.
func NewRow(s Series) *Row { return &Row{series: s} }

// Series returns the series the row was built from.
func (r *Row) Series() Series { return r.series }

// Width returns the series width.
func (r *Row) Width() float64 { return r.series.Width }

// MeasureLength returns the longer of the visible extent and the length
// the values need.
func (r *Row) MeasureLength(visualRange float64) float64 {
	return max(visualRange, r.series.Length())
}

// Distribute returns the Path of bars overlapping [lower, upper).
func (r *Row) Distribute(lower, upper float64) chart.DistributionPath {
	p := Path{Lower: lower, Upper: upper, First: 0, Last: -1}
	bl := r.series.BarLength
	n := len(r.series.Values)
	if bl <= 0 || n == 0 || upper <= lower {
		return p
	}
	first := int(math.Floor(lower / bl))
	last := int(math.Ceil(upper/bl)) - 1
	p.First = max(first, 0)
	p.Last = min(last, n-1)
	return p
}
