package bars

import (
	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/render"
)

// Option configures an Adapter.
type Option func(*Adapter)

// WithBackground paints the content area before rows are drawn.
func WithBackground(color string) Option { return func(a *Adapter) { a.background = color } }

// WithBorder outlines the content area after rows are drawn.
func WithBorder(color string) Option { return func(a *Adapter) { a.border = color } }

// WithLabelColor sets the color of series labels.
func WithLabelColor(color string) Option { return func(a *Adapter) { a.labelColor = color } }

// WithGap leaves space between neighbouring bars.
func WithGap(gap float64) Option { return func(a *Adapter) { a.gap = max(0, gap) } }

// Adapter feeds a list of series to a chart.View.
type Adapter struct {
	series     []Series
	background string
	border     string
	labelColor string
	gap        float64

	paths map[int]Path
}

var (
	_ chart.Adapter     = (*Adapter)(nil)
	_ chart.Distributor = (*Adapter)(nil)
	_ chart.RowDrawer   = (*Adapter)(nil)
	_ chart.WillDrawer  = (*Adapter)(nil)
	_ chart.DidDrawer   = (*Adapter)(nil)
)

// New creates an adapter for series.
func New(series []Series, opts ...Option) *Adapter {
	a := &Adapter{series: series, paths: make(map[int]Path)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Series returns the current series.
func (a *Adapter) Series() []Series { return a.series }

// SetSeries replaces the data. Call View.ReloadData afterwards.
func (a *Adapter) SetSeries(series []Series) { a.series = series }

// Count returns the number of series.
func (a *Adapter) Count(*chart.View) int { return len(a.series) }

// RowAt returns a fresh row for series index.
func (a *Adapter) RowAt(_ *chart.View, index int) chart.Row { return NewRow(a.series[index]) }

// DistributeRow remembers the visible bar range of row index.
func (a *Adapter) DistributeRow(_ *chart.View, path chart.DistributionPath, index int) {
	if p, ok := path.(Path); ok {
		a.paths[index] = p
	}
}

// Distributed returns the path stored for index during the current pass.
func (a *Adapter) Distributed(index int) (Path, bool) {
	p, ok := a.paths[index]
	return p, ok
}

// WillDraw forgets the previous pass and paints the background.
func (a *Adapter) WillDraw(v *chart.View, ctx chart.Context) {
	clear(a.paths)
	c, ok := ctx.(render.Canvas)
	if !ok || a.background == "" {
		return
	}
	c.FillRect(contentRect(v), a.background)
}

// DidDraw outlines the content area.
func (a *Adapter) DidDraw(v *chart.View, ctx chart.Context) {
	c, ok := ctx.(render.Canvas)
	if !ok || a.border == "" {
		return
	}
	r := contentRect(v)
	c.FillRect(geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: 1}, a.border)
	c.FillRect(geom.Rect{X: r.X, Y: r.MaxY() - 1, Width: r.Width, Height: 1}, a.border)
	c.FillRect(geom.Rect{X: r.X, Y: r.Y, Width: 1, Height: r.Height}, a.border)
	c.FillRect(geom.Rect{X: r.MaxX() - 1, Y: r.Y, Width: 1, Height: r.Height}, a.border)
}

// DrawRow paints the distributed bars of row index and its label.
func (a *Adapter) DrawRow(v *chart.View, index int, ctx chart.Context) {
	c, ok := ctx.(render.Canvas)
	if !ok || index >= len(a.series) {
		return
	}
	frame, ok := v.RowFrame(index)
	if !ok {
		return
	}
	s := a.series[index]
	path, ok := a.paths[index]
	if !ok {
		path = Path{First: 0, Last: len(s.Values) - 1}
	}

	horizontal := v.Orientation() == chart.Horizontal
	for i := path.First; i <= path.Last; i++ {
		c.FillRect(a.barRect(frame, path.Lower, s, i, horizontal), s.Color)
	}
	if s.Label != "" {
		c.Text(frame.Origin(), s.Label, a.labelColor)
	}
}

// barRect places bar i of s inside frame. lower is the row-relative
// coordinate of the frame's start along the row.
func (a *Adapter) barRect(frame geom.Rect, lower float64, s Series, i int, horizontal bool) geom.Rect {
	value := min(max(s.Values[i], 0), 1)
	along := float64(i)*s.BarLength - lower
	length := max(s.BarLength-a.gap, 0)
	if horizontal {
		thickness := frame.Width * value
		return geom.Rect{X: frame.X, Y: frame.Y + along, Width: thickness, Height: length}
	}
	thickness := frame.Height * value
	return geom.Rect{X: frame.X + along, Y: frame.MaxY() - thickness, Width: length, Height: thickness}
}

func contentRect(v *chart.View) geom.Rect {
	return geom.NewRect(geom.Point{}, v.ContentSize())
}
