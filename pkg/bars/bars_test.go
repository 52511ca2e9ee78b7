package bars

import (
	"fmt"
	"slices"
	"testing"

	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/geom"
)

// recordingCanvas records paint operations as strings.
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) ClipToRect(r geom.Rect) {
	c.ops = append(c.ops, fmt.Sprintf("clip:%g,%g,%g,%g", r.X, r.Y, r.Width, r.Height))
}

func (c *recordingCanvas) ResetClip() { c.ops = append(c.ops, "reset") }

func (c *recordingCanvas) FillRect(r geom.Rect, color string) {
	c.ops = append(c.ops, fmt.Sprintf("fill:%g,%g,%g,%g,%s", r.X, r.Y, r.Width, r.Height, color))
}

func (c *recordingCanvas) Text(p geom.Point, s, color string) {
	c.ops = append(c.ops, fmt.Sprintf("text:%g,%g,%s,%s", p.X, p.Y, s, color))
}

// clipOnly satisfies chart.Context but cannot paint.
type clipOnly struct{ calls int }

func (c *clipOnly) ClipToRect(geom.Rect) { c.calls++ }
func (c *clipOnly) ResetClip()           { c.calls++ }

func TestRowMeasureLength(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		visual float64
		want   float64
	}{
		{"fills short series", Series{Values: []float64{1}, BarLength: 2}, 10, 10},
		{"long series scrolls", Series{Values: make([]float64, 8), BarLength: 3}, 10, 24},
		{"zero bar length", Series{Values: []float64{1, 2}}, 5, 5},
		{"empty", Series{BarLength: 2}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRow(tt.series).MeasureLength(tt.visual); got != tt.want {
				t.Errorf("MeasureLength(%v) = %v, want %v", tt.visual, got, tt.want)
			}
		})
	}
}

func TestRowDistribute(t *testing.T) {
	s := Series{Values: make([]float64, 4), BarLength: 10}

	tests := []struct {
		name         string
		lower, upper float64
		first, last  int
	}{
		{"all", 0, 40, 0, 3},
		{"middle", 15, 35, 1, 3},
		{"aligned", 10, 20, 1, 1},
		{"before start", -10, 5, 0, 0},
		{"past end", 45, 60, 4, 3},
		{"empty range", 20, 20, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRow(s).Distribute(tt.lower, tt.upper).(Path)
			if p.First != tt.first || p.Last != tt.last {
				t.Errorf("Distribute(%v, %v) = [%d, %d], want [%d, %d]",
					tt.lower, tt.upper, p.First, p.Last, tt.first, tt.last)
			}
			if p.Lower != tt.lower || p.Upper != tt.upper {
				t.Errorf("bounds = (%v, %v), want (%v, %v)", p.Lower, p.Upper, tt.lower, tt.upper)
			}
		})
	}
}

func TestPathLen(t *testing.T) {
	if n := (Path{First: 1, Last: 3}).Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
	if n := (Path{First: 4, Last: 3}).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func newScrolledView(t *testing.T) (*chart.View, *Adapter) {
	t.Helper()
	a := New([]Series{
		{Label: "a", Width: 2, Values: []float64{1, 0.5, 0, 1}, BarLength: 10, Color: "#111111"},
		{Width: 2, Values: []float64{0.5}, BarLength: 10, Color: "#222222"},
	}, WithLabelColor("7"))
	v := chart.NewView()
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 20, Height: 4})
	return v, a
}

func TestAdapterDrawsVisibleBars(t *testing.T) {
	v, a := newScrolledView(t)
	if got := v.ContentSize(); got != (geom.Size{Width: 40, Height: 4}) {
		t.Fatalf("ContentSize() = %+v", got)
	}

	c := &recordingCanvas{}
	v.Draw(c, geom.Rect{X: 15, Y: 0, Width: 20, Height: 4})

	want := []string{
		"fill:10,1,10,1,#111111",
		"fill:20,2,10,0,#111111",
		"fill:30,0,10,2,#111111",
		"text:15,0,a,7",
	}
	if !slices.Equal(c.ops, want) {
		t.Errorf("ops = %q\nwant %q", c.ops, want)
	}

	p, ok := a.Distributed(1)
	if !ok || p.Len() != 0 {
		t.Errorf("row 1 path = %+v, %v; want empty path", p, ok)
	}
}

func TestAdapterBackgroundAndBorder(t *testing.T) {
	a := New([]Series{{Width: 2, BarLength: 1}}, WithBackground("0"), WithBorder("8"))
	v := chart.NewView()
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 4, Height: 2})

	c := &recordingCanvas{}
	v.Draw(c, geom.Rect{Width: 4, Height: 2})

	want := []string{
		"fill:0,0,4,2,0",
		"fill:0,0,4,1,8",
		"fill:0,1,4,1,8",
		"fill:0,0,1,2,8",
		"fill:3,0,1,2,8",
	}
	if !slices.Equal(c.ops, want) {
		t.Errorf("ops = %q\nwant %q", c.ops, want)
	}
}

func TestAdapterHorizontal(t *testing.T) {
	a := New([]Series{{Width: 3, Values: []float64{1, 2}, BarLength: 2, Color: "1"}}, WithGap(0.5))
	v := chart.NewView(chart.WithOrientation(chart.Horizontal))
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 3, Height: 10})

	c := &recordingCanvas{}
	v.Draw(c, geom.Rect{Width: 3, Height: 10})

	want := []string{
		"fill:0,0,3,1.5,1",
		"fill:0,2,3,1.5,1",
	}
	if !slices.Equal(c.ops, want) {
		t.Errorf("ops = %q\nwant %q", c.ops, want)
	}
}

func TestAdapterWithoutCanvas(t *testing.T) {
	v, a := newScrolledView(t)
	c := &clipOnly{}
	v.Draw(c, geom.Rect{Width: 20, Height: 4})

	if _, ok := a.Distributed(0); !ok {
		t.Error("rows should still be distributed on a clip-only context")
	}
}

func TestAdapterSetSeriesReload(t *testing.T) {
	v, a := newScrolledView(t)
	a.SetSeries([]Series{{Width: 1, BarLength: 1}})
	v.ReloadData()
	v.Layout(geom.Size{Width: 20, Height: 4})

	if n := len(v.Rows()); n != 1 {
		t.Errorf("rows after reload = %d, want 1", n)
	}
	if got := v.ContentSize(); got != (geom.Size{Width: 20, Height: 1}) {
		t.Errorf("ContentSize() = %+v", got)
	}
}
