package chart_test

import (
	"fmt"

	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/geom"
)

type rows []float64

func (r rows) Count(*chart.View) int { return len(r) }

func (r rows) RowAt(_ *chart.View, i int) chart.Row { return chart.NewRow(r[i]) }

func (r rows) DrawRow(v *chart.View, i int, _ chart.Context) {
	f, _ := v.RowFrame(i)
	fmt.Printf("row %d at y=%.0f h=%.0f\n", i, f.Y, f.Height)
}

type noClip struct{}

func (noClip) ClipToRect(geom.Rect) {}
func (noClip) ResetClip()           {}

func ExampleView() {
	v := chart.NewView(chart.WithScale(2))
	v.SetAdapter(rows{10, 20, 15})
	v.SetSeparatorWidth(2)

	v.Layout(geom.Size{Width: 100, Height: 30})
	fmt.Printf("content: %.0fx%.0f\n", v.ContentSize().Width, v.ContentSize().Height)

	v.Draw(noClip{}, geom.Rect{Width: 100, Height: 30})
	// Output:
	// content: 100x49
	// row 0 at y=0 h=10
	// row 1 at y=12 h=20
}

func ExampleQuantize() {
	fmt.Println(chart.Quantize(49, 2))
	fmt.Println(chart.Quantize(10.3, 2))
	fmt.Println(chart.Quantize(10.7, 2))
	// Output:
	// 49
	// 10.5
	// 11
}
