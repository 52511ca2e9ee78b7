// Package bars is a chart adapter that draws each row as a series of bars.
//
// A [Series] becomes one row. Its values are laid out along the row at a
// fixed [Series.BarLength] each and drawn as bars whose thickness across
// the row is proportional to the value. Rows measure at least the visible
// extent, so short series fill the viewport and long ones scroll.
//
// The adapter uses every optional hook of the chart protocol:
//
//   - DistributeRow stores the [Path] of bars that intersect the viewport.
//   - DrawRow paints only those bars plus the series label.
//   - WillDraw paints the background; DidDraw paints the border.
//
// Painting needs a [render.Canvas]. On a context that only clips, the
// adapter does nothing.
//
// [render.Canvas]: github.com/wqcharts/bizchart/pkg/render.Canvas
package bars
