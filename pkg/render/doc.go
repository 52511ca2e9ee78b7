// Package render provides drawing contexts for chart views.
//
// # Overview
//
// [chart.View] only needs a context that can push and reset a clip region.
// Adapters that paint rows need more: [Canvas] adds filled rectangles and
// text. Two implementations are provided:
//
//   - [svg]: an SVG document whose viewBox follows the scroll offset
//   - [term]: a terminal cell grid backed by an ntcharts canvas
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	c := svg.New(bounds)
//	view.Draw(c, bounds)
//	png, err := render.ToPNG(c.Bytes(), 2.0)  // 2x scale
//
// [chart.View]: github.com/wqcharts/bizchart/pkg/chart.View
// [svg]: github.com/wqcharts/bizchart/pkg/render/svg
// [term]: github.com/wqcharts/bizchart/pkg/render/term
package render
