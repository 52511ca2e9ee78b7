// Package svg implements a [render.Canvas] that produces an SVG document.
//
// The document's viewBox is the visible bounds passed to [New], so adapters
// paint in content coordinates and the scroll offset is applied by the
// viewer. Clips become nested <clipPath> groups; [Canvas.ResetClip] closes
// every open group.
//
//	c := svg.New(bounds, svg.WithBackground("#1e1e2e"))
//	view.Draw(c, bounds)
//	os.WriteFile("chart.svg", c.Bytes(), 0o644)
//
// [render.Canvas]: github.com/wqcharts/bizchart/pkg/render.Canvas
package svg
