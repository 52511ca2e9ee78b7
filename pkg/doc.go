// Package pkg provides the core libraries for bizchart.
//
// # Overview
//
// bizchart lays out row-based business charts on a scrollable surface and
// draws only the rows that are visible. The pkg directory is organized into
// these areas:
//
//  1. [chart] - The layout and draw engine (rows, adapters, quantization,
//     bounce compensation, transforms)
//  2. [bars] - A bar chart adapter built on the engine
//  3. [render] - Drawing contexts: [render/svg] and [render/term]
//  4. [animation], [scroll] - Transform playback and the scroll surface
//  5. [config], [cache], [errors], [observability], [buildinfo] - Support
//
// # Architecture
//
// The typical data flow:
//
//	Chart file (TOML)
//	         ↓
//	    [config] package (parse, validate, build)
//	         ↓
//	    [chart] package (layout at the viewport size)
//	         ↓
//	    [chart] package (draw the visible rows through [bars])
//	         ↓
//	    SVG/PNG/PDF or terminal output
//
// # Quick Start
//
//	ch, _ := config.Load("cpu.toml")
//	v, _ := ch.Build()
//	v.Layout(geom.Size{Width: 80, Height: 20})
//
//	bounds := geom.Rect{Y: 10, Width: 80, Height: 20}
//	c := svg.New(bounds)
//	v.Draw(c, bounds)
//	os.WriteFile("cpu.svg", c.Bytes(), 0644)
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/chart/...      # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [chart]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/chart
// [bars]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/bars
// [render]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/render/svg
// [render/term]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/render/term
// [animation]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/animation
// [scroll]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/scroll
// [config]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/config
// [cache]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/cache
// [errors]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/errors
// [observability]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/wqcharts/bizchart/pkg/buildinfo
package pkg
