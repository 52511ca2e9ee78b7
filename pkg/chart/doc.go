// Package chart provides the layout and draw engine of a scrollable,
// row-oriented chart surface.
//
// # Overview
//
// A [View] pulls rows from an [Adapter], stacks them along one axis, and
// computes a content size that is usually larger than the viewport. The
// host scrollable surface uses that size as its scroll range and asks the
// view to draw whatever part of the content is currently visible.
//
// Work happens in two passes:
//
//  1. Layout ([View.Layout]): count the rows, fetch each one, measure its
//     length against the available extent, and quantize the resulting
//     content size to device pixels.
//  2. Draw ([View.Draw]): compensate for elastic overscroll, assign every
//     row a frame, and hand only the rows that intersect the visible bounds
//     to the adapter for distribution and drawing.
//
// # Adapter Protocol
//
// [Adapter] is required and supplies the row count and rows. Drawing hooks
// are optional capabilities discovered with type assertions:
//
//   - [Distributor]: receives the [DistributionPath] of each visible
//     [DistributionRow]
//   - [RowDrawer]: draws a visible row
//   - [WillDrawer], [DidDrawer]: bracket every draw pass
//
// The view does not own the adapter. Clearing it with SetAdapter(nil)
// returns the view to an empty, zero-sized state. Adapters must not call
// Layout or Draw from inside a callback.
//
// # Orientation
//
// With [Vertical] (the default) rows stack from top to bottom and their
// lengths run along X. [Horizontal] swaps the axes.
//
// # Transforms
//
// [View.NextTransform] applies optional padding and clip-rect interpolators
// for a progress value, so any progress source can animate the layout.
//
// # Usage
//
//	v := chart.NewView(chart.WithScale(2))
//	v.SetAdapter(adapter)
//	v.SetPadding(geom.InsetsAll(8))
//
//	v.Layout(geom.Size{Width: 320, Height: 200})
//	v.Draw(canvas, geom.Rect{X: offsetX, Y: offsetY, Width: 320, Height: 200})
package chart
