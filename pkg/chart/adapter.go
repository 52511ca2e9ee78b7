package chart

import "github.com/wqcharts/bizchart/pkg/geom"

// Adapter supplies rows to a View on demand.
//
// RowAt is called exactly once per index per layout pass, in ascending
// order. Callbacks run synchronously on the caller's goroutine and must not
// trigger another Layout or Draw on the same view.
type Adapter interface {
	Count(v *View) int
	RowAt(v *View, index int) Row
}

// Distributor receives the distribution path of every visible
// DistributionRow during a draw pass.
type Distributor interface {
	DistributeRow(v *View, path DistributionPath, index int)
}

// RowDrawer draws a visible row. The row's frame is available through
// v.RowFrame(index).
type RowDrawer interface {
	DrawRow(v *View, index int, ctx Context)
}

// WillDrawer is notified before any row of a pass is drawn.
type WillDrawer interface {
	WillDraw(v *View, ctx Context)
}

// DidDrawer is notified after every row of a pass is drawn.
type DidDrawer interface {
	DidDraw(v *View, ctx Context)
}

// Context is the drawing surface supplied by the host for one draw pass.
type Context interface {
	// ClipToRect intersects the current clip region with r.
	ClipToRect(r geom.Rect)

	// ResetClip removes every clip applied during the pass.
	ResetClip()
}

// ContentSizeSink receives the content size computed by each layout pass,
// typically to update a scroll range.
type ContentSizeSink interface {
	SetContentSize(size geom.Size)
}
