package chart

import (
	"time"

	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/observability"
)

// Draw renders the rows visible in bounds onto ctx. bounds.X and bounds.Y
// are the scroll offset and bounds.Width and bounds.Height the viewport.
//
// Draw uses the rows of the last layout pass as they are; it does not lay
// out again. Without an adapter it does nothing.
//
// Every row is assigned a frame, but only rows whose frame intersects the
// visible region are distributed and handed to the adapter for drawing.
func (v *View) Draw(ctx Context, bounds geom.Rect) {
	if v.adapter == nil || ctx == nil {
		return
	}
	start := time.Now()
	v.needsRedraw = false

	if w, ok := v.adapter.(WillDrawer); ok {
		w.WillDraw(v, ctx)
	}

	if v.clipRect != nil {
		ctx.ClipToRect(*v.clipRect)
	}

	visible := v.drawRows(ctx, v.VisibleBounds(bounds))

	if v.clipRect != nil {
		ctx.ResetClip()
	}

	if d, ok := v.adapter.(DidDrawer); ok {
		d.DidDraw(v, ctx)
	}

	v.logger.Debug("Draw", "bounds", bounds, "rows", len(v.rows), "visible", visible)
	observability.Chart().OnDraw(len(v.rows), visible, time.Since(start))
}

// VisibleBounds returns the padded viewport shifted by the overscroll
// offset, in content coordinates. During elastic overscroll the content
// stays pinned to the viewport edge.
func (v *View) VisibleBounds(bounds geom.Rect) geom.Rect {
	dx := BounceOffset(bounds.X, v.contentSize.Width, bounds.Width)
	dy := BounceOffset(bounds.Y, v.contentSize.Height, bounds.Height)
	return bounds.Inset(v.padding).Offset(dx, dy)
}

// BounceOffset returns the correction for one axis that cancels overscroll
// past either end of the content. It is zero while offset lies within
// [0, content-min(content, viewport)].
func BounceOffset(offset, content, viewport float64) float64 {
	limit := content - min(content, viewport)
	switch {
	case offset < 0:
		return -offset
	case offset > limit:
		return limit - offset
	default:
		return 0
	}
}

func (v *View) drawRows(ctx Context, visible geom.Rect) int {
	o := v.orientation
	lengthLead, _ := o.lengthPadding(v.padding)
	stackLead, _ := o.stackPadding(v.padding)
	lengthStart, lengthExtent := o.lengthSpan(visible)

	lower := lengthStart - lengthLead
	upper := lower + lengthExtent

	distributor, _ := v.adapter.(Distributor)
	drawer, _ := v.adapter.(RowDrawer)

	drawn := 0
	cursor := stackLead
	last := len(v.rows) - 1
	for i, row := range v.rows {
		frame := o.rect(lengthStart, cursor, min(v.lengths[i], lengthExtent), row.Width())
		v.frames[i] = frame
		v.placed[i] = true

		if visible.Intersects(frame) {
			if dr, ok := row.(DistributionRow); ok && distributor != nil {
				distributor.DistributeRow(v, dr.Distribute(lower, upper), i)
			}
			if drawer != nil {
				drawer.DrawRow(v, i, ctx)
			}
			drawn++
		}

		cursor += row.Width()
		if i < last {
			cursor += v.separator
		}
	}
	return drawn
}
