package chart

import "github.com/wqcharts/bizchart/pkg/geom"

// InsetsInterpolator maps an animation progress to padding.
type InsetsInterpolator interface {
	ValueForProgress(progress float64) geom.Insets
}

// RectInterpolator maps an animation progress to a clip rectangle.
type RectInterpolator interface {
	ValueForProgress(progress float64) geom.Rect
}

// InsetsTransform interpolates linearly from From to To.
type InsetsTransform struct {
	From, To geom.Insets
}

// ValueForProgress returns From at 0 and To at 1. Progress outside [0, 1]
// extrapolates.
func (t InsetsTransform) ValueForProgress(progress float64) geom.Insets {
	return geom.LerpInsets(t.From, t.To, progress)
}

// RectTransform interpolates linearly from From to To.
type RectTransform struct {
	From, To geom.Rect
}

// ValueForProgress returns From at 0 and To at 1. Progress outside [0, 1]
// extrapolates.
func (t RectTransform) ValueForProgress(progress float64) geom.Rect {
	return geom.LerpRect(t.From, t.To, progress)
}

// Transformable is implemented by anything a progress source can animate.
type Transformable interface {
	NextTransform(progress float64)
	ClearTransforms()
}

var _ Transformable = (*View)(nil)

// TransformPadding returns the padding interpolator, or nil.
func (v *View) TransformPadding() InsetsInterpolator { return v.transformPadding }

// SetTransformPadding sets the padding interpolator; nil removes it.
func (v *View) SetTransformPadding(t InsetsInterpolator) { v.transformPadding = t }

// TransformClipRect returns the clip interpolator, or nil.
func (v *View) TransformClipRect() RectInterpolator { return v.transformClip }

// SetTransformClipRect sets the clip interpolator; nil removes it.
func (v *View) SetTransformClipRect(t RectInterpolator) { v.transformClip = t }

// NextTransform applies the configured interpolators at progress. A padding
// change invalidates the layout; a clip change only requests a redraw.
func (v *View) NextTransform(progress float64) {
	if v.transformPadding != nil {
		v.SetPadding(v.transformPadding.ValueForProgress(progress))
	}
	if v.transformClip != nil {
		v.SetClipRect(v.transformClip.ValueForProgress(progress))
	}
}

// ClearTransforms removes both interpolators. The last applied padding and
// clip stay in effect.
func (v *View) ClearTransforms() {
	v.transformPadding = nil
	v.transformClip = nil
}
