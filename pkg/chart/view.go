package chart

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/observability"
)

// View is the layout and draw engine of a scrollable row chart.
//
// A View is not safe for concurrent use. The host calls Layout whenever the
// viewport may have changed and Draw on every paint; both are cheap no-ops
// when nothing needs to be done.
type View struct {
	adapter     Adapter
	padding     geom.Insets
	clipRect    *geom.Rect
	separator   float64
	scale       float64
	orientation Orientation
	sink        ContentSizeSink
	logger      *log.Logger

	transformPadding InsetsInterpolator
	transformClip    RectInterpolator

	rows        []Row
	lengths     []float64
	frames      []geom.Rect
	placed      []bool
	contentSize geom.Size
	layoutSize  geom.Size
	needsLayout bool
	needsRedraw bool
}

// Option configures a View.
type Option func(*View)

// WithScale sets the number of device pixels per unit used to quantize the
// content size (default 1).
func WithScale(scale float64) Option {
	return func(v *View) {
		if scale > 0 {
			v.scale = scale
		}
	}
}

// WithOrientation sets the stacking axis (default Vertical).
func WithOrientation(o Orientation) Option {
	return func(v *View) { v.orientation = o }
}

// WithContentSizeSink registers the receiver of every computed content size.
func WithContentSizeSink(s ContentSizeSink) Option {
	return func(v *View) { v.sink = s }
}

// WithLogger sets the logger used for debug output of layout and draw
// passes.
func WithLogger(l *log.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewView creates an empty View. The first call to Layout always runs.
func NewView(opts ...Option) *View {
	v := &View{
		scale:       1,
		logger:      log.New(io.Discard),
		needsLayout: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// =============================================================================
// Configuration
// =============================================================================

// Adapter returns the attached adapter, or nil.
func (v *View) Adapter() Adapter { return v.adapter }

// SetAdapter attaches a (or detaches when nil) and invalidates the layout.
// The view does not extend the adapter's lifetime; callers detach it before
// discarding it.
func (v *View) SetAdapter(a Adapter) {
	v.adapter = a
	v.ReloadData()
}

// Padding returns the insets around the content.
func (v *View) Padding() geom.Insets { return v.padding }

// SetPadding sets the insets around the content and invalidates the layout.
func (v *View) SetPadding(p geom.Insets) {
	v.padding = p
	v.ReloadData()
}

// ClipRect returns the clip applied during drawing, if any.
func (v *View) ClipRect() (geom.Rect, bool) {
	if v.clipRect == nil {
		return geom.Rect{}, false
	}
	return *v.clipRect, true
}

// SetClipRect restricts drawing to r and requests a redraw.
func (v *View) SetClipRect(r geom.Rect) {
	v.clipRect = &r
	v.needsRedraw = true
}

// ClearClipRect removes the clip and requests a redraw.
func (v *View) ClearClipRect() {
	v.clipRect = nil
	v.needsRedraw = true
}

// SeparatorWidth returns the gap between adjacent rows.
func (v *View) SeparatorWidth() float64 { return v.separator }

// SetSeparatorWidth sets the gap between adjacent rows and requests a
// redraw. Negative widths are clamped to zero. The content size picks up
// the new gap on the next layout pass.
func (v *View) SetSeparatorWidth(w float64) {
	v.separator = max(w, 0)
	v.needsRedraw = true
}

// Scale returns the device pixels per unit.
func (v *View) Scale() float64 { return v.scale }

// Orientation returns the stacking axis.
func (v *View) Orientation() Orientation { return v.orientation }

// ReloadData invalidates the layout so the next Layout call queries the
// adapter again.
func (v *View) ReloadData() {
	v.needsLayout = true
}

// NeedsLayout reports whether a layout pass is pending.
func (v *View) NeedsLayout() bool { return v.needsLayout }

// NeedsRedraw reports whether a draw pass has been requested since the
// last one ran.
func (v *View) NeedsRedraw() bool { return v.needsRedraw }

// =============================================================================
// Layout State
// =============================================================================

// ContentSize returns the quantized size of the whole virtual content.
func (v *View) ContentSize() geom.Size { return v.contentSize }

// Rows returns the rows cached by the last layout pass, in adapter order.
// It is nil before the first pass and whenever no adapter is attached.
func (v *View) Rows() []Row { return v.rows }

// RowLength returns the measured length of row i.
func (v *View) RowLength(i int) (float64, bool) {
	if i < 0 || i >= len(v.lengths) {
		return 0, false
	}
	return v.lengths[i], true
}

// RowFrame returns the frame assigned to row i by the last draw pass.
// ok is false when the row has not been placed since the last layout.
func (v *View) RowFrame(i int) (geom.Rect, bool) {
	if i < 0 || i >= len(v.frames) || !v.placed[i] {
		return geom.Rect{}, false
	}
	return v.frames[i], true
}

// =============================================================================
// Layout Pass
// =============================================================================

// Layout measures every row for a viewport of the given size and reports
// whether a pass actually ran. Negative components are clamped to zero.
//
// The pass is skipped without touching the adapter when the layout has not
// been invalidated and size equals the size of the previous pass.
func (v *View) Layout(size geom.Size) bool {
	size = geom.Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	if !v.needsLayout && v.layoutSize == size {
		observability.Chart().OnLayoutSkipped()
		return false
	}

	start := time.Now()
	v.needsLayout = false
	v.layoutSize = size
	v.needsRedraw = true

	if v.adapter == nil {
		v.rows, v.lengths, v.frames, v.placed = nil, nil, nil, nil
		v.setContentSize(geom.Size{})
		v.logger.Debug("Layout without adapter", "size", size)
		observability.Chart().OnLayout(0, v.contentSize, time.Since(start))
		return true
	}

	o := v.orientation
	lengthLead, lengthTrail := o.lengthPadding(v.padding)
	stackLead, stackTrail := o.stackPadding(v.padding)
	visualRange := o.lengthExtent(size) - lengthLead - lengthTrail

	count := v.adapter.Count(v)
	rows := make([]Row, 0, count)
	lengths := make([]float64, 0, count)

	var maxLength, sumWidth float64
	for i := 0; i < count; i++ {
		row := v.adapter.RowAt(v, i)
		length := row.MeasureLength(visualRange)
		rows = append(rows, row)
		lengths = append(lengths, length)
		maxLength = max(maxLength, length)
		sumWidth += row.Width()
	}
	if count > 1 {
		sumWidth += float64(count-1) * v.separator
	}

	content := o.size(maxLength+lengthLead+lengthTrail, sumWidth+stackLead+stackTrail)
	content.Width = Quantize(content.Width, v.scale)
	content.Height = Quantize(content.Height, v.scale)

	v.rows = rows
	v.lengths = lengths
	v.frames = make([]geom.Rect, count)
	v.placed = make([]bool, count)
	v.setContentSize(content)

	v.logger.Debug("Layout", "rows", count, "size", size, "content", content)
	observability.Chart().OnLayout(count, content, time.Since(start))
	return true
}

func (v *View) setContentSize(s geom.Size) {
	v.contentSize = s
	if v.sink != nil {
		v.sink.SetContentSize(s)
	}
}
