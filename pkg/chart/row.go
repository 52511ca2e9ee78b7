package chart

// Row describes one layout slot. Width is the fixed thickness of the row
// across the stacking axis; the length along the other axis is measured
// during layout.
type Row interface {
	// Width returns the row's cross size.
	Width() float64

	// MeasureLength returns the row's length for the extent left after
	// padding. Implementations must not return a negative length.
	MeasureLength(visualRange float64) float64
}

// DistributionPath is the opaque result of distributing a row over the
// visible range. Only the adapter that created the row interprets it.
type DistributionPath any

// DistributionRow is a Row that can map the visible range onto its
// sub-elements.
type DistributionRow interface {
	Row

	// Distribute maps [lowerBound, upperBound], measured from the start of
	// the row's content, to a path the adapter uses to place ticks or bars.
	Distribute(lowerBound, upperBound float64) DistributionPath
}

// BasicRow is a Row whose length always fills the available extent.
type BasicRow struct {
	width float64
}

// NewRow creates a BasicRow with the given cross size.
func NewRow(width float64) BasicRow {
	return BasicRow{width: width}
}

// Width returns the cross size.
func (r BasicRow) Width() float64 { return r.width }

// MeasureLength returns visualRange.
func (r BasicRow) MeasureLength(visualRange float64) float64 { return visualRange }
