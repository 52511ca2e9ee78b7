package chart

import (
	"fmt"

	"github.com/wqcharts/bizchart/pkg/geom"
)

// Orientation selects the axis rows stack along.
type Orientation int

const (
	// Vertical stacks rows from top to bottom; row lengths run along X.
	Vertical Orientation = iota
	// Horizontal stacks rows from left to right; row lengths run along Y.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation converts a name produced by Orientation.String.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return Vertical, fmt.Errorf("unknown orientation: %q", s)
	}
}

// The helpers below project geometry onto the length axis (along a row)
// and the stack axis (across rows).

func (o Orientation) lengthExtent(s geom.Size) float64 {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}

func (o Orientation) lengthPadding(in geom.Insets) (lead, trail float64) {
	if o == Horizontal {
		return in.Top, in.Bottom
	}
	return in.Left, in.Right
}

func (o Orientation) stackPadding(in geom.Insets) (lead, trail float64) {
	if o == Horizontal {
		return in.Left, in.Right
	}
	return in.Top, in.Bottom
}

func (o Orientation) lengthSpan(r geom.Rect) (start, extent float64) {
	if o == Horizontal {
		return r.Y, r.Height
	}
	return r.X, r.Width
}

func (o Orientation) size(length, stack float64) geom.Size {
	if o == Horizontal {
		return geom.Size{Width: stack, Height: length}
	}
	return geom.Size{Width: length, Height: stack}
}

func (o Orientation) rect(lengthOrigin, stackOrigin, length, width float64) geom.Rect {
	if o == Horizontal {
		return geom.Rect{X: stackOrigin, Y: lengthOrigin, Width: width, Height: length}
	}
	return geom.Rect{X: lengthOrigin, Y: stackOrigin, Width: length, Height: width}
}
