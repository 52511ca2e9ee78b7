package config

import (
	"fmt"

	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/errors"
)

// Validate checks every field. The first problem found is returned as an
// INVALID_CONFIG (or INVALID_COLOR) error naming the field.
func (c *Chart) Validate() error {
	if err := errors.ValidateFinite("scale", c.Scale); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive (got %g)", c.Scale)
	}
	if _, err := chart.ParseOrientation(c.Orientation); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "orientation")
	}
	if err := errors.ValidateNonNegative("separator", c.Separator); err != nil {
		return err
	}
	if err := validateInsets("padding", c.Padding); err != nil {
		return err
	}
	if c.Clip != nil {
		if err := validateRect("clip", *c.Clip); err != nil {
			return err
		}
	}
	if err := errors.ValidateNonNegative("viewport.width", c.Viewport.Width); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("viewport.height", c.Viewport.Height); err != nil {
		return err
	}
	if err := c.Style.validate(); err != nil {
		return err
	}
	if err := c.Transform.validate(); err != nil {
		return err
	}
	for i, r := range c.Rows {
		if err := r.validate(fmt.Sprintf("rows[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (s Style) validate() error {
	colors := []struct{ field, color string }{
		{"style.background", s.Background},
		{"style.border", s.Border},
		{"style.label", s.Label},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s", c.field)
		}
	}
	return errors.ValidateNonNegative("style.gap", s.Gap)
}

func (t Transform) validate() error {
	if t.Padding != nil {
		if err := validateInsets("transform.padding.from", t.Padding.From); err != nil {
			return err
		}
		if err := validateInsets("transform.padding.to", t.Padding.To); err != nil {
			return err
		}
	}
	if t.Clip != nil {
		if err := validateRect("transform.clip.from", t.Clip.From); err != nil {
			return err
		}
		if err := validateRect("transform.clip.to", t.Clip.To); err != nil {
			return err
		}
	}
	if t.Duration.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "transform.duration must not be negative")
	}
	if _, ok := easings[t.Easing]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown transform.easing %q", t.Easing)
	}
	if t.Spring != nil {
		if t.Spring.Frequency <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "transform.spring.frequency must be positive")
		}
		if err := errors.ValidateFinite("transform.spring.damping", t.Spring.Damping); err != nil {
			return err
		}
		// An undamped spring oscillates forever and never finishes.
		if t.Spring.Damping <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "transform.spring.damping must be positive")
		}
	}
	return nil
}

func (r Row) validate(field string) error {
	if err := errors.ValidateFinite(field+".width", r.Width); err != nil {
		return err
	}
	if r.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s.width must be positive", field)
	}
	if err := errors.ValidateNonNegative(field+".bar_length", r.BarLength); err != nil {
		return err
	}
	for i, v := range r.Values {
		if err := errors.ValidateFinite(fmt.Sprintf("%s.values[%d]", field, i), v); err != nil {
			return err
		}
	}
	if err := errors.ValidateColor(r.Color); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s.color", field)
	}
	return nil
}

func validateInsets(field string, in Insets) error {
	sides := []struct {
		name string
		v    float64
	}{{"top", in.Top}, {"left", in.Left}, {"bottom", in.Bottom}, {"right", in.Right}}
	for _, s := range sides {
		if err := errors.ValidateFinite(field+"."+s.name, s.v); err != nil {
			return err
		}
	}
	return nil
}

func validateRect(field string, r Rect) error {
	if err := errors.ValidateFinite(field+".x", r.X); err != nil {
		return err
	}
	if err := errors.ValidateFinite(field+".y", r.Y); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(field+".width", r.Width); err != nil {
		return err
	}
	return errors.ValidateNonNegative(field+".height", r.Height)
}
