package config

import (
	"github.com/wqcharts/bizchart/pkg/animation"
	"github.com/wqcharts/bizchart/pkg/bars"
	"github.com/wqcharts/bizchart/pkg/chart"
)

var easings = map[string]animation.Easing{
	"linear":      animation.Linear,
	"ease-in-out": animation.EaseInOut,
	"ease-out":    animation.EaseOut,
}

// Series converts the rows to bar series.
func (c *Chart) Series() []bars.Series {
	series := make([]bars.Series, len(c.Rows))
	for i, r := range c.Rows {
		series[i] = bars.Series{
			Label:     r.Label,
			Width:     r.Width,
			Values:    r.Values,
			BarLength: r.BarLength,
			Color:     r.Color,
		}
	}
	return series
}

// Adapter creates a bar adapter for the rows and style.
func (c *Chart) Adapter() *bars.Adapter {
	return bars.New(c.Series(),
		bars.WithBackground(c.Style.Background),
		bars.WithBorder(c.Style.Border),
		bars.WithLabelColor(c.Style.Label),
		bars.WithGap(c.Style.Gap),
	)
}

// Build returns a view configured from c with a bar adapter attached.
// opts are applied after the options derived from the file, so callers can
// add a logger or content-size sink.
func (c *Chart) Build(opts ...chart.Option) (*chart.View, *bars.Adapter) {
	orientation, _ := chart.ParseOrientation(c.Orientation)
	v := chart.NewView(append([]chart.Option{
		chart.WithScale(c.Scale),
		chart.WithOrientation(orientation),
	}, opts...)...)

	v.SetPadding(c.Padding.Geom())
	v.SetSeparatorWidth(c.Separator)
	if c.Clip != nil {
		v.SetClipRect(c.Clip.Geom())
	}
	if t := c.Transform.Padding; t != nil {
		v.SetTransformPadding(chart.InsetsTransform{From: t.From.Geom(), To: t.To.Geom()})
	}
	if t := c.Transform.Clip; t != nil {
		v.SetTransformClipRect(chart.RectTransform{From: t.From.Geom(), To: t.To.Geom()})
	}

	a := c.Adapter()
	v.SetAdapter(a)
	return v, a
}

// Source returns a fresh progress source for the transform. With reverse
// set the timed source runs from 1 to 0 and the spring from 1 to 0.
func (t Transform) Source(reverse bool) animation.Source {
	if t.Spring != nil {
		if reverse {
			return animation.NewSpringBetween(1, 0, t.Spring.Frequency, t.Spring.Damping)
		}
		return animation.NewSpring(t.Spring.Frequency, t.Spring.Damping)
	}
	return &animation.Timed{
		Duration: t.Duration.Duration,
		Easing:   easings[t.Easing],
		Reverse:  reverse,
	}
}
