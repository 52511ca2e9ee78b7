// Package config reads chart description files.
//
// A chart file is TOML. Top-level keys configure the view (scale,
// orientation, separator, padding, clip), [viewport] sets the default
// visible size, [transform] describes the padding/clip animation and each
// [[rows]] table becomes one bar series:
//
//	scale = 2
//	orientation = "vertical"
//	separator = 1
//
//	[padding]
//	top = 1
//	left = 2
//
//	[viewport]
//	width = 80
//	height = 20
//
//	[transform]
//	duration = "300ms"
//	easing = "ease-out"
//	[transform.padding]
//	from = { top = 0, left = 0, bottom = 0, right = 0 }
//	to   = { top = 2, left = 4, bottom = 2, right = 4 }
//
//	[[rows]]
//	label = "cpu"
//	width = 3
//	bar_length = 2
//	values = [0.2, 0.5, 0.9]
//	color = "#7D56F4"
//
// [Load] and [Parse] validate the file; [Chart.Build] turns it into a
// configured view and adapter.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wqcharts/bizchart/pkg/errors"
	"github.com/wqcharts/bizchart/pkg/geom"
)

// Defaults applied to zero values.
const (
	DefaultScale          = 1.0
	DefaultViewportWidth  = 80.0
	DefaultViewportHeight = 20.0
	DefaultDuration       = 300 * time.Millisecond
	DefaultEasing         = "ease-in-out"
)

// Chart is a parsed chart description.
type Chart struct {
	Scale       float64   `toml:"scale"`
	Orientation string    `toml:"orientation"`
	Separator   float64   `toml:"separator"`
	Padding     Insets    `toml:"padding"`
	Clip        *Rect     `toml:"clip"`
	Viewport    Size      `toml:"viewport"`
	Style       Style     `toml:"style"`
	Transform   Transform `toml:"transform"`
	Rows        []Row     `toml:"rows"`
}

// Insets mirrors geom.Insets with TOML keys.
type Insets struct {
	Top    float64 `toml:"top"`
	Left   float64 `toml:"left"`
	Bottom float64 `toml:"bottom"`
	Right  float64 `toml:"right"`
}

// Geom converts to geom.Insets.
func (in Insets) Geom() geom.Insets {
	return geom.Insets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
}

// Rect mirrors geom.Rect with TOML keys.
type Rect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Geom converts to geom.Rect.
func (r Rect) Geom() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Size mirrors geom.Size with TOML keys.
type Size struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Geom converts to geom.Size.
func (s Size) Geom() geom.Size { return geom.Size{Width: s.Width, Height: s.Height} }

// Style holds colors shared by every row.
type Style struct {
	Background string  `toml:"background"`
	Border     string  `toml:"border"`
	Label      string  `toml:"label"`
	Gap        float64 `toml:"gap"`
}

// Transform describes the padding and clip animation.
type Transform struct {
	Padding  *InsetsRange `toml:"padding"`
	Clip     *RectRange   `toml:"clip"`
	Duration Duration     `toml:"duration"`
	Easing   string       `toml:"easing"`
	Spring   *Spring      `toml:"spring"`
}

// IsZero reports whether no transform is configured.
func (t Transform) IsZero() bool { return t.Padding == nil && t.Clip == nil }

// InsetsRange is a padding transform.
type InsetsRange struct {
	From Insets `toml:"from"`
	To   Insets `toml:"to"`
}

// RectRange is a clip transform.
type RectRange struct {
	From Rect `toml:"from"`
	To   Rect `toml:"to"`
}

// Spring replaces the timed easing with a damped spring.
type Spring struct {
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

// Row is one bar series.
type Row struct {
	Label     string    `toml:"label"`
	Width     float64   `toml:"width"`
	BarLength float64   `toml:"bar_length"`
	Values    []float64 `toml:"values"`
	Color     string    `toml:"color"`
}

// Duration is a time.Duration written as a string ("300ms", "1.5s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Load reads and parses the chart file at path.
func Load(path string) (*Chart, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Read returns the raw bytes of the chart file at path. Callers that hash
// the file for caching read it once with Read and then Parse it.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, nil
}

// Parse decodes TOML, applies defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse chart")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	c.applyDefaults(md)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills unset fields. Zero durations are only replaced when
// the key is absent, so "0s" selects an instant transform.
func (c *Chart) applyDefaults(md toml.MetaData) {
	if c.Scale == 0 {
		c.Scale = DefaultScale
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = DefaultViewportWidth
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = DefaultViewportHeight
	}
	if !md.IsDefined("transform", "duration") {
		c.Transform.Duration.Duration = DefaultDuration
	}
	if c.Transform.Easing == "" {
		c.Transform.Easing = DefaultEasing
	}
}
