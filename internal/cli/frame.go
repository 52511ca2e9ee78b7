package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/wqcharts/bizchart/pkg/cache"
	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/config"
	"github.com/wqcharts/bizchart/pkg/errors"
	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/observability"
	"github.com/wqcharts/bizchart/pkg/render"
	"github.com/wqcharts/bizchart/pkg/render/svg"
)

// Output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true}

// frameOpts selects the part of a chart to draw. render and serve share it.
type frameOpts struct {
	offset   geom.Point
	viewport geom.Size // zero uses the chart's [viewport]
	progress *float64  // nil draws without applying the transform
}

// size returns the viewport, falling back to the chart's.
func (o frameOpts) size(ch *config.Chart) geom.Size {
	s := ch.Viewport.Geom()
	if o.viewport.Width > 0 {
		s.Width = o.viewport.Width
	}
	if o.viewport.Height > 0 {
		s.Height = o.viewport.Height
	}
	return s
}

// keyOpts returns the cache key options for format.
func (o frameOpts) keyOpts(ch *config.Chart, format string) cache.ArtifactKeyOpts {
	s := o.size(ch)
	k := cache.ArtifactKeyOpts{
		Format: format,
		X:      o.offset.X,
		Y:      o.offset.Y,
		Width:  s.Width,
		Height: s.Height,
	}
	if o.progress != nil {
		// Shifted so that "no transform" and progress 0 get different keys.
		k.Progress = *o.progress + 1
	}
	return k
}

// drawSVG lays out ch at the viewport and draws the visible part as SVG.
func drawSVG(ch *config.Chart, logger *log.Logger, opts frameOpts) []byte {
	v, _ := ch.Build(chart.WithLogger(logger))
	if opts.progress != nil {
		v.NextTransform(*opts.progress)
	}

	size := opts.size(ch)
	v.Layout(size)

	bounds := geom.NewRect(opts.offset, size)
	c := svg.New(bounds,
		svg.WithPixelScale(svgUnitPixels*ch.Scale),
		svg.WithFontSize(svgFontSize),
	)
	v.Draw(c, bounds)
	return c.Bytes()
}

// encode converts an SVG document to format.
func encode(doc []byte, format string) ([]byte, error) {
	switch format {
	case formatSVG:
		return doc, nil
	case formatPNG:
		return render.ToPNG(doc, 1)
	case formatPDF:
		return render.ToPDF(doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", format)
	}
}

// contentType returns the MIME type for format.
func contentType(format string) string {
	switch format {
	case formatPNG:
		return "image/png"
	case formatPDF:
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

// artifact returns the cached bytes for key or produces, caches and returns
// them. Cache failures are logged and otherwise ignored.
func artifact(ctx context.Context, store cache.Cache, key, format string, logger *log.Logger, produce func() ([]byte, error)) ([]byte, bool, error) {
	hooks := observability.Cache()
	data, hit, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", err)
	}
	if hit {
		hooks.OnCacheHit(ctx, format)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, format)

	if data, err = produce(); err != nil {
		return nil, false, err
	}
	if err := store.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}
