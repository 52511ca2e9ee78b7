package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wqcharts/bizchart/pkg/buildinfo"
	"github.com/wqcharts/bizchart/pkg/cache"
	"github.com/wqcharts/bizchart/pkg/config"
	"github.com/wqcharts/bizchart/pkg/errors"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "pdf", "png"
	offsetX  float64  // scroll offset along X
	offsetY  float64  // scroll offset along Y
	width    float64  // viewport width, 0 uses the chart's
	height   float64  // viewport height, 0 uses the chart's
	progress float64  // transform progress, used when set on the command line
	noCache  bool     // bypass the artifact cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render the visible part of a chart to SVG, PNG, or PDF",
		Long: `Render lays out a chart file at the viewport size and draws the rows visible
at the given scroll offset. Offsets outside the content are drawn the way an
overscrolling viewer shows them: pinned to the content edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidatePath(opts.output); err != nil {
					return err
				}
			}
			if err := errors.ValidateNonNegative("width", opts.width); err != nil {
				return err
			}
			if err := errors.ValidateNonNegative("height", opts.height); err != nil {
				return err
			}
			frame := frameOpts{}
			frame.offset.X, frame.offset.Y = opts.offsetX, opts.offsetY
			frame.viewport.Width, frame.viewport.Height = opts.width, opts.height
			if cmd.Flags().Changed("progress") {
				frame.progress = &opts.progress
			}
			return runRender(cmd.Context(), args[0], &opts, frame)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.offsetX, "offset-x", 0, "horizontal scroll offset")
	cmd.Flags().Float64Var(&opts.offsetY, "offset-y", 0, "vertical scroll offset")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (default from chart file)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height (default from chart file)")
	cmd.Flags().Float64Var(&opts.progress, "progress", 0, "apply the chart's transform at this progress (0-1, may overshoot)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, .png), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file to write format to.
func outputPath(opts *renderOpts, input, format string) string {
	if opts.output != "" && len(opts.formats) == 1 {
		return opts.output
	}
	return basePath(opts.output, input) + "." + format
}

// runRender loads the chart, draws it once and writes every requested format.
// Artifacts are looked up in the cache first; the SVG is only drawn when
// some format misses.
func runRender(ctx context.Context, input string, opts *renderOpts, frame frameOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := config.Read(input)
	if err != nil {
		return err
	}
	ch, err := config.Parse(raw)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d rows", input, len(ch.Rows))

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheKey()+":")
	chartHash := cache.Hash(raw)

	var doc []byte
	for _, format := range opts.formats {
		key := keyer.ArtifactKey(chartHash, frame.keyOpts(ch, format))
		data, hit, err := artifact(ctx, store, key, format, logger, func() ([]byte, error) {
			if doc == nil {
				doc = drawSVG(ch, logger, frame)
			}
			return encode(doc, format)
		})
		if err != nil {
			return err
		}

		path := outputPath(opts, input, format)
		if err := writeOutput(path, data); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes (cached=%v)", path, len(data), hit)
		printFile(path)
		printStats(len(data), hit)
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	return nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
