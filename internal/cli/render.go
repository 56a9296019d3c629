package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mapforge/mapforge/pkg/errors"
	"github.com/mapforge/mapforge/pkg/pipeline"
	"github.com/mapforge/mapforge/pkg/raster"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output image path (or base path for multiple formats)
	formats string  // comma-separated output formats: "svg", "png"
	scale   float64 // raster scale factor
	noCache bool    // disable the artifact cache
	refresh bool    // bypass cache reads, recompute everything
}

// renderCommand creates the render command, the main conversion entry
// point: map files in, image out.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [flags] FILE...",
		Short: "Render map annotation files to an image",
		Long: `Render one or more map annotation files into a single image.

Items are drawn in input order (later files and lines draw on top), inside
a canvas sized to the bounding box of all coordinates. The output format is
taken from the output path extension unless --format is given.`,
		Example: `  mapforge render -o map.png zone.txt
  mapforge render -o map.png --format svg,png overlay1.txt overlay2.txt
  mapforge render -o map.png --scale 4 zone.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "map.png", "output image path")
	cmd.Flags().StringVar(&opts.formats, "format", "", "comma-separated output formats (svg, png)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor (default from config, 2.0)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	formats, err := c.resolveFormats(opts.formats, opts.output)
	if err != nil {
		return err
	}
	scale := opts.scale
	if scale == 0 {
		scale = c.Config.Scale
	}

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %d file(s)...", len(args)))
	spinner.Start()

	runner := c.newRunner(opts.noCache)
	result, err := runner.Execute(cmd.Context(), pipeline.Options{
		Paths:   args,
		Formats: formats,
		Scale:   scale,
		Refresh: opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		printError("Render failed: %s", errors.UserMessage(err))
		return err
	}

	for _, format := range formats {
		path := outputPath(opts.output, format, len(formats) > 1)
		if err := raster.WriteFile(path, result.Artifacts[format]); err != nil {
			printError("Write failed: %s", errors.UserMessage(err))
			return err
		}
		printFile(path)
	}

	printSuccess("Rendered %d item(s)", result.Stats.Items)
	printStats(result.Stats.Points, result.Stats.Lines, result.CacheHit)
	return nil
}

// resolveFormats resolves the output formats from the --format flag, the
// config file, or the output path extension, in that order.
func (c *CLI) resolveFormats(flag, output string) ([]string, error) {
	if flag != "" {
		return splitFormats(flag), nil
	}
	if len(c.Config.Formats) > 0 {
		return c.Config.Formats, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "" {
		return []string{pipeline.FormatPNG}, nil
	}
	if !pipeline.ValidFormats[ext] {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from extension %q", ext)
	}
	return []string{ext}, nil
}

func splitFormats(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// outputPath swaps the extension of base when writing multiple formats.
func outputPath(base, format string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + format
}
