// Package pipeline provides the core conversion pipeline for mapforge.
//
// The pipeline turns map annotation files into rendered artifacts in three
// stages:
//
//  1. Load: parse and aggregate map files into the item model
//  2. Build: compute the bounding box and emit the vector document
//  3. Render: rasterize the vector document into the requested formats
//
// CLI and serve mode both run through the same Runner so that caching and
// logging behave identically at every entry point.
//
// Usage:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Paths:   []string{"zone.txt"},
//	    Formats: []string{pipeline.FormatPNG},
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts[pipeline.FormatPNG]
package pipeline

import (
	"slices"

	"github.com/mapforge/mapforge/pkg/errors"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// Defaults applied by ValidateAndSetDefaults.
const (
	// DefaultScale is the raster scale factor (2.0 for 2x resolution).
	DefaultScale = 2.0
)

// Options configures a pipeline run.
type Options struct {
	// Paths are the input map files, in draw order.
	Paths []string

	// Formats are the artifact formats to produce. Defaults to png.
	Formats []string

	// Scale multiplies the raster resolution. Ignored for svg output.
	Scale float64

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Paths) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no input files")
	}
	return o.validateRender()
}

// validateRender checks the render-stage options and fills in defaults.
// Paths are not required; serve mode renders pre-loaded items.
func (o *Options) validateRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return nil
}

// needsRaster reports whether any requested format requires rasterization.
func (o *Options) needsRaster() bool {
	return slices.Contains(o.Formats, FormatPNG)
}
