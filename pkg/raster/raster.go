// Package raster converts vector documents into raster images.
//
// The default implementation rasterizes in-process by wrapping oksvg and
// rasterx, so no external converter binary is required.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/mapforge/mapforge/pkg/errors"
)

// Rasterizer converts an SVG document into pixel data. The scale factor
// multiplies the document's intrinsic size; 2.0 produces a 2x resolution
// image.
type Rasterizer interface {
	Raster(svg []byte, scale float64) (image.Image, error)
}

// SVG is the default oksvg/rasterx-backed Rasterizer.
type SVG struct{}

// New returns the default rasterizer.
func New() *SVG {
	return &SVG{}
}

// Raster renders the SVG document into an RGBA image.
func (s *SVG) Raster(svg []byte, scale float64) (image.Image, error) {
	if scale <= 0 {
		scale = 1.0
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "invalid vector document")
	}

	w := int(icon.ViewBox.W * scale)
	h := int(icon.ViewBox.H * scale)
	if w < 1 || h < 1 {
		return nil, errors.New(errors.ErrCodeRender, "zero-size canvas (%dx%d)", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return img, nil
}

// ToPNG rasterizes the SVG document and encodes it as PNG.
func ToPNG(r Rasterizer, svg []byte, scale float64) ([]byte, error) {
	img, err := r.Raster(svg, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encoding png")
	}
	return buf.Bytes(), nil
}

// WriteFile writes rendered bytes to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "writing %s", path)
	}
	return nil
}
