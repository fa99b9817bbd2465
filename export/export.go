// Package export renders a heightfield into raster images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"ProceduralTerrainGen/heightfield"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format string

const (
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatTIFF, "tif":
		return FormatTIFF, nil
	case FormatBMP:
		return FormatBMP, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// Heightmap maps elevations linearly onto 16-bit gray, lowest vertex black
// and highest white. One pixel per vertex, row 0 at the top.
func Heightmap(f *heightfield.Field) *image.Gray16 {
	g := f.Grid
	img := image.NewGray16(image.Rect(0, 0, g.Columns(), g.Rows()))
	if f.Len() == 0 {
		return img
	}
	lo, hi := f.Elevations[0], f.Elevations[0]
	for _, e := range f.Elevations {
		lo, hi = min(lo, e), max(hi, e)
	}
	span := hi - lo
	for i, e := range f.Elevations {
		var v uint16
		if span > 0 {
			v = uint16((e - lo) / span * 0xffff)
		}
		img.SetGray16(i%g.Columns(), i/g.Columns(), color.Gray16{Y: v})
	}
	return img
}

// Colormap paints each vertex with its biome color.
func Colormap(f *heightfield.Field) *image.RGBA {
	g := f.Grid
	img := image.NewRGBA(image.Rect(0, 0, g.Columns(), g.Rows()))
	for i, c := range f.Colors {
		r, gr, b := c.RGBA8()
		img.SetRGBA(i%g.Columns(), i/g.Columns(), color.RGBA{R: r, G: gr, B: b, A: 0xff})
	}
	return img
}

// Encode writes img to w.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}
