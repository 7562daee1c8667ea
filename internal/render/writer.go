package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// WritePNG encodes img to path. With indexed set the image is first
// quantized to a 256-color paletted image, which encodes considerably
// smaller for tile-derived content.
func WritePNG(path string, img image.Image, indexed bool) error {
	if indexed {
		img = quantized(img)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// quantized reduces img to a paletted image with at most 256 colors,
// reserving a transparent entry so uncomposited regions survive.
func quantized(img image.Image) *image.Paletted {
	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pal := q.Quantize(make(color.Palette, 0, 256), img)

	dst := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
