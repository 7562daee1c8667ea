// Package render composites decoded map data into RGBA rasters: single
// tiles, 16x16 metatiles, whole map canvases and object event overlays.
package render

import (
	"image"
	"image/color"

	"github.com/Faultbox/gbamap/pkg/formats"
)

// TileSize is the edge length of one tile in pixels.
const TileSize = 8

// markerColor flags out-of-range color indices. Decode bugs render opaque
// magenta instead of blending into legitimate transparency.
var markerColor = color.NRGBA{R: 255, B: 255, A: 255}

// RenderTile draws one 8x8 tile from the sheet with the referenced palette
// and flip flags applied. The sheet is addressed as a grid of 8x8 blocks,
// tilesAcross = sheetWidth/8. Degradations are never fatal:
//
//   - tile index outside the sheet: fully transparent tile
//   - palette index outside the loaded set: alpha-zero magenta tile
//   - color index 0: transparent pixel
//   - color index beyond the palette: opaque magenta marker pixel
func RenderTile(ref formats.TileReference, sheet *image.Paletted, palettes []formats.Palette) *image.NRGBA {
	tile := image.NewNRGBA(image.Rect(0, 0, TileSize, TileSize))

	bounds := sheet.Bounds()
	tilesAcross := bounds.Dx() / TileSize
	tilesDown := bounds.Dy() / TileSize
	if tilesAcross == 0 {
		return tile
	}

	col := int(ref.TileIndex) % tilesAcross
	row := int(ref.TileIndex) / tilesAcross
	if row >= tilesDown {
		return tile
	}

	if int(ref.Palette) >= len(palettes) || palettes[ref.Palette] == nil {
		// The whole tile is unrenderable; keep it invisible but carry the
		// marker in the color channels for inspection.
		fill(tile, color.NRGBA{R: 255, B: 255})
		return tile
	}
	pal := palettes[ref.Palette]

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			ci := sheet.ColorIndexAt(bounds.Min.X+col*TileSize+x, bounds.Min.Y+row*TileSize+y)
			if ci == 0 {
				continue
			}

			dx, dy := x, y
			if ref.HFlip {
				dx = TileSize - 1 - x
			}
			if ref.VFlip {
				dy = TileSize - 1 - y
			}

			if int(ci) < formats.ColorsPerPalette && int(ci) < len(pal) {
				c := pal[ci]
				tile.SetNRGBA(dx, dy, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			} else {
				tile.SetNRGBA(dx, dy, markerColor)
			}
		}
	}

	return tile
}

// fill sets every pixel of img to c.
func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
