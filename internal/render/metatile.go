package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/gbamap/internal/tileset"
	"github.com/Faultbox/gbamap/pkg/formats"
)

// MetatileSize is the edge length of one metatile in pixels.
const MetatileSize = 16

// tileOffsets places a layer's 4 tiles: TL, TR, BL, BR.
var tileOffsets = [4]image.Point{{0, 0}, {TileSize, 0}, {0, TileSize}, {TileSize, TileSize}}

// RenderMetatile composites one metatile's 8 tile references into a 16x16
// raster. The bottom layer is drawn first, the top layer source-over it.
// A tile that cannot be resolved contributes nothing; the metatile never
// fails as a whole.
func RenderMetatile(mt formats.Metatile, primary, secondary *tileset.Tileset) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, MetatileSize, MetatileSize))

	for _, layer := range [2][4]formats.TileReference{mt.Bottom, mt.Top} {
		for i, ref := range layer {
			tile := renderLayerTile(ref, primary, secondary)
			if tile == nil {
				continue
			}
			off := tileOffsets[i]
			draw.Draw(canvas,
				image.Rect(off.X, off.Y, off.X+TileSize, off.Y+TileSize),
				tile, image.Point{}, draw.Over)
		}
	}

	return canvas
}

// renderLayerTile selects the source tileset by the tile index partition:
// indices below 512 read the primary sheet, the rest read the secondary
// sheet at the rebased index.
func renderLayerTile(ref formats.TileReference, primary, secondary *tileset.Tileset) *image.NRGBA {
	if ref.TileIndex < formats.PrimaryTileCount {
		if primary == nil {
			return nil
		}
		return RenderTile(ref, primary.Sheet, primary.Palettes)
	}

	if secondary == nil {
		return nil
	}
	rebased := ref
	rebased.TileIndex -= formats.PrimaryTileCount
	return RenderTile(rebased, secondary.Sheet, secondary.Palettes)
}
