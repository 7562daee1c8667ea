package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/gbamap/internal/tileset"
	"github.com/Faultbox/gbamap/pkg/formats"
)

// RenderMap stitches per-cell metatile rasters into the full map image.
// The canvas is exactly width*16 x height*16 pixels; cells whose metatile
// id falls outside both tilesets stay fully transparent.
func RenderMap(grid *formats.MapGrid, primary, secondary *tileset.Tileset) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, grid.Width*MetatileSize, grid.Height*MetatileSize))

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			mt, ok := lookupMetatile(grid.MetatileID(x, y), primary, secondary)
			if !ok {
				continue
			}

			cell := RenderMetatile(mt, primary, secondary)
			draw.Draw(canvas,
				image.Rect(x*MetatileSize, y*MetatileSize, (x+1)*MetatileSize, (y+1)*MetatileSize),
				cell, image.Point{}, draw.Src)
		}
	}

	return canvas
}

// lookupMetatile resolves a metatile id through the partitioned id space:
// ids below 512 index the primary table, ids from 512 index the secondary
// table rebased by -512. Ids outside either table report false.
func lookupMetatile(id uint16, primary, secondary *tileset.Tileset) (formats.Metatile, bool) {
	if id < formats.PrimaryMetatileCount {
		if primary != nil && int(id) < len(primary.Metatiles) {
			return primary.Metatiles[id], true
		}
		return formats.Metatile{}, false
	}

	rebased := int(id) - formats.PrimaryMetatileCount
	if secondary != nil && rebased < len(secondary.Metatiles) {
		return secondary.Metatiles[rebased], true
	}
	return formats.Metatile{}, false
}

// Upscale returns img scaled up by an integer factor using nearest
// neighbor, preserving hard pixel edges. Factors below 2 return img
// unchanged.
func Upscale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}

	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
