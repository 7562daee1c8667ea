// Package formats provides parsers for the packed binary and text formats
// used by GBA decomp map data: tile references, metatile tables, metatile
// attributes, map blockdata and JASC-PAL palettes. All multi-byte values are
// little-endian.
package formats

// Tile reference bit layout within a 16-bit word.
const (
	tileIndexMask = 0x03FF // bits 0-9
	hflipBit      = 0x0400 // bit 10
	vflipBit      = 0x0800 // bit 11
	paletteShift  = 12     // bits 12-15
)

// MaxTileIndex is one past the largest encodable tile index.
const MaxTileIndex = 1024

// TileReference identifies one 8x8 tile within a tile sheet, together with
// the palette it is drawn with and its flip flags.
type TileReference struct {
	TileIndex uint16 // 0..1023
	Palette   uint8  // 0..15
	HFlip     bool
	VFlip     bool
}

// DecodeTileReference unpacks a tile reference word.
// Bits 0-9 are the tile index, bit 10 horizontal flip, bit 11 vertical flip
// and bits 12-15 the palette index. Fields are masked to their declared
// widths; decoding never fails.
func DecodeTileReference(v uint16) TileReference {
	return TileReference{
		TileIndex: v & tileIndexMask,
		Palette:   uint8(v >> paletteShift),
		HFlip:     v&hflipBit != 0,
		VFlip:     v&vflipBit != 0,
	}
}

// Encode packs the reference back into its 16-bit wire form, masking each
// field to its bit width.
func (t TileReference) Encode() uint16 {
	v := t.TileIndex & tileIndexMask
	if t.HFlip {
		v |= hflipBit
	}
	if t.VFlip {
		v |= vflipBit
	}
	v |= uint16(t.Palette&0x0F) << paletteShift
	return v
}
