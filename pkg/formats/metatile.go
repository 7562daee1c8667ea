package formats

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Metatile layout constants.
const (
	TilesPerMetatile = 8
	MetatileBytes    = TilesPerMetatile * 2

	// PrimaryMetatileCount partitions the metatile id space: ids below it
	// belong to the primary tileset, ids at or above are secondary ids
	// rebased by subtracting it.
	PrimaryMetatileCount = 512

	// PrimaryTileCount partitions the tile index space between the primary
	// and secondary tile sheets the same way.
	PrimaryTileCount = 512
)

// Corner positions within a metatile layer.
const (
	TileTopLeft = iota
	TileTopRight
	TileBottomLeft
	TileBottomRight
)

// Metatile is a 16x16 composite of two stacked 2x2 layers of 8x8 tiles.
// Each layer is ordered TL, TR, BL, BR.
type Metatile struct {
	Bottom [4]TileReference
	Top    [4]TileReference
}

// ParseMetatiles decodes a metatile table. Each 16-byte record holds 8
// little-endian tile reference words: the bottom layer then the top layer,
// each TL, TR, BL, BR. A trailing partial record is ignored, so a truncated
// table simply yields fewer metatiles.
func ParseMetatiles(data []byte) []Metatile {
	count := len(data) / MetatileBytes
	metatiles := make([]Metatile, count)

	for i := 0; i < count; i++ {
		rec := data[i*MetatileBytes:]
		for j := 0; j < 4; j++ {
			metatiles[i].Bottom[j] = DecodeTileReference(binary.LittleEndian.Uint16(rec[j*2:]))
			metatiles[i].Top[j] = DecodeTileReference(binary.LittleEndian.Uint16(rec[8+j*2:]))
		}
	}

	return metatiles
}

// ParseMetatilesFile decodes a metatile table from disk.
func ParseMetatilesFile(path string) ([]Metatile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metatile table: %w", err)
	}
	return ParseMetatiles(data), nil
}

// ParseMetatileAttributes decodes a metatile attribute table: one opaque
// little-endian uint16 behavior word per metatile. The words are carried
// through untouched; rendering does not interpret them.
func ParseMetatileAttributes(data []byte) []uint16 {
	count := len(data) / 2
	attrs := make([]uint16, count)
	for i := 0; i < count; i++ {
		attrs[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return attrs
}

// ParseMetatileAttributesFile decodes a metatile attribute table from disk.
func ParseMetatileAttributesFile(path string) ([]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metatile attributes: %w", err)
	}
	return ParseMetatileAttributes(data), nil
}
