package formats

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// Blockdata cell bit layout.
const (
	metatileIDMask = 0x03FF // bits 0-9
	collisionShift = 10     // bits 10-11
	collisionMask  = 0x03
	elevationShift = 12 // bits 12-15
)

// ErrInvalidGridSize reports non-positive map dimensions.
var ErrInvalidGridSize = errors.New("invalid map grid dimensions")

// MapCell is one decoded blockdata cell. Collision and elevation are
// retained for collaborators that need them; rendering only consumes the
// metatile id.
type MapCell struct {
	MetatileID uint16 // 0..1023
	Collision  uint8  // 0..3
	Elevation  uint8  // 0..15
}

// MapGrid is a decoded height x width grid of blockdata cells, row-major.
type MapGrid struct {
	Width  int
	Height int
	Cells  []MapCell

	// Truncated is set when the input was shorter than width*height*2
	// bytes and the missing tail was padded with zero cells.
	Truncated bool
}

// Cell returns the cell at (x, y). Out-of-bounds coordinates yield a zero
// cell.
func (g *MapGrid) Cell(x, y int) MapCell {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return MapCell{}
	}
	return g.Cells[y*g.Width+x]
}

// MetatileID returns the metatile id at (x, y).
func (g *MapGrid) MetatileID(x, y int) uint16 {
	return g.Cell(x, y).MetatileID
}

// ParseBlockdata decodes map blockdata into a width x height grid. Each
// little-endian uint16 cell holds the metatile id in bits 0-9, collision in
// bits 10-11 and elevation in bits 12-15. A short buffer is padded with zero
// cells (and the grid marked Truncated); excess bytes are ignored.
func ParseBlockdata(data []byte, width, height int) (*MapGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, width, height)
	}

	grid := &MapGrid{
		Width:  width,
		Height: height,
		Cells:  make([]MapCell, width*height),
	}

	expected := width * height * 2
	if len(data) < expected {
		grid.Truncated = true
	}

	for i := range grid.Cells {
		offset := i * 2
		if offset+2 > len(data) {
			break // remaining cells stay zero
		}
		v := binary.LittleEndian.Uint16(data[offset:])
		grid.Cells[i] = MapCell{
			MetatileID: v & metatileIDMask,
			Collision:  uint8(v>>collisionShift) & collisionMask,
			Elevation:  uint8(v >> elevationShift),
		}
	}

	return grid, nil
}

// ParseBlockdataFile decodes map blockdata from disk.
func ParseBlockdataFile(path string, width, height int) (*MapGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blockdata: %w", err)
	}
	return ParseBlockdata(data, width, height)
}
