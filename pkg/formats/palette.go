package formats

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Palette format errors.
var (
	ErrInvalidPaletteMagic = errors.New("invalid palette magic: expected 'JASC-PAL'")
	ErrMalformedPalette    = errors.New("malformed palette")
)

// paletteMagic is the first line of a JASC-PAL file.
const paletteMagic = "JASC-PAL"

// ColorsPerPalette is the GBA palette size.
const ColorsPerPalette = 16

// RGB is one palette color.
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered list of palette colors. When used for tile or
// sprite rendering, index 0 is always transparent regardless of its stored
// color.
type Palette []RGB

// ParseJASCPalette parses a JASC-PAL text palette: a magic line, an unused
// version line, an integer color count, then one "R G B" decimal triple per
// color.
func ParseJASCPalette(data []byte) (Palette, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedPalette)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), paletteMagic) {
		return nil, ErrInvalidPaletteMagic
	}

	count, err := strconv.Atoi(strings.TrimSpace(lines[2]))
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad color count %q", ErrMalformedPalette, strings.TrimSpace(lines[2]))
	}
	if len(lines) < 3+count {
		return nil, fmt.Errorf("%w: declared %d colors, found %d lines", ErrMalformedPalette, count, len(lines)-3)
	}

	colors := make(Palette, 0, count)
	for i := 0; i < count; i++ {
		c, err := parseColorLine(lines[3+i])
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors = append(colors, c)
	}

	return colors, nil
}

// parseColorLine parses one "R G B" triple of 0-255 decimal components.
func parseColorLine(line string) (RGB, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("%w: expected 3 components, got %d", ErrMalformedPalette, len(fields))
	}

	var comps [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: bad component %q", ErrMalformedPalette, f)
		}
		comps[i] = uint8(v)
	}

	return RGB{R: comps[0], G: comps[1], B: comps[2]}, nil
}

// ParseJASCPaletteFile parses a JASC-PAL palette from disk.
func ParseJASCPaletteFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return ParseJASCPalette(data)
}
