// Package tileset loads and caches decoded tileset bundles: one indexed
// tile sheet, up to 16 palettes, a metatile table and per-metatile attribute
// words.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/gbamap/internal/logger"
	"github.com/Faultbox/gbamap/pkg/formats"
)

// Tileset load errors.
var (
	ErrMissingAsset = errors.New("tileset not present in path table")
	ErrNotIndexed   = errors.New("tile sheet is not an indexed-color image")
)

// PaletteSlots is the number of palette files per tileset (00.pal-15.pal).
const PaletteSlots = 16

// PathResolver maps a tileset name to its tile sheet path.
type PathResolver interface {
	Resolve(name string) (string, bool)
}

// Tileset is a fully decoded tileset bundle. It is immutable after load and
// safe to share across concurrent map workers.
type Tileset struct {
	Name       string
	Sheet      *image.Paletted    // indexed tile sheet, tiles addressed as an 8x8 grid
	Palettes   []formats.Palette  // indexed by palette number; nil slot = missing file
	Metatiles  []formats.Metatile // ordered metatile table
	Attributes []uint16           // opaque behavior words, carried through untouched
}

// TilesAcross returns the number of 8x8 tiles per sheet row.
func (t *Tileset) TilesAcross() int {
	return t.Sheet.Bounds().Dx() / 8
}

// TileCount returns the number of 8x8 tiles in the sheet.
func (t *Tileset) TileCount() int {
	return t.TilesAcross() * (t.Sheet.Bounds().Dy() / 8)
}

// Load decodes the tileset bundle for name. The tile sheet path comes from
// the resolver; palettes, metatiles.bin and metatile_attributes.bin are
// found relative to it. Shared tileset data may live one directory up
// (e.g. the secret base variants), so metatiles.bin falls back to the
// parent directory.
func Load(name string, resolver PathResolver) (*Tileset, error) {
	sheetPath, ok := resolver.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, name)
	}

	sheet, err := loadSheet(sheetPath)
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", name, err)
	}

	tilesDir := filepath.Dir(sheetPath)

	metatilesPath := filepath.Join(tilesDir, "metatiles.bin")
	if _, err := os.Stat(metatilesPath); err != nil {
		metatilesPath = filepath.Join(filepath.Dir(tilesDir), "metatiles.bin")
	}
	metatiles, err := formats.ParseMetatilesFile(metatilesPath)
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", name, err)
	}

	attrs, err := formats.ParseMetatileAttributesFile(filepath.Join(filepath.Dir(metatilesPath), "metatile_attributes.bin"))
	if err != nil {
		logger.Warn("tileset has no attribute table", zap.String("tileset", name), zap.Error(err))
		attrs = nil
	}

	palettes, err := loadPaletteSet(name, filepath.Join(tilesDir, "palettes"))
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", name, err)
	}

	return &Tileset{
		Name:       name,
		Sheet:      sheet,
		Palettes:   palettes,
		Metatiles:  metatiles,
		Attributes: attrs,
	}, nil
}

// loadSheet decodes the indexed tile sheet PNG.
func loadSheet(path string) (*image.Paletted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tile sheet: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding tile sheet: %w", err)
	}

	sheet, ok := img.(*image.Paletted)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotIndexed, path)
	}
	return sheet, nil
}

// loadPaletteSet reads the 16 numbered palette files. A missing file
// leaves a nil slot and a warning; lookups on that slot degrade at render
// time. A file that exists but does not parse fails the whole load, since
// no tile drawn with that palette could be trusted.
func loadPaletteSet(name, dir string) ([]formats.Palette, error) {
	palettes := make([]formats.Palette, PaletteSlots)
	missing := 0

	for i := 0; i < PaletteSlots; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%02d.pal", i))
		if _, err := os.Stat(path); err != nil {
			path = filepath.Join(dir, fmt.Sprintf("%d.pal", i))
			if _, err := os.Stat(path); err != nil {
				missing++
				logger.Debug("palette slot unavailable",
					zap.String("tileset", name), zap.Int("slot", i))
				continue
			}
		}

		pal, err := formats.ParseJASCPaletteFile(path)
		if err != nil {
			return nil, fmt.Errorf("palette %02d: %w", i, err)
		}
		palettes[i] = pal
	}

	if missing > 0 {
		logger.Warn("tileset palette set is partial",
			zap.String("tileset", name), zap.Int("missing", missing))
	}

	return palettes, nil
}
