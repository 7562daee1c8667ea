package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// TilesetPaths maps a tileset name (with the gTileset_ prefix stripped) to
// its tile sheet PNG path.
type TilesetPaths map[string]string

// Resolve returns the tile sheet path for a gTileset_* name. The lookup is
// pure; the table is never mutated after construction.
func (p TilesetPaths) Resolve(name string) (string, bool) {
	path, ok := p[strings.TrimPrefix(name, "gTileset_")]
	return path, ok
}

var (
	tilesetTilesPattern  = regexp.MustCompile(`gTilesetTiles_(\w+)\s*\[\]\s*=\s*INCBIN_U\d+\("([^"]+)"\)`)
	tilesetHeaderPattern = regexp.MustCompile(`gTileset_(\w+)\s*=\s*\{[^}]*?\.tiles\s*=\s*gTilesetTiles_(\w+)`)
)

// BuildTilesetPaths scans the project's graphics headers and builds the
// tileset name table. Two-step resolution: gTilesetTiles_{X} INCBIN entries
// give the raw paths, then headers.h maps gTileset_{Name} to its tiles
// symbol so that aliased names (e.g. Building -> InsideBuilding) resolve.
func BuildTilesetPaths(baseDir string) TilesetPaths {
	sources := []string{
		filepath.Join(baseDir, "src", "data", "tilesets", "graphics.h"),
		filepath.Join(baseDir, "src", "graphics.c"),
	}

	tilesMap := make(map[string]string)
	for _, src := range sources {
		text, err := os.ReadFile(src)
		if err != nil {
			continue
		}
		for _, m := range tilesetTilesPattern.FindAllStringSubmatch(string(text), -1) {
			tilesName, rawPath := m[1], m[2]
			if strings.HasSuffix(tilesName, "Compressed") || strings.Contains(strings.ToLower(tilesName), "unknown") {
				continue
			}
			if strings.Contains(rawPath, "unused_tiles") || strings.Contains(rawPath, "unknown_tiles") {
				continue
			}
			tilesMap[tilesName] = filepath.Join(baseDir, incbinToPNG(rawPath))
		}
	}

	result := make(TilesetPaths)
	headers, err := os.ReadFile(filepath.Join(baseDir, "src", "data", "tilesets", "headers.h"))
	if err == nil {
		for _, m := range tilesetHeaderPattern.FindAllStringSubmatch(string(headers), -1) {
			if path, ok := tilesMap[m[2]]; ok {
				result[m[1]] = path
			}
		}
	}

	// Direct matches (gTileset_Foo -> gTilesetTiles_Foo) fill the gaps.
	for name, path := range tilesMap {
		if _, ok := result[name]; !ok {
			result[name] = path
		}
	}

	return result
}

// incbinToPNG rewrites a baked asset path back to its PNG source.
func incbinToPNG(raw string) string {
	raw = strings.Replace(raw, ".4bpp.lz", ".png", 1)
	return strings.Replace(raw, ".4bpp", ".png", 1)
}
