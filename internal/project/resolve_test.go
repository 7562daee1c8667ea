package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tilesetGraphicsFixture = `
const u16 gTilesetTiles_General[] = INCBIN_U16("data/tilesets/primary/general/tiles.4bpp");
const u16 gTilesetTiles_InsideBuilding[] = INCBIN_U16("data/tilesets/primary/building/tiles.4bpp.lz");
const u16 gTilesetTiles_PetalburgCompressed[] = INCBIN_U16("data/tilesets/secondary/petalburg/tiles.4bpp.lz");
const u16 gTilesetTiles_Unknown1[] = INCBIN_U16("data/tilesets/secondary/unknown/unknown_tiles.4bpp");
`

const tilesetHeadersFixture = `
const struct Tileset gTileset_General =
{
    .isCompressed = TRUE,
    .isSecondary = FALSE,
    .tiles = gTilesetTiles_General,
};

const struct Tileset gTileset_Building =
{
    .isCompressed = TRUE,
    .isSecondary = FALSE,
    .tiles = gTilesetTiles_InsideBuilding,
};
`

func writeProjectFile(t *testing.T, baseDir string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{baseDir}, parts[:len(parts)-1]...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(parts[len(parts)-1]), 0644))
}

func TestBuildTilesetPaths(t *testing.T) {
	baseDir := t.TempDir()
	writeProjectFile(t, baseDir, "src", "data", "tilesets", "graphics.h", tilesetGraphicsFixture)
	writeProjectFile(t, baseDir, "src", "data", "tilesets", "headers.h", tilesetHeadersFixture)

	paths := BuildTilesetPaths(baseDir)

	// Direct name.
	general, ok := paths.Resolve("gTileset_General")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(baseDir, "data/tilesets/primary/general/tiles.png"), general)

	// Aliased through headers.h, with .4bpp.lz rewritten.
	building, ok := paths.Resolve("gTileset_Building")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(baseDir, "data/tilesets/primary/building/tiles.png"), building)

	// Prefix stripping is optional.
	_, ok = paths.Resolve("General")
	assert.True(t, ok)

	// Compressed duplicates and unknown tiles are filtered out.
	_, ok = paths.Resolve("gTileset_PetalburgCompressed")
	assert.False(t, ok)
	_, ok = paths.Resolve("gTileset_Unknown1")
	assert.False(t, ok)
}

func TestBuildTilesetPaths_MissingHeaders(t *testing.T) {
	paths := BuildTilesetPaths(t.TempDir())
	assert.Empty(t, paths)
}
