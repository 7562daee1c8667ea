package tileset

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gbamap/pkg/formats"
)

// pathMap is a test resolver.
type pathMap map[string]string

func (p pathMap) Resolve(name string) (string, bool) {
	path, ok := p[name]
	return path, ok
}

// writeTilesetDir lays out a minimal tileset directory: a 2-tile indexed
// sheet, a full palette set, one metatile and one attribute word. Returns
// the tiles.png path.
func writeTilesetDir(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "palettes"), 0755))

	pal := make(color.Palette, 16)
	for i := range pal {
		pal[i] = color.NRGBA{R: uint8(i * 16), A: 255}
	}
	sheet := image.NewPaletted(image.Rect(0, 0, 16, 8), pal)
	sheetPath := filepath.Join(dir, "tiles.png")
	f, err := os.Create(sheetPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, sheet))
	require.NoError(t, f.Close())

	for i := 0; i < PaletteSlots; i++ {
		body := "JASC-PAL\n0100\n16\n"
		for c := 0; c < 16; c++ {
			body += fmt.Sprintf("%d %d %d\n", i, c, 0)
		}
		path := filepath.Join(dir, "palettes", fmt.Sprintf("%02d.pal", i))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	record := make([]byte, formats.MetatileBytes)
	binary.LittleEndian.PutUint16(record, formats.TileReference{TileIndex: 1, Palette: 3}.Encode())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metatiles.bin"), record, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metatile_attributes.bin"), []byte{0x34, 0x12}, 0644))

	return sheetPath
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeTilesetDir(t, dir)

	ts, err := Load("General", pathMap{"General": sheetPath})
	require.NoError(t, err)

	assert.Equal(t, "General", ts.Name)
	assert.Equal(t, 2, ts.TilesAcross())
	assert.Equal(t, 2, ts.TileCount())
	require.Len(t, ts.Palettes, PaletteSlots)
	assert.Equal(t, formats.RGB{R: 5, G: 2}, ts.Palettes[5][2])
	require.Len(t, ts.Metatiles, 1)
	assert.Equal(t, uint16(1), ts.Metatiles[0].Bottom[0].TileIndex)
	assert.Equal(t, []uint16{0x1234}, ts.Attributes)
}

func TestLoad_UnresolvedName(t *testing.T) {
	_, err := Load("Nowhere", pathMap{})
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestLoad_PartialPaletteSet(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeTilesetDir(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "palettes", "07.pal")))

	ts, err := Load("General", pathMap{"General": sheetPath})
	require.NoError(t, err, "a missing palette file must not fail the load")

	require.Len(t, ts.Palettes, PaletteSlots)
	assert.Nil(t, ts.Palettes[7], "missing slot stays nil")
	assert.NotNil(t, ts.Palettes[8], "later slots keep their position")
}

func TestLoad_MalformedPaletteFatal(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeTilesetDir(t, dir)
	bad := filepath.Join(dir, "palettes", "03.pal")
	require.NoError(t, os.WriteFile(bad, []byte("JASC-PAL\n0100\nx\n"), 0644))

	_, err := Load("General", pathMap{"General": sheetPath})
	assert.ErrorIs(t, err, formats.ErrMalformedPalette,
		"a palette that exists but does not parse fails the tileset load")
}

func TestLoad_MetatilesParentFallback(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "variant")
	sheetPath := writeTilesetDir(t, dir)

	// Shared table lives one directory up.
	require.NoError(t, os.Rename(filepath.Join(dir, "metatiles.bin"), filepath.Join(parent, "metatiles.bin")))
	require.NoError(t, os.Rename(filepath.Join(dir, "metatile_attributes.bin"), filepath.Join(parent, "metatile_attributes.bin")))

	ts, err := Load("SecretBase", pathMap{"SecretBase": sheetPath})
	require.NoError(t, err)
	assert.Len(t, ts.Metatiles, 1)
}

func TestLoad_MissingMetatilesFatal(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeTilesetDir(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "metatiles.bin")))

	_, err := Load("General", pathMap{"General": sheetPath})
	assert.Error(t, err)
}

func TestCacheSharesEntries(t *testing.T) {
	dir := t.TempDir()
	sheetPath := writeTilesetDir(t, dir)
	cache := NewCache(pathMap{"General": sheetPath})

	a, err := cache.Get("General")
	require.NoError(t, err)
	b, err := cache.Get("General")
	require.NoError(t, err)

	assert.Same(t, a, b, "all readers share one immutable decoded tileset")
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Get("Nowhere")
	assert.Error(t, err)
	assert.Equal(t, 1, cache.Len(), "failed loads are not cached")
}
