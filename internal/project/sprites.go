package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// SpriteInfo locates an object event sprite sheet and its declared frame
// dimensions in pixels.
type SpriteInfo struct {
	Path   string
	Width  int
	Height int
}

// SpriteTable maps an OBJ_EVENT_GFX_* suffix to its sprite sheet info.
type SpriteTable map[string]SpriteInfo

// Resolve returns the sprite info for an OBJ_EVENT_GFX_* graphics id. The
// lookup is pure; the table is never mutated after construction.
func (t SpriteTable) Resolve(graphicsID string) (SpriteInfo, bool) {
	info, ok := t[strings.TrimPrefix(graphicsID, "OBJ_EVENT_GFX_")]
	return info, ok
}

var (
	spritePointerPattern = regexp.MustCompile(`\[OBJ_EVENT_GFX_(\w+)\]\s*=\s*&gObjectEventGraphicsInfo_(\w+)`)
	spriteInfoPattern    = regexp.MustCompile(`gObjectEventGraphicsInfo_(\w+)\s*=\s*\{[^}]*?\.width\s*=\s*(\d+)[^}]*?\.height\s*=\s*(\d+)`)
	spritePicPattern     = regexp.MustCompile(`gObjectEventPic_(\w+)\s*\[\]\s*=\s*INCBIN_U\d+\("([^"]+)"\)`)
)

// BuildSpriteTable scans the object event headers and resolves the
// three-step chain:
//
//	pointers.h:      OBJ_EVENT_GFX_{X}           -> gObjectEventGraphicsInfo_{Y}
//	graphics_info.h: gObjectEventGraphicsInfo_{Y} -> (width, height)
//	graphics.h:      gObjectEventPic_{Y}          -> sprite sheet path
//
// Entries whose sprite sheet is missing on disk are dropped.
func BuildSpriteTable(baseDir string) SpriteTable {
	objDir := filepath.Join(baseDir, "src", "data", "object_events")

	gfxToInfo := make(map[string]string)
	if text, err := os.ReadFile(filepath.Join(objDir, "object_event_graphics_info_pointers.h")); err == nil {
		for _, m := range spritePointerPattern.FindAllStringSubmatch(string(text), -1) {
			gfxToInfo[m[1]] = m[2]
		}
	}

	type dims struct{ w, h int }
	infoDims := make(map[string]dims)
	if text, err := os.ReadFile(filepath.Join(objDir, "object_event_graphics_info.h")); err == nil {
		for _, m := range spriteInfoPattern.FindAllStringSubmatch(string(text), -1) {
			w, _ := strconv.Atoi(m[2])
			h, _ := strconv.Atoi(m[3])
			infoDims[m[1]] = dims{w, h}
		}
	}

	picPaths := make(map[string]string)
	if text, err := os.ReadFile(filepath.Join(objDir, "object_event_graphics.h")); err == nil {
		for _, m := range spritePicPattern.FindAllStringSubmatch(string(text), -1) {
			picPaths[m[1]] = filepath.Join(baseDir, incbinToPNG(m[2]))
		}
	}

	table := make(SpriteTable)
	for gfxName, infoName := range gfxToInfo {
		d, ok := infoDims[infoName]
		if !ok {
			continue
		}
		path, ok := picPaths[infoName]
		if !ok {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		table[gfxName] = SpriteInfo{Path: path, Width: d.w, Height: d.h}
	}

	return table
}
