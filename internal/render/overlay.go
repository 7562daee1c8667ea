package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/gbamap/internal/logger"
	"github.com/Faultbox/gbamap/internal/project"
)

// SpriteResolver resolves an object event graphics id to a sprite sheet
// path and declared frame dimensions. Implementations must be pure lookups
// with no shared mutable state.
type SpriteResolver interface {
	Resolve(graphicsID string) (project.SpriteInfo, bool)
}

// OverlayObjectEvents composites frame 0 of each stationary object event
// onto the map canvas, sprite feet aligned to the bottom edge of the
// occupied metatile. Events with non-stationary movement, an unresolved
// graphics id or unreadable sprite data are skipped individually; the
// overlay pass itself never fails. Returns the number of sprites drawn.
func OverlayObjectEvents(canvas *image.NRGBA, events []project.ObjectEvent, sprites SpriteResolver) int {
	drawn := 0
	for _, ev := range events {
		if !ev.MovementType.IsStationary() {
			continue
		}

		info, ok := sprites.Resolve(ev.GraphicsID)
		if !ok {
			logger.Debug("unresolved object event graphics", zap.String("graphics_id", ev.GraphicsID))
			continue
		}

		frame, err := renderSpriteFrame(info)
		if err != nil {
			logger.Debug("skipping object event sprite",
				zap.String("graphics_id", ev.GraphicsID), zap.Error(err))
			continue
		}

		x := ev.X * MetatileSize
		y := (ev.Y+1)*MetatileSize - info.Height
		draw.Draw(canvas,
			image.Rect(x, y, x+info.Width, y+info.Height),
			frame, image.Point{}, draw.Over)
		drawn++
	}
	return drawn
}

// renderSpriteFrame extracts frame 0 by cropping the sheet's top-left
// declared width x height region and mapping it through the sheet's own
// embedded palette. Color index 0 is transparent; everything else is
// opaque.
func renderSpriteFrame(info project.SpriteInfo) (*image.NRGBA, error) {
	f, err := os.Open(info.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sprite sheet: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sprite sheet: %w", err)
	}

	sheet, ok := img.(*image.Paletted)
	if !ok {
		return nil, fmt.Errorf("sprite sheet %s has no embedded palette", info.Path)
	}

	frame := image.NewNRGBA(image.Rect(0, 0, info.Width, info.Height))
	bounds := sheet.Bounds()
	for y := 0; y < info.Height && y < bounds.Dy(); y++ {
		for x := 0; x < info.Width && x < bounds.Dx(); x++ {
			ci := sheet.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)
			if ci == 0 || int(ci) >= len(sheet.Palette) {
				continue
			}
			r, g, b, _ := sheet.Palette[ci].RGBA()
			frame.SetNRGBA(x, y, color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255})
		}
	}

	return frame, nil
}
