package obj

import (
	"image"
	"image/color"

	"github.com/milk9111/chroma/common"
)

// Surface is an immediate-mode drawing sink the size of the game canvas.
type Surface interface {
	Clear()
	Fill(c color.Color)
	FillRect(r common.Rect, c color.Color)
	StrokeRect(r common.Rect, width float32, c color.Color)
	// DrawSprite draws one frame of a named sheet scaled into dst. It reports
	// false when the sheet is unknown so callers can fall back to shapes.
	DrawSprite(sp Sprite, dst common.Rect) bool
	DrawText(s string, x, y float64, c color.Color)
	// TextWidth is the advance of s in the face DrawText uses.
	TextWidth(s string) float64
	Size() (int, int)
}

// Sprite selects a region of a named image.
type Sprite struct {
	Image string
	Frame image.Rectangle
	FlipX bool
}
