package main

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/chroma/assets"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/obj"
	"golang.org/x/image/font/basicfont"
)

// Surface draws game objects onto an ebiten image.
type Surface struct {
	target *ebiten.Image
	face   ebtext.Face
	missed map[string]bool
	logger *log.Logger
}

func NewSurface(logger *log.Logger) *Surface {
	return &Surface{
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		missed: make(map[string]bool),
		logger: logger,
	}
}

// SetTarget points the surface at this frame's screen.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

func (s *Surface) Clear() {
	s.target.Clear()
}

func (s *Surface) Fill(c color.Color) {
	s.target.Fill(c)
}

func (s *Surface) FillRect(r common.Rect, c color.Color) {
	vector.FillRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *Surface) StrokeRect(r common.Rect, width float32, c color.Color) {
	vector.StrokeRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, c, false)
}

// DrawSprite scales sp.Frame of the named sheet into dst. It reports false
// when the sheet is not an embedded asset.
func (s *Surface) DrawSprite(sp obj.Sprite, dst common.Rect) bool {
	if s.missed[sp.Image] {
		return false
	}
	sheet, err := assets.Image(sp.Image)
	if err != nil {
		s.missed[sp.Image] = true
		s.logger.Warn("sprite unavailable, drawing fallback", "image", sp.Image, "error", err)
		return false
	}

	frame := sp.Frame
	if frame.Empty() {
		frame = sheet.Bounds()
	}
	sub := sheet.SubImage(frame).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	sx := dst.Width / float64(frame.Dx())
	sy := dst.Height / float64(frame.Dy())
	if sp.FlipX {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(dst.X+dst.Width, dst.Y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(dst.X, dst.Y)
	}
	op.Filter = ebiten.FilterNearest
	s.target.DrawImage(sub, op)
	return true
}

func (s *Surface) DrawText(str string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(s.target, str, s.face, op)
}

func (s *Surface) TextWidth(str string) float64 {
	return ebtext.Advance(str, s.face)
}

func (s *Surface) Size() (int, int) {
	if s.target == nil {
		return common.ScreenWidth, common.ScreenHeight
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}
