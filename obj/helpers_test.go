package obj

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/prefabs"
)

type fakeInput struct {
	left, right, jump bool
}

func (f *fakeInput) Left() bool  { return f.left }
func (f *fakeInput) Right() bool { return f.right }
func (f *fakeInput) Jump() bool  { return f.jump }

type fakeSurface struct {
	fills   []common.Rect
	strokes []common.Rect
	sprites []Sprite
	texts   []string
	known   map[string]bool
}

func (s *fakeSurface) Clear()           {}
func (s *fakeSurface) Fill(color.Color) {}
func (s *fakeSurface) FillRect(r common.Rect, _ color.Color) {
	s.fills = append(s.fills, r)
}
func (s *fakeSurface) StrokeRect(r common.Rect, _ float32, _ color.Color) {
	s.strokes = append(s.strokes, r)
}
func (s *fakeSurface) DrawText(t string, _, _ float64, _ color.Color) {
	s.texts = append(s.texts, t)
}
func (s *fakeSurface) TextWidth(t string) float64 { return float64(7 * len(t)) }
func (s *fakeSurface) Size() (int, int)            { return common.ScreenWidth, common.ScreenHeight }
func (s *fakeSurface) DrawSprite(sp Sprite, _ common.Rect) bool {
	if !s.known[sp.Image] {
		return false
	}
	s.sprites = append(s.sprites, sp)
	return true
}

func testPlayerSpec() prefabs.PlayerSpec {
	return prefabs.PlayerSpec{
		MoveSpeed:        3,
		JumpSpeed:        14,
		Gravity:          0.5,
		MaxFallSpeed:     12,
		CoyoteFrames:     6,
		JumpBufferFrames: 8,
		Collider:         prefabs.ColliderSpec{Width: 12, Height: 28},
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// floor is the bottom six tile rows spanning a two-screen world.
var floor = common.TileRect(0, 26, 100, 6)
