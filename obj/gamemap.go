package obj

import (
	"math"

	"github.com/milk9111/chroma/common"
)

// GameMap holds the static terrain rectangles of the current stage.
type GameMap struct {
	rects  []common.Rect
	color  common.RGB
	width  float64
	height float64
}

func NewGameMap(c common.RGB) *GameMap {
	return &GameMap{color: c, width: common.ScreenWidth, height: common.ScreenHeight}
}

// Load replaces the rectangle list and recomputes the world bounds. The
// world is never smaller than the screen.
func (m *GameMap) Load(rects []common.Rect) {
	m.rects = append(m.rects[:0:0], rects...)
	m.width = common.ScreenWidth
	m.height = common.ScreenHeight
	for _, r := range m.rects {
		m.width = math.Max(m.width, r.Right())
		m.height = math.Max(m.height, r.Bottom())
	}
}

func (m *GameMap) SetColor(c common.RGB) {
	m.color = c
}

// Solids exposes the terrain for collision queries. Callers must not modify it.
func (m *GameMap) Solids() []common.Rect {
	return m.rects
}

func (m *GameMap) Bounds() (float64, float64) {
	return m.width, m.height
}

func (m *GameMap) Render(cx float64, s Surface) {
	w, _ := s.Size()
	c := m.color.NRGBA()
	for _, r := range m.rects {
		dst := r.Translate(-cx, 0)
		if dst.Right() < 0 || dst.X > float64(w) {
			continue
		}
		s.FillRect(dst, c)
	}
}
