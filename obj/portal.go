package obj

import (
	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
)

// Portal is the stage goal. Reach is set while the player overlaps it.
type Portal struct {
	common.Rect
	Color common.RGB
	Reach bool

	anim   Animation
	sprite string
}

func NewPortal(spec levels.PortalSpec, prefab prefabs.PortalSpec) Portal {
	w, h := prefab.Size.W, prefab.Size.H
	if w <= 0 {
		w = 2
	}
	if h <= 0 {
		h = 2
	}
	return Portal{
		Rect:   common.TileRect(spec.X, spec.Y, w, h),
		Color:  spec.Color,
		anim:   NewAnimation(prefab.Animation.Defs["idle"], prefab.Animation.FrameW, prefab.Animation.FrameH),
		sprite: prefab.Sprite.Image,
	}
}

// Update reports reach iff the player strictly overlaps the hit region.
func (p Portal) Update(player common.Rect) Portal {
	p.anim.Update()
	p.Reach = player.Intersects(p.Rect)
	return p
}

func (p Portal) Render(cx float64, s Surface) {
	dst := p.Rect.Translate(-cx, 0)
	s.FillRect(dst, p.Color.WithAlpha(0x80))
	if p.sprite == "" || !s.DrawSprite(Sprite{Image: p.sprite, Frame: p.anim.Frame()}, dst) {
		s.StrokeRect(dst, 2, p.Color.NRGBA())
	}
}
