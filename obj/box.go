package obj

import (
	"image"

	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
)

// Box is a colored block the player can push sideways. Depending on the
// tint and the box rule it is either solid or passable.
type Box struct {
	common.Rect
	Color    common.RGB
	Passable bool

	lastTint  Tint
	evaluated bool
	alpha     float64
	sprite    prefabs.SpriteSpec
}

func NewBox(spec levels.BoxSpec, prefab prefabs.BoxSpec) *Box {
	w, h := spec.W, spec.H
	if w <= 0 {
		w = prefab.Size.W
	}
	if h <= 0 {
		h = prefab.Size.H
	}
	alpha := prefab.PassableAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = 0.35
	}
	return &Box{
		Rect:   common.TileRect(spec.X, spec.Y, w, h),
		Color:  spec.Color,
		alpha:  alpha,
		sprite: prefab.Sprite,
	}
}

// Update re-evaluates passability when the tint changed since the last call.
// On a rule error the box keeps its previous state and the error is
// returned once for that tint.
func (b Box) Update(tint Tint, rule BoxRule) (Box, error) {
	if rule == nil {
		return b, nil
	}
	if b.evaluated && b.lastTint == tint {
		return b, nil
	}
	b.evaluated = true
	b.lastTint = tint
	passable, err := rule.Passable(tint, b.Color)
	if err != nil {
		return b, err
	}
	b.Passable = passable
	return b, nil
}

// Reevaluate forces the next Update to consult the rule, e.g. after the
// rule itself was reloaded.
func (b *Box) Reevaluate() {
	b.evaluated = false
}

// Solid reports whether the box takes part in collision.
func (b *Box) Solid() bool {
	return b != nil && !b.Passable
}

// Push slides the box horizontally by dx, stopping at obstacles and the
// world edges. It returns the distance actually moved. Boxes have no
// gravity and keep their row even when pushed past a ledge.
func (b *Box) Push(dx float64, obstacles []common.Rect, worldW float64) float64 {
	start := b.X
	moved, _ := MoveX(b.Rect, dx, obstacles)
	moved.X = common.Clamp(moved.X, 0, worldW-moved.Width)
	b.Rect = moved
	return b.X - start
}

func (b Box) Render(cx float64, s Surface) {
	dst := b.Rect.Translate(-cx, 0)
	if b.Passable {
		s.FillRect(dst, b.Color.WithAlpha(uint8(b.alpha*0xff)))
		s.StrokeRect(dst, 1, b.Color.NRGBA())
		return
	}
	s.FillRect(dst, b.Color.NRGBA())
	if b.sprite.Image != "" {
		s.DrawSprite(Sprite{Image: b.sprite.Image, Frame: image.Rect(0, 0, int(b.sprite.Width), int(b.sprite.Height))}, dst)
	}
}
