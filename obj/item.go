package obj

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
)

// Item is a colored pickup that floats in place until the player touches it.
type Item struct {
	common.Rect
	Color            common.RGB
	Show             bool
	ChangeBackground bool

	frame     int
	phase     float64
	amplitude float64
	period    int
	sprite    prefabs.SpriteSpec
}

// Pickup is the effect of collecting an item.
type Pickup struct {
	Color     common.RGB
	Collected bool
}

func NewItem(spec levels.ItemSpec, prefab prefabs.ItemSpec) Item {
	w, h := prefab.Size.W, prefab.Size.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Item{
		Rect:      common.TileRect(spec.X, spec.Y, w, h),
		Color:     spec.Color,
		Show:      true,
		phase:     float64(spec.X%7) * 0.3,
		amplitude: prefab.BobAmplitude,
		period:    prefab.BobFrames,
		sprite:    prefab.Sprite,
	}
}

// Update tests the item against the player's bounds. The first overlap hides
// the item and returns a collected Pickup; hidden items never report again.
func (i Item) Update(player common.Rect) (Item, Pickup) {
	i.frame++
	if !i.Show {
		i.ChangeBackground = false
		return i, Pickup{}
	}
	if !player.Intersects(i.Rect) {
		return i, Pickup{}
	}
	i.Show = false
	i.ChangeBackground = true
	return i, Pickup{Color: i.Color, Collected: true}
}

// BobOffset is the vertical draw offset of the float animation.
func (i Item) BobOffset() float64 {
	if i.period <= 0 || i.amplitude == 0 {
		return 0
	}
	t := float64(i.frame) / float64(i.period) * 2 * math.Pi
	return math.Sin(t+i.phase) * i.amplitude
}

func (i Item) Render(cx float64, s Surface) {
	if !i.Show {
		return
	}
	dst := i.Rect.Translate(-cx, i.BobOffset())
	inset := dst.Width / 4
	s.FillRect(common.NewRect(dst.X+inset, dst.Y+inset, dst.Width-2*inset, dst.Height-2*inset), i.Color.NRGBA())
	sp := Sprite{Image: i.sprite.Image, Frame: image.Rect(0, 0, int(i.sprite.Width), int(i.sprite.Height))}
	if i.sprite.Image == "" || !s.DrawSprite(sp, dst) {
		s.StrokeRect(dst, 1, color.White)
	}
}
