package obj

import "github.com/milk9111/chroma/common"

// Camera tracks the horizontal view offset CX that keeps the player in frame.
type Camera struct {
	CX float64

	viewW  float64
	worldW float64
	focusW float64

	// smoothing factor (0..1). higher -> faster follow, 0 snaps.
	smooth float64
}

func NewCamera(viewW, smooth float64) *Camera {
	c := &Camera{viewW: viewW}
	c.SetSmooth(smooth)
	return c
}

// SetWorldWidth sets the world pixel width used for clamping.
func (c *Camera) SetWorldWidth(w float64) {
	c.worldW = w
}

// SetFocusWidth sets the width of the followed target so it is centered.
func (c *Camera) SetFocusWidth(w float64) {
	c.focusW = w
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Update moves the camera toward playerX. Call once per fixed update.
func (c *Camera) Update(playerX float64) {
	target := c.target(playerX)
	if c.smooth <= 0 {
		c.CX = target
	} else {
		c.CX = common.Lerp(c.CX, target, c.smooth)
	}
	c.CX = c.clamp(c.CX)
}

// Snap places the camera on playerX without smoothing, e.g. after a load.
func (c *Camera) Snap(playerX float64) {
	c.CX = c.clamp(c.target(playerX))
}

func (c *Camera) target(playerX float64) float64 {
	return playerX + c.focusW/2 - c.viewW/2
}

func (c *Camera) clamp(x float64) float64 {
	return common.Clamp(x, 0, c.worldW-c.viewW)
}
