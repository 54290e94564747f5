package obj

import (
	"image"
	"math"

	"github.com/milk9111/chroma/prefabs"
)

// Animation is a frame counter over one row of a sprite sheet. Frames are
// laid out left-to-right; drawing is left to the Surface.
type Animation struct {
	Row        int
	FrameW     int
	FrameH     int
	FrameCount int
	Loop       bool

	current     int
	tick        int
	ticksPerFrm int
}

// NewAnimation creates an Animation from a prefab definition. `fps` defaults
// to 12 if <= 0.
func NewAnimation(def prefabs.AnimationDefSpec, frameW, frameH int) Animation {
	fps := def.FPS
	if fps <= 0 {
		fps = 12
	}
	count := def.FrameCount
	if count <= 0 {
		count = 1
	}
	return Animation{
		Row:         def.Row,
		FrameW:      frameW,
		FrameH:      frameH,
		FrameCount:  count,
		Loop:        def.Loop,
		ticksPerFrm: int(math.Max(1, math.Round(60.0/float64(fps)))),
	}
}

// Update advances the animation. Call once per game update.
func (a *Animation) Update() {
	if a.FrameCount <= 1 {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= a.FrameCount {
		if a.Loop {
			a.current = 0
		} else {
			a.current = a.FrameCount - 1
		}
	}
}

func (a *Animation) Reset() {
	a.current = 0
	a.tick = 0
}

func (a Animation) Current() int { return a.current }

// Frame returns the sheet region of the current frame.
func (a Animation) Frame() image.Rectangle {
	x := a.current * a.FrameW
	y := a.Row * a.FrameH
	return image.Rect(x, y, x+a.FrameW, y+a.FrameH)
}
