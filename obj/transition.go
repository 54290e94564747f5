package obj

import (
	"image/color"

	"github.com/milk9111/chroma/common"
)

// Transition is the fade-from-black shown after a stage load. It is purely
// cosmetic and never blocks updates.
type Transition struct {
	Active   bool
	Frames   int
	Duration int
}

func NewTransition(duration int) *Transition {
	return &Transition{Duration: duration}
}

// Start restarts the fade. A non-positive duration disables it.
func (t *Transition) Start() {
	if t.Duration <= 0 {
		t.Active = false
		return
	}
	t.Active = true
	t.Frames = 0
}

func (t *Transition) Update() {
	if !t.Active {
		return
	}
	t.Frames++
	if t.Frames >= t.Duration {
		t.Active = false
		t.Frames = 0
	}
}

// Alpha is the overlay opacity, 1 right after Start and 0 when done.
func (t *Transition) Alpha() float64 {
	if !t.Active || t.Duration <= 0 {
		return 0
	}
	return common.Clamp(1-float64(t.Frames)/float64(t.Duration), 0, 1)
}

// Render draws the fade overlay onto the provided surface.
func (t *Transition) Render(s Surface) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	w, h := s.Size()
	s.FillRect(common.NewRect(0, 0, float64(w), float64(h)), color.NRGBA{A: uint8(alpha * 0xff)})
}
