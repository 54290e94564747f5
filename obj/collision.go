package obj

import "github.com/milk9111/chroma/common"

// MoveX translates r by dx and stops it flush against the first solid in
// the way. The bool reports whether anything was hit.
func MoveX(r common.Rect, dx float64, solids []common.Rect) (common.Rect, bool) {
	if dx == 0 {
		return r, false
	}
	moved := r.Translate(dx, 0)
	hit := false
	for _, s := range solids {
		if !moved.Intersects(s) {
			continue
		}
		if dx > 0 {
			moved.X = s.X - moved.Width
		} else {
			moved.X = s.Right()
		}
		hit = true
	}
	return moved, hit
}

// MoveY is MoveX for the vertical axis.
func MoveY(r common.Rect, dy float64, solids []common.Rect) (common.Rect, bool) {
	if dy == 0 {
		return r, false
	}
	moved := r.Translate(0, dy)
	hit := false
	for _, s := range solids {
		if !moved.Intersects(s) {
			continue
		}
		if dy > 0 {
			moved.Y = s.Y - moved.Height
		} else {
			moved.Y = s.Bottom()
		}
		hit = true
	}
	return moved, hit
}

const groundEpsilon = 0.001

// IsGrounded returns true if r rests exactly on top of any solid.
func IsGrounded(r common.Rect, solids []common.Rect) bool {
	probe := common.Rect{X: r.X, Y: r.Bottom(), Width: r.Width, Height: 1}
	for _, s := range solids {
		if probe.Intersects(s) && s.Y >= r.Bottom()-groundEpsilon {
			return true
		}
	}
	return false
}
