package obj

import (
	"image"
	"testing"

	"github.com/milk9111/chroma/prefabs"
)

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(prefabs.AnimationDefSpec{Row: 1, FrameCount: 4, FPS: 60, Loop: true}, 16, 32)
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		a.Update()
		if a.Current() != w {
			t.Fatalf("step %d: frame %d, want %d", i, a.Current(), w)
		}
	}
	if got := a.Frame(); got != image.Rect(16, 32, 32, 64) {
		t.Fatalf("Frame = %v", got)
	}
}

func TestAnimationHoldsLastFrame(t *testing.T) {
	a := NewAnimation(prefabs.AnimationDefSpec{FrameCount: 3, FPS: 30}, 8, 8)
	for i := 0; i < 20; i++ {
		a.Update()
	}
	if a.Current() != 2 {
		t.Fatalf("frame %d, want 2", a.Current())
	}
	a.Reset()
	if a.Current() != 0 {
		t.Fatalf("Reset left frame %d", a.Current())
	}
}

func TestTransitionFades(t *testing.T) {
	tr := NewTransition(4)
	if tr.Alpha() != 0 {
		t.Fatalf("idle alpha = %v", tr.Alpha())
	}
	tr.Start()
	if tr.Alpha() != 1 {
		t.Fatalf("alpha after Start = %v", tr.Alpha())
	}
	prev := tr.Alpha()
	for i := 0; i < 4; i++ {
		tr.Update()
		if tr.Alpha() >= prev && tr.Active {
			t.Fatalf("alpha did not decrease at frame %d", i)
		}
		prev = tr.Alpha()
	}
	if tr.Active || tr.Alpha() != 0 {
		t.Fatalf("transition should be finished")
	}

	off := NewTransition(0)
	off.Start()
	if off.Active {
		t.Fatalf("zero duration should disable the fade")
	}
}
