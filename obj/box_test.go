package obj

import (
	"errors"
	"testing"

	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
)

var boxPrefab = prefabs.BoxSpec{Size: prefabs.TileSize{W: 5, H: 5}, MatchTolerance: 48, PassableAlpha: 0.35}

type countingRule struct {
	calls    int
	passable bool
	err      error
}

func (r *countingRule) Passable(Tint, common.RGB) (bool, error) {
	r.calls++
	return r.passable, r.err
}

func TestBoxSizeFromPrefabOrSpec(t *testing.T) {
	b := NewBox(levels.BoxSpec{X: 84, Y: 21}, boxPrefab)
	if b.Rect != common.TileRect(84, 21, 5, 5) {
		t.Fatalf("default box rect = %+v", b.Rect)
	}
	b = NewBox(levels.BoxSpec{X: 1, Y: 2, W: 3, H: 1}, boxPrefab)
	if b.Rect != common.TileRect(1, 2, 3, 1) {
		t.Fatalf("sized box rect = %+v", b.Rect)
	}
}

func TestBoxReevaluatesOnlyOnTintChange(t *testing.T) {
	rule := &countingRule{passable: true}
	box := *NewBox(levels.BoxSpec{Color: common.RGB{R: 10}}, boxPrefab)

	var err error
	tint := Tint{}
	for i := 0; i < 3; i++ {
		if box, err = box.Update(tint, rule); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if rule.calls != 1 {
		t.Fatalf("rule called %d times for a constant tint, want 1", rule.calls)
	}

	tint = tint.Add(common.RGB{R: 10})
	box, _ = box.Update(tint, rule)
	box, _ = box.Update(tint, rule)
	if rule.calls != 2 {
		t.Fatalf("rule called %d times after one tint change, want 2", rule.calls)
	}
	if !box.Passable {
		t.Fatalf("expected passable box")
	}
}

func TestBoxRuleErrorKeepsState(t *testing.T) {
	box := *NewBox(levels.BoxSpec{}, boxPrefab)
	box.Passable = true

	rule := &countingRule{err: errors.New("boom")}
	tint := Tint{}.Add(common.RGB{G: 1})
	next, err := box.Update(tint, rule)
	if err == nil {
		t.Fatalf("expected rule error")
	}
	if !next.Passable {
		t.Fatalf("box lost its state on rule error")
	}
	if _, err := next.Update(tint, rule); err != nil {
		t.Fatalf("error reported twice for the same tint: %v", err)
	}
}

func TestMatchRule(t *testing.T) {
	rule := MatchRule{Tolerance: 48}
	box := common.RGB{R: 255, G: 102}
	cases := []struct {
		name string
		tint Tint
		want bool
	}{
		{"inactive", Tint{Color: box}, false},
		{"exact", Tint{Color: box, Active: true}, true},
		{"within tolerance", Tint{Color: common.RGB{R: 255, G: 130, B: 30}, Active: true}, true},
		{"too far", Tint{Color: common.RGB{R: 113, G: 107, B: 107}, Active: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rule.Passable(tc.tint, box)
			if err != nil || got != tc.want {
				t.Fatalf("Passable = (%v, %v), want %v", got, err, tc.want)
			}
		})
	}
}

func TestScriptRuleMatchesMatchRule(t *testing.T) {
	script, err := NewScriptRule("box_rule.tengo", boxPrefab.MatchTolerance)
	if err != nil {
		t.Fatalf("NewScriptRule: %v", err)
	}
	match := MatchRule{Tolerance: boxPrefab.MatchTolerance}

	colors := []common.RGB{
		{},
		{R: 255, G: 102},
		{R: 113, G: 107, B: 107},
		{R: 255, G: 192, B: 203},
		{R: 300, G: 300, B: 300},
		{R: 240, G: 110, B: 20},
	}
	for _, tintColor := range colors {
		for _, active := range []bool{false, true} {
			for _, box := range colors {
				tint := Tint{Color: tintColor, Active: active}
				want, _ := match.Passable(tint, box)
				got, err := script.Passable(tint, box)
				if err != nil {
					t.Fatalf("script error: %v", err)
				}
				if got != want {
					t.Fatalf("tint %v active=%v box %v: script=%v match=%v", tintColor, active, box, got, want)
				}
			}
		}
	}
}

func TestCompileScriptRuleErrors(t *testing.T) {
	if _, err := CompileScriptRule([]byte("passable := ("), 1); err == nil {
		t.Fatalf("expected compile error")
	}

	rule, err := CompileScriptRule([]byte("x := 1"), 1)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := rule.Passable(Tint{}, common.RGB{}); err == nil {
		t.Fatalf("expected error for script without passable")
	}
}

func TestBoxPushStopsAtObstaclesAndEdges(t *testing.T) {
	wall := common.NewRect(200, 0, 16, 400)
	cases := []struct {
		name  string
		x     float64
		dx    float64
		wantX float64
	}{
		{"free", 100, 3, 103},
		{"against wall", 118, 5, 120},
		{"left world edge", 2, -5, 0},
		{"right world edge", 315, 10, 320},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &Box{Rect: common.NewRect(tc.x, 300, 80, 80)}
			obstacles := []common.Rect{}
			if tc.name == "against wall" {
				obstacles = append(obstacles, wall)
			}
			b.Push(tc.dx, obstacles, 400)
			if b.X != tc.wantX {
				t.Fatalf("X = %v, want %v", b.X, tc.wantX)
			}
		})
	}
}

func TestBoxPushedPastLedgeKeepsRow(t *testing.T) {
	ledge := common.TileRect(0, 20, 10, 1)
	b := &Box{Rect: common.NewRect(100, ledge.Y-80, 80, 80)}

	moved := b.Push(200, []common.Rect{ledge}, 800)
	if moved != 200 || b.X != 300 {
		t.Fatalf("moved %v to X=%v, want 200 to 300", moved, b.X)
	}
	if b.Y != ledge.Y-80 {
		t.Fatalf("Y = %v, want the box to keep its row at %v", b.Y, ledge.Y-80)
	}
	if IsGrounded(b.Rect, []common.Rect{ledge}) {
		t.Fatalf("box should be past the ledge")
	}
}

func TestBoxRender(t *testing.T) {
	box := *NewBox(levels.BoxSpec{X: 2, Y: 2}, boxPrefab)

	s := &fakeSurface{}
	box.Render(0, s)
	if len(s.fills) != 1 || len(s.strokes) != 0 {
		t.Fatalf("solid box: fills=%d strokes=%d", len(s.fills), len(s.strokes))
	}

	box.Passable = true
	s = &fakeSurface{}
	box.Render(0, s)
	if len(s.fills) != 1 || len(s.strokes) != 1 {
		t.Fatalf("passable box: fills=%d strokes=%d", len(s.fills), len(s.strokes))
	}
}
