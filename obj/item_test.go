package obj

import (
	"testing"

	"github.com/milk9111/chroma/common"
	"github.com/milk9111/chroma/levels"
	"github.com/milk9111/chroma/prefabs"
)

var itemPrefab = prefabs.ItemSpec{Size: prefabs.TileSize{W: 2, H: 2}, BobAmplitude: 3, BobFrames: 90}

func TestItemPickupIsOneShot(t *testing.T) {
	orange := common.RGB{R: 255, G: 102}
	item := NewItem(levels.ItemSpec{X: 10, Y: 5, Color: orange}, itemPrefab)
	player := common.NewRect(item.X+4, item.Y+4, 12, 28)

	item, pickup := item.Update(player)
	if !pickup.Collected || pickup.Color != orange {
		t.Fatalf("first overlap: pickup = %+v", pickup)
	}
	if item.Show || !item.ChangeBackground {
		t.Fatalf("first overlap: Show=%v ChangeBackground=%v", item.Show, item.ChangeBackground)
	}

	for i := 0; i < 5; i++ {
		item, pickup = item.Update(player)
		if pickup.Collected {
			t.Fatalf("update %d re-triggered the pickup", i)
		}
		if item.ChangeBackground {
			t.Fatalf("update %d left ChangeBackground set", i)
		}
	}
}

func TestItemIgnoresDistantPlayer(t *testing.T) {
	item := NewItem(levels.ItemSpec{X: 10, Y: 5}, itemPrefab)
	cases := []struct {
		name   string
		player common.Rect
	}{
		{"far away", common.NewRect(0, 0, 12, 28)},
		{"touching left edge", common.NewRect(item.X-12, item.Y, 12, 28)},
		{"touching top edge", common.NewRect(item.X, item.Y-28, 12, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, pickup := item.Update(tc.player)
			if pickup.Collected || !next.Show {
				t.Fatalf("unexpected pickup %+v", pickup)
			}
		})
	}
}

func TestItemHitRegionIgnoresBob(t *testing.T) {
	item := NewItem(levels.ItemSpec{X: 10, Y: 5}, itemPrefab)
	base := item.Rect
	for i := 0; i < 30; i++ {
		item, _ = item.Update(common.Rect{})
	}
	if item.Rect != base {
		t.Fatalf("hit region moved from %+v to %+v", base, item.Rect)
	}
	if item.BobOffset() == 0 {
		t.Fatalf("expected a non-zero bob offset mid-period")
	}
}

func TestItemRenderOnlyWhileShown(t *testing.T) {
	item := NewItem(levels.ItemSpec{X: 10, Y: 5}, itemPrefab)
	s := &fakeSurface{}
	item.Render(0, s)
	if len(s.fills) == 0 {
		t.Fatalf("visible item drew nothing")
	}

	item.Show = false
	s = &fakeSurface{}
	item.Render(0, s)
	if len(s.fills)+len(s.strokes)+len(s.sprites) != 0 {
		t.Fatalf("hidden item should not draw")
	}
}
