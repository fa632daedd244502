package classify

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
	"github.com/go-test/deep"
)

func newTestClassifier() *Classifier { return New(palette.DefaultSet()) }

func TestClassifyTotal(t *testing.T) {
	c := newTestClassifier()
	contexts := []Context{
		{},
		{PlayerForm: FormB},
		{BossSlot: 3},
		{Powerup: 2},
		{PlayerForm: FormB, BossSlot: 8, Powerup: 3, Flight: true, Gameplay: true},
	}
	for _, ctx := range contexts {
		for tile := 0; tile < 256; tile++ {
			for _, role := range []Role{Background, Object} {
				for _, slot := range []int{0, 4, 39} {
					pal := c.Classify(byte(tile), ctx, role, slot)
					if pal > 7 {
						t.Fatalf("tile %02X role %d slot %d ctx %+v: palette %d out of range",
							tile, role, slot, ctx, pal)
					}
				}
			}
		}
	}
}

func TestBackgroundRanges(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		tile byte
		want byte
	}{
		{0x00, 0}, {0x3F, 0}, // floor
		{0x40, 6}, {0x5F, 6}, // wall
		{0x60, 0}, {0x87, 0}, // arches blend with floor
		{0x88, 1}, {0xDF, 1}, // items
		{0xE0, 6}, {0xFD, 6}, // decorative
		{0xFE, 0}, {0xFF, 0}, // void
	}
	for _, tc := range tests {
		if got := c.Classify(tc.tile, Context{}, Background, 0); got != tc.want {
			t.Errorf("tile %02X: got palette %d, want %d", tc.tile, got, tc.want)
		}
	}
}

func TestBGLookupMatchesCategories(t *testing.T) {
	lut := BuildBGLookup()
	var want [256]byte
	for i := 0; i < 256; i++ {
		want[i] = categorySlot[CategoryOf(byte(i))]
	}
	if diff := deep.Equal(lut, want); diff != nil {
		t.Fatalf("lookup table mismatch: %v", diff)
	}
}

func TestPlayerSlotOverride(t *testing.T) {
	c := newTestClassifier()
	// A slot in the player window classifies by form only: the tile id is
	// irrelevant, even one deep in the enemy range with a boss active.
	ctx := Context{PlayerForm: FormA, BossSlot: 5}
	for slot := 0; slot < 4; slot++ {
		var seen byte = c.Classify(0x00, ctx, Object, slot)
		for tile := 0; tile < 256; tile++ {
			if got := c.Classify(byte(tile), ctx, Object, slot); got != seen {
				t.Fatalf("slot %d tile %02X: palette changed with tile id (%d -> %d)",
					slot, tile, seen, got)
			}
		}
		if seen != 1 {
			t.Fatalf("slot %d: form A should use palette 1, got %d", slot, seen)
		}
	}
	ctx.PlayerForm = FormB
	if got := c.Classify(0x55, ctx, Object, 2); got != 2 {
		t.Fatalf("form B should use palette 2, got %d", got)
	}
}

func TestBossOverridePrecedence(t *testing.T) {
	set := palette.DefaultSet()
	c := New(set)
	for k := byte(1); k <= 8; k++ {
		ctx := Context{BossSlot: k}
		want := set.Boss[k-1].Slot
		// Every enemy-range tile resolves through the boss table,
		// regardless of enemy class sub-range.
		for _, tile := range []byte{0x30, 0x3F, 0x42, 0x55, 0x6A, 0x7F, 0x80, 0xFF} {
			if got := c.Classify(tile, ctx, Object, 10); got != want {
				t.Fatalf("boss %d tile %02X: got palette %d, want %d", k, tile, got, want)
			}
		}
	}
}

func TestObjectRanges(t *testing.T) {
	c := newTestClassifier()
	tests := []struct {
		name string
		tile byte
		want byte
	}{
		{"enemy shot", 0x00, 3},
		{"enemy shot", 0x01, 3},
		{"player shot", 0x06, 0},
		{"player shot", 0x0F, 0},
		{"effect", 0x10, 4},
		{"effect", 0x1F, 4},
		{"player tile", 0x20, 1},
		{"player tile", 0x2F, 1},
		{"crow", 0x30, 3},
		{"hornet", 0x4C, 4},
		{"ground", 0x50, 5},
		{"humanoid", 0x6F, 6},
		{"aquatic", 0x7A, 7},
		{"high default", 0x80, 4},
		{"high default", 0xFF, 4},
	}
	for _, tc := range tests {
		if got := c.Classify(tc.tile, Context{PlayerForm: FormA}, Object, 10); got != tc.want {
			t.Errorf("%s tile %02X: got palette %d, want %d", tc.name, tc.tile, got, tc.want)
		}
	}
}

func TestCategoryCoverage(t *testing.T) {
	// Every tile id matches exactly one range.
	for tile := 0; tile < 256; tile++ {
		hits := 0
		for _, r := range bgRanges {
			if byte(tile) >= r.lo && byte(tile) <= r.hi {
				hits++
			}
		}
		if hits != 1 {
			t.Fatalf("tile %02X matched %d ranges, want exactly 1", tile, hits)
		}
	}
}
