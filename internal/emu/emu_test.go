package emu

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/engine"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
)

func newTestMachine() *Machine {
	return New(Config{Scripted: true}, engine.DefaultConfig(), palette.DefaultSet())
}

func TestEngineRunsOncePerFrame(t *testing.T) {
	m := newTestMachine()
	m.StepFrame()
	st := m.State()
	if st.SweepPos == 0 && st.PlaneBase == 0 {
		t.Fatal("orchestrator did not run during the frame")
	}
}

func TestAttributePlaneConverges(t *testing.T) {
	m := New(Config{Scripted: false}, engine.DefaultConfig(), palette.DefaultSet())
	d := m.Display()
	// Static map, no scroll, no flips: the sweep must fully colorize the
	// active plane within its wrap period.
	writeTileGraphics(d)
	fillPlane(d, 0x9800, 0)

	cycles := (1024 + 28) / 29
	for i := 0; i < cycles+1; i++ {
		m.StepFrame()
	}

	for off := 0; off < 1024; off++ {
		tile := d.RawBank(0, 0x9800+uint16(off))
		attr := d.RawBank(1, 0x9800+uint16(off))
		if tile >= 0x40 && tile <= 0x5F && attr&0x07 != 6 {
			t.Fatalf("wall tile %02X at %d has palette %d", tile, off, attr&0x07)
		}
		if tile >= 0x88 && tile <= 0xDF && attr&0x07 != 1 {
			t.Fatalf("item tile %02X at %d has palette %d", tile, off, attr&0x07)
		}
	}
}

func TestFramebufferSizeAndOpaque(t *testing.T) {
	m := newTestMachine()
	m.StepFrame()
	fb := m.Framebuffer()
	if len(fb) != ScreenW*ScreenH*4 {
		t.Fatalf("framebuffer length %d, want %d", len(fb), ScreenW*ScreenH*4)
	}
	for i := 3; i < len(fb); i += 4 {
		if fb[i] != 0xFF {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}

func TestScriptedSceneExercisesFlips(t *testing.T) {
	m := newTestMachine()
	before := m.Display().Control() & 0x08
	flipped := false
	for i := 0; i < 20; i++ {
		m.StepFrame()
		if m.Display().Control()&0x08 != before {
			flipped = true
			break
		}
	}
	if !flipped {
		t.Fatal("scene never flipped the displayed plane")
	}
}

func TestSpritePalettesReachLiveTable(t *testing.T) {
	m := newTestMachine()
	m.StepFrame()
	oam := m.Display().OAM()
	// Slots 0..3 are the player; form A colors them with palette 1.
	for slot := 0; slot < 4; slot++ {
		if got := oam[slot*4+3] & 0x07; got != 1 {
			t.Fatalf("player slot %d in live table has palette %d, want 1", slot, got)
		}
	}
}
