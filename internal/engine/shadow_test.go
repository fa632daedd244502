package engine

import (
	"testing"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
)

func newTestShadow(bufs ...[]byte) *Shadow {
	return &Shadow{
		Gate:    Gate{Status: alwaysSafe, MaxPolls: 4},
		Cls:     classify.New(palette.DefaultSet()),
		Buffers: bufs,
	}
}

func makeBuffer() []byte {
	buf := make([]byte, SpriteSlots*4)
	for slot := 0; slot < SpriteSlots; slot++ {
		buf[slot*4+2] = byte(slot * 5) // tile
		buf[slot*4+3] = 0xF0           // flip/priority bits set, palette 0
	}
	return buf
}

func TestShadowColorizesBothBuffers(t *testing.T) {
	front, back := makeBuffer(), makeBuffer()
	s := newTestShadow(front, back)
	ctx := classify.Context{PlayerForm: classify.FormA, Gameplay: true}
	s.RunCycle(ctx)

	for name, buf := range map[string][]byte{"front": front, "back": back} {
		for slot := 0; slot < SpriteSlots; slot++ {
			tile := buf[slot*4+2]
			want := s.Cls.Classify(tile, ctx, classify.Object, slot)
			if got := buf[slot*4+3] & 0x07; got != want {
				t.Fatalf("%s slot %d tile %02X: palette %d, want %d", name, slot, tile, got, want)
			}
		}
	}
}

func TestShadowPreservesUpperAttrBits(t *testing.T) {
	buf := makeBuffer()
	s := newTestShadow(buf)
	s.RunCycle(classify.Context{Gameplay: true})
	for slot := 0; slot < SpriteSlots; slot++ {
		if buf[slot*4+3]&0xF8 != 0xF0 {
			t.Fatalf("slot %d: attribute bits above the palette field clobbered: %02X",
				slot, buf[slot*4+3])
		}
	}
}

func TestShadowPlayerSlotsFollowForm(t *testing.T) {
	buf := makeBuffer()
	s := newTestShadow(buf)

	s.RunCycle(classify.Context{PlayerForm: classify.FormA})
	for slot := 0; slot < 4; slot++ {
		if got := buf[slot*4+3] & 0x07; got != 1 {
			t.Fatalf("form A slot %d: palette %d, want 1", slot, got)
		}
	}
	s.RunCycle(classify.Context{PlayerForm: classify.FormB})
	for slot := 0; slot < 4; slot++ {
		if got := buf[slot*4+3] & 0x07; got != 2 {
			t.Fatalf("form B slot %d: palette %d, want 2", slot, got)
		}
	}
}

func TestShadowOverwrittenEveryCycle(t *testing.T) {
	buf := makeBuffer()
	s := newTestShadow(buf)
	s.RunCycle(classify.Context{})

	// The game rewrote a slot with a different entity between cycles; the
	// next pass reclassifies it unconditionally.
	buf[10*4+2] = 0x50 // ground enemy
	s.RunCycle(classify.Context{})
	if got := buf[10*4+3] & 0x07; got != 5 {
		t.Fatalf("reused slot: palette %d, want 5", got)
	}
}

func TestShadowShortBuffer(t *testing.T) {
	// A truncated buffer must not panic; extra slots are simply absent.
	buf := make([]byte, 10*4)
	s := newTestShadow(buf)
	s.RunCycle(classify.Context{})
}
