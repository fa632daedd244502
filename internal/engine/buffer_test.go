package engine

import "testing"

func TestActiveBase(t *testing.T) {
	var b BufferSync
	if got := b.ActiveBase(0x00); got != PlaneBase0 {
		t.Fatalf("select bit clear: base %04X, want %04X", got, PlaneBase0)
	}
	if got := b.ActiveBase(PlaneSelectBit); got != PlaneBase1 {
		t.Fatalf("select bit set: base %04X, want %04X", got, PlaneBase1)
	}
}

func TestFlipResetsSweep(t *testing.T) {
	var b BufferSync
	st := &State{}
	b.OnCycle(st, 0x00)
	st.SweepPos = 700 // mid-sweep

	base, flipped := b.OnCycle(st, PlaneSelectBit)
	if !flipped {
		t.Fatal("expected flip to be detected")
	}
	if base != PlaneBase1 {
		t.Fatalf("base after flip: %04X, want %04X", base, PlaneBase1)
	}
	if st.SweepPos != 0 {
		t.Fatalf("sweep position after flip: %d, want 0", st.SweepPos)
	}
	if st.PlaneBase != PlaneBase1 {
		t.Fatalf("stored plane base: %04X, want %04X", st.PlaneBase, PlaneBase1)
	}
}

func TestNoFlipKeepsSweep(t *testing.T) {
	var b BufferSync
	st := &State{}
	b.OnCycle(st, PlaneSelectBit)
	st.SweepPos = 123
	if _, flipped := b.OnCycle(st, PlaneSelectBit); flipped {
		t.Fatal("unchanged select bit reported as flip")
	}
	if st.SweepPos != 123 {
		t.Fatalf("sweep position disturbed without a flip: %d", st.SweepPos)
	}
}

func TestFirstCycleIsNotAFlip(t *testing.T) {
	var b BufferSync
	st := &State{SweepPos: 55}
	if _, flipped := b.OnCycle(st, PlaneSelectBit); flipped {
		t.Fatal("first observation must not count as a flip")
	}
	if st.SweepPos != 55 {
		t.Fatalf("first observation reset the sweep: %d", st.SweepPos)
	}
}
