package engine

// Tile-plane bases selected by the display-control buffer bit.
const (
	PlaneBase0 = 0x9800
	PlaneBase1 = 0x9C00

	// PlaneSelectBit in the display-control register picks the displayed
	// tile plane. The game flips it every handful of cycles.
	PlaneSelectBit = 0x08
)

// BufferSync tracks which of the two double-buffered tile planes is
// displayed. A flip restarts the sweep at the new plane's base: finishing
// a sweep laid out for the stale plane would spend a whole wrap period
// coloring memory nobody sees.
type BufferSync struct{}

// ActiveBase returns the displayed plane's base for a control-register value.
func (BufferSync) ActiveBase(control byte) uint16 {
	if control&PlaneSelectBit != 0 {
		return PlaneBase1
	}
	return PlaneBase0
}

// OnCycle resolves the active plane and resets the sweep position when the
// select bit changed since the last cycle.
func (b BufferSync) OnCycle(st *State, control byte) (base uint16, flipped bool) {
	base = b.ActiveBase(control)
	if st.PlaneBase == 0 {
		st.PlaneBase = base
		return base, false
	}
	if st.PlaneBase != base {
		st.PlaneBase = base
		st.SweepPos = 0
		return base, true
	}
	return base, false
}
