package engine

// Cursor walks the tile-plane address space in budget-sized slices across
// cycles, wrapping at the plane size. With a constant stride n every
// offset is visited within ceil(size/n) cycles; that bound is what heals
// writes dropped outside the safe window.
type Cursor struct {
	size uint16
}

func NewCursor(planeSize int) Cursor { return Cursor{size: uint16(planeSize)} }

// Advance appends the next n plane offsets starting at the persisted sweep
// position to dst and leaves the position at the successor of the last one.
func (c Cursor) Advance(st *State, n int, dst []uint16) []uint16 {
	if c.size == 0 {
		return dst
	}
	pos := st.SweepPos % c.size
	for i := 0; i < n; i++ {
		dst = append(dst, pos)
		pos++
		if pos == c.size {
			pos = 0
		}
	}
	st.SweepPos = pos
	return dst
}
