package engine

// Display status modes, the low two bits of the status register.
const (
	ModeHBlank byte = 0
	ModeVBlank byte = 1
	ModeOAM    byte = 2
	ModeScan   byte = 3 // active scan-out: reads return garbage, writes drop
)

// StatusFunc reads the 2-bit scan-mode field of the display status register.
type StatusFunc func() byte

// Gate defers every tile-plane read and attribute-plane write until the
// display is not actively scanning. The spin is bounded: the safe window
// recurs within one refresh period, so MaxPolls expiring means the budget
// was misconfigured, and the access is skipped rather than performed
// blind. A later sweep pass corrects whatever was missed.
type Gate struct {
	Status   StatusFunc
	MaxPolls int
}

// AwaitSafe polls until the mode leaves active scan. Reports false when
// MaxPolls elapses first.
func (g Gate) AwaitSafe() bool {
	max := g.MaxPolls
	if max <= 0 {
		max = 1
	}
	for i := 0; i < max; i++ {
		if g.Status()&0x03 != ModeScan {
			return true
		}
	}
	return false
}
