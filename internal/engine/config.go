package engine

// Config contains the timing and geometry constants for one display target.
// The timing values vary between hardware revisions and must be measured,
// not assumed: an optimistic per-tile cost makes writes land outside the
// safe window and silently disappear, and only the convergent sweep hides
// that. Keep them tunable.
type Config struct {
	WindowUnits   int // execution units available inside one refresh window
	PerTileCost   int // units for one gated read+classify+write
	OverheadUnits int // flag sampling, palette load, sprite-buffer copy

	PlaneRows  int // tile rows per plane
	PlaneCols  int // tile columns per plane
	ScreenCols int // visible columns; places the revealed edge column

	GateMaxPolls int // bound on status polls per access
}

// DefaultConfig returns the measured constants for the stock target.
func DefaultConfig() Config {
	return Config{
		WindowUnits:   1140,
		PerTileCost:   39,
		OverheadUnits: 0,
		PlaneRows:     32,
		PlaneCols:     32,
		ScreenCols:    20,
		GateMaxPolls:  512,
	}
}

// PlaneSize returns the number of addressable tile positions per plane.
func (c Config) PlaneSize() int { return c.PlaneRows * c.PlaneCols }
