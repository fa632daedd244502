package engine

// EdgeRegion is one full plane column about to scroll into view, ordered
// top to bottom. The background pass colorizes it ahead of the sweep so a
// fast scroll never outruns the wrap period.
type EdgeRegion struct {
	Column  int
	Offsets []uint16
}

// EdgeDetector compares the coarse scroll offset (pixels / tile width)
// across cycles and on change yields the column entering at the leading
// screen edge. Only uniform horizontal scrolling is covered; anything else
// is left to the sweep's eventual full coverage.
type EdgeDetector struct {
	rows, cols, screenCols int
}

func NewEdgeDetector(cfg Config) EdgeDetector {
	return EdgeDetector{rows: cfg.PlaneRows, cols: cfg.PlaneCols, screenCols: cfg.ScreenCols}
}

// OnCycle samples the scroll register. The first sample only records; a
// changed coarse offset afterwards yields the newly revealed column.
func (d EdgeDetector) OnCycle(st *State, scroll byte) (EdgeRegion, bool) {
	coarse := (scroll >> 3) & byte(d.cols-1)
	if !st.ScrollSeen {
		st.ScrollSeen = true
		st.PrevCoarse = coarse
		return EdgeRegion{}, false
	}
	if coarse == st.PrevCoarse {
		return EdgeRegion{}, false
	}
	st.PrevCoarse = coarse

	col := (int(coarse) + d.screenCols) & (d.cols - 1)
	offs := make([]uint16, d.rows)
	for row := 0; row < d.rows; row++ {
		offs[row] = uint16(row*d.cols + col)
	}
	return EdgeRegion{Column: col, Offsets: offs}, true
}
