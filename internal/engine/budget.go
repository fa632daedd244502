package engine

import "fmt"

// Scheduler does the static budget arithmetic for one refresh cycle. The
// window size is a hardware constant; everything here is integer division
// against it. There is no runtime feedback: a stride that does not fit is
// a build-time configuration error, caught by CheckStride, never a crash.
type Scheduler struct {
	cfg Config
}

func NewScheduler(cfg Config) Scheduler { return Scheduler{cfg: cfg} }

// TilesPerCycle returns how many full classify+write operations fit in the
// window after the fixed per-cycle overhead.
func (s Scheduler) TilesPerCycle() int {
	free := s.cfg.WindowUnits - s.cfg.OverheadUnits
	if free <= 0 || s.cfg.PerTileCost <= 0 {
		return 0
	}
	return free / s.cfg.PerTileCost
}

// CheckStride verifies that a configured sweep stride fits the refresh
// window, worst case. Run at build/config time, before deployment.
func (s Scheduler) CheckStride(n int) error {
	need := n*s.cfg.PerTileCost + s.cfg.OverheadUnits
	if need > s.cfg.WindowUnits {
		return fmt.Errorf("sweep stride %d needs %d units, refresh window is %d",
			n, need, s.cfg.WindowUnits)
	}
	return nil
}
