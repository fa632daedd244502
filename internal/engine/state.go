package engine

// State is the only cross-cycle mutable state the engine keeps. On the
// target it lives in the always-addressable high-RAM region so it survives
// the bank switches the orchestrator performs to reach its own code and
// data; here it is one explicit struct passed by reference into every
// component call.
type State struct {
	SweepPos  uint16 // offset into the active plane, wraps at PlaneSize
	PlaneBase uint16 // base address of the active tile plane; 0 = unset

	PrevCoarse byte // previous coarse scroll (offset / 8)
	ScrollSeen bool // PrevCoarse holds a sampled value
}
