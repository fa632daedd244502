package engine

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"

// TilePlane is the engine's view of the display's banked tile memory:
// tile ids in bank 0 and attribute bytes in bank 1 at the same addresses.
type TilePlane interface {
	ReadTile(addr uint16) byte
	WriteAttr(addr uint16, value byte)
}

// Background performs the per-cycle incremental colorization of the active
// tile plane: flip check, prioritized edge column when the viewport
// scrolled, then a budget-sized slice of the wrap-around sweep. Every
// access goes through the gate.
type Background struct {
	Plane  TilePlane
	Gate   Gate
	Cls    *classify.Classifier
	Sched  Scheduler
	Sync   BufferSync
	Edge   EdgeDetector
	Cursor Cursor

	scratch []uint16
}

func NewBackground(cfg Config, plane TilePlane, gate Gate, cls *classify.Classifier) *Background {
	return &Background{
		Plane:   plane,
		Gate:    gate,
		Cls:     cls,
		Sched:   NewScheduler(cfg),
		Edge:    NewEdgeDetector(cfg),
		Cursor:  NewCursor(cfg.PlaneSize()),
		scratch: make([]uint16, 0, cfg.PlaneSize()),
	}
}

// RunCycle colorizes this cycle's share of the active plane. control is
// the display-control byte, scroll the viewport offset; both were sampled
// by the orchestrator at cycle start.
func (b *Background) RunCycle(st *State, ctx classify.Context, control, scroll byte) {
	if !ctx.Gameplay {
		return
	}
	base, _ := b.Sync.OnCycle(st, control)

	n := b.Sched.TilesPerCycle()
	if region, ok := b.Edge.OnCycle(st, scroll); ok {
		for _, off := range region.Offsets {
			b.colorize(base+off, ctx)
		}
		n -= len(region.Offsets)
	}
	if n <= 0 {
		return
	}
	b.scratch = b.Cursor.Advance(st, n, b.scratch[:0])
	for _, off := range b.scratch {
		b.colorize(base+off, ctx)
	}
}

func (b *Background) colorize(addr uint16, ctx classify.Context) {
	if !b.Gate.AwaitSafe() {
		return
	}
	tile := b.Plane.ReadTile(addr)
	pal := b.Cls.Classify(tile, ctx, classify.Background, 0)
	if !b.Gate.AwaitSafe() {
		return
	}
	b.Plane.WriteAttr(addr, pal)
}
