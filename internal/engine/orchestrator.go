package engine

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"

// Flags reads the hardware-resident registers and single-byte flags the
// engine samples at cycle start.
type Flags interface {
	Control() byte // display control; carries the plane-select bit
	Scroll() byte  // viewport X offset

	PlayerForm() byte
	BossSlot() byte
	Powerup() byte
	Stage() byte
	Gameplay() bool
}

// BankSelector exposes the switchable-bank register the engine's own code
// and data live behind. The caller's selection is restored after the
// cycle so the interrupted code resumes against the bank it chose.
type BankSelector interface {
	SelectedBank() byte
	SelectBank(byte)
}

// Stage on which the player is airborne.
const flightStage = 1

// Orchestrator is the single per-refresh entry point. One call runs to
// completion with no suspension points beyond the gate's bounded polls;
// there is no cancellation, since stopping mid-cycle would leave the bank
// register and palette index ports inconsistent for the next consumer.
type Orchestrator struct {
	Flags      Flags
	Background *Background
	Loader     *Loader
	Shadow     *Shadow

	Banks    BankSelector // optional
	DataBank byte         // bank holding the engine's tables
	DMA      func()       // triggers the shadow→live sprite copy
}

// RunCycle samples the override flags once, then runs the background
// sweep, the palette load, the shadow-object pass and the sprite copy, in
// that order. The flags are not re-read mid-cycle: other game logic may
// change them between cycles, but a classification must never mix two
// snapshots.
func (o *Orchestrator) RunCycle(st *State) {
	if o.Banks != nil {
		saved := o.Banks.SelectedBank()
		o.Banks.SelectBank(o.DataBank)
		defer o.Banks.SelectBank(saved)
	}

	ctx := classify.Context{
		PlayerForm: o.Flags.PlayerForm(),
		BossSlot:   o.Flags.BossSlot(),
		Powerup:    o.Flags.Powerup(),
		Flight:     o.Flags.Stage() == flightStage,
		Gameplay:   o.Flags.Gameplay(),
	}
	control := o.Flags.Control()
	scroll := o.Flags.Scroll()

	o.Background.RunCycle(st, ctx, control, scroll)
	o.Loader.RunCycle(ctx)
	o.Shadow.RunCycle(ctx)
	if o.DMA != nil {
		o.DMA()
	}
}
