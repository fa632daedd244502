package engine

import (
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
)

// Index-port flag enabling auto-increment on data writes.
const palAutoIncrement = 0x80

// PalettePorts is the engine's view of the color-RAM index/data port
// pairs. An index write selects the byte address within color RAM; data
// writes land there, advancing when auto-increment is set on the index.
type PalettePorts interface {
	WriteBGIndex(v byte)
	WriteBGData(v byte)
	WriteOBJIndex(v byte)
	WriteOBJData(v byte)
}

// Loader writes the active palette set into hardware color RAM once per
// cycle. The static table goes first; the dynamic slots (powerup shot,
// the two player forms, the active boss's slot) are overwritten after, so
// any of them can change between cycles without rebuilding the table.
type Loader struct {
	Ports PalettePorts
	Set   *palette.Set
}

// RunCycle loads background then object palettes for this cycle's context.
func (l *Loader) RunCycle(ctx classify.Context) {
	bg := l.Set.EncodeBG()
	l.Ports.WriteBGIndex(palAutoIncrement)
	for _, b := range bg {
		l.Ports.WriteBGData(b)
	}

	// OBJ slot 0: the shared projectile slot, substituted per powerup.
	obj0 := l.Set.OBJ[0]
	if ctx.Powerup >= 1 && int(ctx.Powerup) <= len(l.Set.Powerup) {
		obj0 = l.Set.Powerup[ctx.Powerup-1]
	}
	l.writeOBJSlot(0, obj0)

	// OBJ slots 1 and 2: the player forms, flight variants when airborne.
	formA, formB := l.Set.OBJ[1], l.Set.OBJ[2]
	if ctx.Flight {
		formA, formB = l.Set.FormFlight[0], l.Set.FormFlight[1]
	}
	l.writeOBJSlot(1, formA)
	l.writeOBJSlot(2, formB)

	for slot := 3; slot < 8; slot++ {
		l.writeOBJSlot(byte(slot), l.Set.OBJ[slot])
	}

	// Boss override last so it wins over whatever static palette owns the
	// boss's hardware slot.
	if ctx.BossSlot >= 1 && int(ctx.BossSlot) <= len(l.Set.Boss) {
		entry := l.Set.Boss[ctx.BossSlot-1]
		l.writeOBJSlot(entry.Slot, entry.Palette)
	}
}

func (l *Loader) writeOBJSlot(slot byte, p palette.Palette) {
	l.Ports.WriteOBJIndex(palAutoIncrement | slot<<3)
	enc := p.Encode()
	for _, b := range enc {
		l.Ports.WriteOBJData(b)
	}
}
