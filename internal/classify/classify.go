package classify

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"

// Role selects which plane a tile id is classified for.
type Role int

const (
	Background Role = iota
	Object
)

// Category groups background tile ids for palette assignment.
type Category int

const (
	Floor Category = iota
	Wall
	Item
	Decorative
	Void
)

// Player forms, as reported by the form flag.
const (
	FormA byte = 0 // OBJ slot 1
	FormB byte = 1 // OBJ slot 2
)

// Context is the per-cycle override snapshot. The orchestrator samples it
// once at cycle start from the hardware-readable flags and holds it
// constant for the rest of the cycle.
type Context struct {
	PlayerForm byte // FormA or FormB
	BossSlot   byte // 0 = none, 1..8 = boss table index
	Powerup    byte // 0 = none, 1..3 = powerup table index
	Flight     bool // airborne stage: loader uses the form flight variants
	Gameplay   bool // false on menus; the background pass is skipped
}

// tileRange maps a contiguous run of background tile ids to a category.
// Ranges are non-overlapping and together cover all 256 ids.
type tileRange struct {
	lo, hi byte
	cat    Category
}

var bgRanges = []tileRange{
	{0x00, 0x3F, Floor}, // floors, edges, platforms
	{0x40, 0x5F, Wall},
	{0x60, 0x87, Floor}, // doorways and arches blend with floor
	{0x88, 0xDF, Item},
	{0xE0, 0xFD, Decorative},
	{0xFE, 0xFF, Void},
}

// categorySlot assigns each background category its palette slot.
var categorySlot = [...]byte{
	Floor:      0,
	Wall:       6,
	Item:       1,
	Decorative: 6,
	Void:       0,
}

// Object-plane tile windows.
const (
	// OAM slots 0..3 always hold the player; they classify by form,
	// never by tile id.
	playerSlots = 4

	enemyShotMax  = 0x02 // ids below this are enemy projectiles
	projectileMax = 0x10 // remaining ids below this are player projectiles
	effectMax     = 0x20
	playerTileMax = 0x30 // player graphics when drawn outside the slot window
	enemyBase     = 0x30 // enemy classes start here, one class per 16 ids
)

// Classifier resolves tile ids to palette slots using the static range
// tables plus the dynamic override tables. Pure lookup; no I/O.
type Classifier struct {
	bgLookup  [256]byte
	bossSlots [8]byte
}

// New builds a classifier over the given palette set. The boss slot table
// comes from the set; the background lookup from the static ranges.
func New(set *palette.Set) *Classifier {
	c := &Classifier{bgLookup: BuildBGLookup()}
	for i := range set.Boss {
		c.bossSlots[i] = set.Boss[i].Slot
	}
	return c
}

// BuildBGLookup expands the background ranges into a 256-entry tile id →
// palette slot table, the same table the injection collaborator places
// in ROM for the generated code to index.
func BuildBGLookup() [256]byte {
	var lut [256]byte
	for i := 0; i < 256; i++ {
		lut[i] = categorySlot[CategoryOf(byte(i))]
	}
	return lut
}

// CategoryOf returns the background category for a tile id. Total: ids
// outside every range degrade to Floor rather than failing.
func CategoryOf(tile byte) Category {
	for _, r := range bgRanges {
		if tile >= r.lo && tile <= r.hi {
			return r.cat
		}
	}
	return Floor
}

// BGLookup returns the expanded background lookup table.
func (c *Classifier) BGLookup() [256]byte { return c.bgLookup }

// Classify maps a tile id to a palette slot (0..7). slot is the sprite
// slot for the Object role and ignored for Background. Resolution order
// for objects: player-slot override, then boss override for enemy-range
// tiles, then the static ranges. Total over all 256 ids.
func (c *Classifier) Classify(tile byte, ctx Context, role Role, slot int) byte {
	if role == Background {
		return c.bgLookup[tile]
	}
	if slot >= 0 && slot < playerSlots {
		return c.formSlot(ctx.PlayerForm)
	}
	switch {
	case tile < enemyShotMax:
		return 3
	case tile < projectileMax:
		// Player projectiles share OBJ slot 0, whose contents the loader
		// substitutes when a powerup is active.
		return 0
	case tile < effectMax:
		return 4
	case tile < playerTileMax:
		return c.formSlot(ctx.PlayerForm)
	}
	// Enemy range. An active boss claims the whole range via its table slot.
	if ctx.BossSlot != 0 {
		return c.bossSlots[(ctx.BossSlot-1)&7]
	}
	class := (tile - enemyBase) >> 4
	if class < 5 {
		return 3 + class
	}
	return 4
}

func (c *Classifier) formSlot(form byte) byte {
	if form == FormA {
		return 1
	}
	return 2
}
