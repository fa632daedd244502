// Package layout assembles the engine's relocatable data blocks and hook
// patches for the external binary-injection collaborator. It owns only the
// narrow contract: what bytes go where within the chosen switchable bank,
// and which fixed call sites get redirected. Free-space discovery and the
// generic patch framework live elsewhere.
package layout

import (
	"fmt"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
)

const bankSize = 0x4000

// Block is one relocatable output: a named run of bytes placed at a
// caller-chosen address within a switchable bank.
type Block struct {
	Name string
	Bank int
	Addr uint16 // address in the switched-in window (0x4000..0x7FFF)
	Data []byte
}

// Hook is a small fixed-address patch redirecting control into the
// injected code (refresh-vector call, call-site NOPs).
type Hook struct {
	Name   string
	Offset int // absolute ROM offset
	Data   []byte
}

// Layout fixes where each data block lives within one bank.
type Layout struct {
	Bank int

	PaletteData  uint16 // 64 B background + 64 B object color-RAM images
	BossPalettes uint16 // 8 × 8 B boss palette table
	BossSlots    uint16 // 8 × 1 B hardware-slot table
	FormFlight   uint16 // 2 × 8 B player-form flight variants
	PowerupData  uint16 // 3 × 8 B powerup projectile palettes
	TileLookup   uint16 // 256 B tile id → palette slot table
}

// DefaultLayout places everything in one free bank, clear of the block
// addresses the generated code is assembled against.
func DefaultLayout() Layout {
	return Layout{
		Bank:         13,
		PaletteData:  0x6800,
		BossPalettes: 0x6880,
		BossSlots:    0x68C0,
		FormFlight:   0x68D0,
		PowerupData:  0x68E0,
		TileLookup:   0x6B00,
	}
}

// DataBlocks encodes a palette set and the background lookup table into
// placeable blocks.
func (l Layout) DataBlocks(set *palette.Set) []Block {
	bg := set.EncodeBG()
	obj := set.EncodeOBJ()
	pd := make([]byte, 0, 128)
	pd = append(pd, bg[:]...)
	pd = append(pd, obj[:]...)

	bossPal := make([]byte, 0, 64)
	bossSlot := make([]byte, 0, 8)
	for _, e := range set.Boss {
		enc := e.Palette.Encode()
		bossPal = append(bossPal, enc[:]...)
		bossSlot = append(bossSlot, e.Slot)
	}

	flight := make([]byte, 0, 16)
	for _, p := range set.FormFlight {
		enc := p.Encode()
		flight = append(flight, enc[:]...)
	}

	powerup := make([]byte, 0, 24)
	for _, p := range set.Powerup {
		enc := p.Encode()
		powerup = append(powerup, enc[:]...)
	}

	lut := classify.BuildBGLookup()

	return []Block{
		{Name: "palette-data", Bank: l.Bank, Addr: l.PaletteData, Data: pd},
		{Name: "boss-palettes", Bank: l.Bank, Addr: l.BossPalettes, Data: bossPal},
		{Name: "boss-slots", Bank: l.Bank, Addr: l.BossSlots, Data: bossSlot},
		{Name: "form-flight", Bank: l.Bank, Addr: l.FormFlight, Data: flight},
		{Name: "powerup-data", Bank: l.Bank, Addr: l.PowerupData, Data: powerup},
		{Name: "tile-lookup", Bank: l.Bank, Addr: l.TileLookup, Data: lut[:]},
	}
}

// CheckOverlap verifies no two blocks in the same bank intersect.
func CheckOverlap(blocks []Block) error {
	for i, a := range blocks {
		for _, b := range blocks[i+1:] {
			if a.Bank != b.Bank {
				continue
			}
			aEnd := int(a.Addr) + len(a.Data)
			bEnd := int(b.Addr) + len(b.Data)
			if int(a.Addr) < bEnd && int(b.Addr) < aEnd {
				return fmt.Errorf("blocks %s (%04X-%04X) and %s (%04X-%04X) overlap",
					a.Name, a.Addr, aEnd, b.Name, b.Addr, bEnd)
			}
		}
	}
	return nil
}

// Place writes blocks into a ROM image at bank*0x4000 plus the in-window
// offset, bounds-checked.
func Place(rom []byte, blocks []Block) error {
	if err := CheckOverlap(blocks); err != nil {
		return err
	}
	for _, b := range blocks {
		if b.Addr < bankSize || int(b.Addr)+len(b.Data) > 2*bankSize {
			return fmt.Errorf("block %s: address %04X outside the switched-in window", b.Name, b.Addr)
		}
		off := b.Bank*bankSize + int(b.Addr) - bankSize
		if off < 0 || off+len(b.Data) > len(rom) {
			return fmt.Errorf("block %s: bank %d offset %#x past end of %d-byte image",
				b.Name, b.Bank, off, len(rom))
		}
		copy(rom[off:], b.Data)
	}
	return nil
}

// ApplyHooks writes the fixed-address patches into the ROM image.
func ApplyHooks(rom []byte, hooks []Hook) error {
	for _, h := range hooks {
		if h.Offset < 0 || h.Offset+len(h.Data) > len(rom) {
			return fmt.Errorf("hook %s: offset %#x past end of %d-byte image", h.Name, h.Offset, len(rom))
		}
		copy(rom[h.Offset:], h.Data)
	}
	return nil
}

// ReadBackBG reads the background palettes back out of a placed image
// through the same layout offsets. The colors must round-trip exactly.
func (l Layout) ReadBackBG(rom []byte) ([8][4]palette.Color, error) {
	var out [8][4]palette.Color
	off := l.Bank*bankSize + int(l.PaletteData) - bankSize
	if off < 0 || off+64 > len(rom) {
		return out, fmt.Errorf("palette data at bank %d addr %04X past end of image", l.Bank, l.PaletteData)
	}
	for i := 0; i < 8; i++ {
		out[i] = palette.DecodeColors(rom[off+i*8 : off+i*8+8])
	}
	return out, nil
}

// ReadBackOBJ reads the object palettes back out of a placed image.
func (l Layout) ReadBackOBJ(rom []byte) ([8][4]palette.Color, error) {
	var out [8][4]palette.Color
	off := l.Bank*bankSize + int(l.PaletteData) - bankSize + 64
	if off < 0 || off+64 > len(rom) {
		return out, fmt.Errorf("palette data at bank %d addr %04X past end of image", l.Bank, l.PaletteData)
	}
	for i := 0; i < 8; i++ {
		out[i] = palette.DecodeColors(rom[off+i*8 : off+i*8+8])
	}
	return out, nil
}
